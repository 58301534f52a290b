package handler

import (
	"net/http"
	"time"

	"github.com/justinas/alice"

	"github.com/emanuelkel/dash-delivery-wiz/internal/api/handler/router"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/dashboarding"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/middleware"
)

func Healthcheck(backend string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(backend),
		},
	}
}

func Metrics(registry *metrics.Registry) []router.Route {
	if registry == nil {
		return nil
	}

	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: registry.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
	}
}

func Profile(service profiling.Profiler, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/public/profile",
			Method:  http.MethodGet,
			Handler: PublicProfile(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
		{
			Path:        "/v1/me/profile",
			Method:      http.MethodPut,
			Handler:     UpdateProfile(service),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
		{
			Path:        "/v1/me/logo",
			Method:      http.MethodPost,
			Handler:     UploadLogo(service, maxUploadBytes),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service, loc),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service, loc),
			Middlewares: []alice.Constructor{middleware.RequireSession()},
		},
	}
}

func User(service rostering.RosterManager, auth authenticating.Authenticator, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service, maxUploadBytes),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/v1/roles",
			Method:      http.MethodGet,
			Handler:     ListRoles(service),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
	}
}

func CronJobs(services CronJobServices, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly(auth)},
		},
	}
}
