package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/emanuelkel/dash-delivery-wiz/internal/api/handler"
	"github.com/emanuelkel/dash-delivery-wiz/internal/api/handler/router"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/dashboarding"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator   authenticating.Authenticator
	Profiler        profiling.Profiler
	Dashboarder     dashboarding.Dashboarder
	Roster          rostering.RosterManager
	RoleCatalogSync handler.CronJob
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, registry *metrics.Registry, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("api: autenticador não configurado")
	}

	cronServices := handler.CronJobServices{
		RoleCatalogSync: services.RoleCatalogSync,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, registry, services, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, registry *metrics.Registry, services Services, cronServices handler.CronJobServices) http.Handler {
	auth := services.Authenticator
	maxUpload := config.Upload.MaxBytes

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config.Backend.Provider)...),
		router.WithRoutes(handler.Metrics(registry)...),
		router.WithMetrics(registry),
		router.WithRoutes(handler.Authentication(auth)...),
		router.WithRoutes(handler.Profile(services.Profiler, maxUpload)...),
		router.WithRoutes(handler.Dashboard(services.Dashboarder, config.Location())...),
		router.WithRoutes(handler.User(services.Roster, auth, maxUpload)...),
		router.WithRoutes(handler.CronJobs(cronServices, auth)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CORSAllowedOrigins),
		middleware.AuthMiddleware(auth),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
