package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg              *prometheus.Registry
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	BackendRequests  *prometheus.CounterVec
	BackendDuration  *prometheus.HistogramVec
	RoleCatalogSyncs *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "Requisições HTTP atendidas, por rota e status",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	backendRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_backend_requests_total",
		Help: "Chamadas feitas ao backend hospedado",
	}, []string{"backend", "method", "code"})
	backendDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_backend_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "method"})
	roleCatalogSyncs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_role_catalog_syncs_total",
	}, []string{"result"})

	r.MustRegister(
		httpRequests,
		httpDuration,
		backendRequests,
		backendDuration,
		roleCatalogSyncs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:              r,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		BackendRequests:  backendRequests,
		BackendDuration:  backendDuration,
		RoleCatalogSyncs: roleCatalogSyncs,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// ObserveHTTP registra uma requisição atendida. Registry nil é ignorado.
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}

	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) ObserveRoleCatalogSync(err error) {
	if r == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	r.RoleCatalogSyncs.WithLabelValues(result).Inc()
}

// InstrumentTransport envolve o transporte HTTP de um cliente de backend
func (r *Registry) InstrumentTransport(backend string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if r == nil {
		return next
	}

	labels := prometheus.Labels{"backend": backend}

	return promhttp.InstrumentRoundTripperCounter(
		r.BackendRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(
			r.BackendDuration.MustCurryWith(labels),
			next,
		),
	)
}
