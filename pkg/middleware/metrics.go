package middleware

import (
	"net/http"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
)

// Metrics registra contagem e duração por rota. route é o padrão do
// httprouter (/v1/users/:id), não o caminho da requisição.
func Metrics(registry *metrics.Registry, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if registry == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			registry.ObserveHTTP(r.Method, route, lrw.statusCode, time.Since(startedAt))
		})
	}
}
