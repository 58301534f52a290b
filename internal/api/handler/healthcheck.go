package handler

import (
	"net/http"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

func HealthcheckHandler(backend string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"backend": backend,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
