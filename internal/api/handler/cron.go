package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRoles = "roles"
	CronJobTypeAll   = "all"
)

type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RoleCatalogSync CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRoles, CronJobTypeAll:
			if services.RoleCatalogSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de papéis não disponível", nil)
				return
			}
			if !services.RoleCatalogSync.TriggerManualSync() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Sincronização já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: roles, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RoleCatalogSync != nil {
			status[CronJobTypeRoles] = services.RoleCatalogSync.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
