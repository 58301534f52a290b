package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/dashboarding"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// sessionOrAbort lê a sessão do contexto; sem ela a resposta já foi escrita
func sessionOrAbort(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return domain.Session{}, false
	}
	return *session, true
}

// writeServiceError traduz os erros dos casos de uso e do backend para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var (
		authErr    *authenticating.AuthError
		rosterErr  *rostering.RosterError
		backendErr *integrator.BackendError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case isImageError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidImage, err.Error(), nil)
	case errors.As(err, &rosterErr):
		apiErrors.WriteError(w, rosterErr.Code, rosterErr.Error(), nil)
	case errors.Is(err, dashboarding.ErrNoOrdersCollection):
		apiErrors.WriteError(w, apiErrors.ErrNoOrdersCollection, err.Error(), nil)
	case errors.Is(err, profiling.ErrEmptyName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, integrator.ErrInvalidCollection):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.As(err, &backendErr):
		log.ForContext(r.Context()).WithFields(log.Fields{
			"backend":     backendErr.Backend,
			"status_code": backendErr.StatusCode,
			"error":       err.Error(),
		}).Warn("Erro retornado pelo backend")
		apiErrors.WriteError(w, apiErrors.CodeForBackendStatus(backendErr.StatusCode), backendErr.Message, map[string]any{
			"backend": backendErr.Backend,
		})
	case errors.Is(err, context.Canceled):
		log.ForContext(r.Context()).Debug("Requisição cancelada pelo cliente")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada", nil)
	case errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo esgotado ao chamar o backend", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

func isImageError(err error) bool {
	return errors.Is(err, domain.ErrEmptyImage) ||
		errors.Is(err, domain.ErrInvalidImageType) ||
		errors.Is(err, domain.ErrImageTooLarge)
}
