package handler

import (
	"net/http"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

type MeResponse struct {
	domain.Identity
	IsAdmin bool            `json:"is_admin"`
	Profile *domain.Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

func GetMe(profiler profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		profile, err := profiler.GetProfile(r.Context(), session)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao carregar perfil")
			return
		}

		writeJSON(w, r, http.StatusOK, MeResponse{
			Identity: session.Identity,
			IsAdmin:  session.Identity.IsAdmin(),
			Profile:  profile,
		})
	}
}

func UpdateProfile(profiler profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		var request UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		profile, err := profiler.UpdateName(r.Context(), session, request.Name)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar perfil")
			return
		}

		writeJSON(w, r, http.StatusOK, profile)
	}
}

func UploadLogo(profiler profiling.Profiler, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		if !isMultipart(r) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie a imagem como multipart/form-data", nil)
			return
		}

		if err := parseMultipart(w, r, maxBytes); err != nil {
			if isImageError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidImage, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
			return
		}

		file, err := readImage(r, "file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo enviado", nil)
			return
		}
		if file == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidImage, domain.ErrEmptyImage.Error(), nil)
			return
		}

		profile, err := profiler.UploadLogo(r.Context(), session, *file)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar logo")
			return
		}

		log.ForContext(r.Context()).WithField("user_id", session.Identity.ID).Info("Logo atualizada")
		writeJSON(w, r, http.StatusOK, profile)
	}
}

// PublicProfile atende a tela de login e nunca falha
func PublicProfile(profiler profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, profiler.PublicProfile(r.Context()))
	}
}
