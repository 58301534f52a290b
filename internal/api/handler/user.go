package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"name"`
	RoleName    string `json:"role"`
	Collection  string `json:"collection"`
}

func ListUsers(roster rostering.RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		entries, err := roster.ListRoster(r.Context(), session)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}

		writeJSON(w, r, http.StatusOK, entries)
	}
}

// CreateUser aceita JSON ou multipart/form-data; só o multipart leva a logo
func CreateUser(roster rostering.RosterManager, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateUser")

		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		request, ok := decodeCreateUser(w, r, maxBytes)
		if !ok {
			return
		}

		entry, err := roster.CreateEntry(r.Context(), session, request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}

func decodeCreateUser(w http.ResponseWriter, r *http.Request, maxBytes int64) (rostering.CreateEntryRequest, bool) {
	if !isMultipart(r) {
		var body CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return rostering.CreateEntryRequest{}, false
		}
		return rostering.CreateEntryRequest{
			Email:       body.Email,
			Password:    body.Password,
			DisplayName: body.DisplayName,
			RoleName:    body.RoleName,
			Collection:  body.Collection,
		}, true
	}

	if err := parseMultipart(w, r, maxBytes); err != nil {
		if isImageError(err) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidImage, err.Error(), nil)
			return rostering.CreateEntryRequest{}, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário inválido", nil)
		return rostering.CreateEntryRequest{}, false
	}

	logo, err := readImage(r, "logo")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Não foi possível ler o arquivo enviado", nil)
		return rostering.CreateEntryRequest{}, false
	}

	return rostering.CreateEntryRequest{
		Email:       r.FormValue("email"),
		Password:    r.FormValue("password"),
		DisplayName: firstFormValue(r, "name", "nome_estabelecimento"),
		RoleName:    r.FormValue("role"),
		Collection:  r.FormValue("collection"),
		Logo:        logo,
	}, true
}

func firstFormValue(r *http.Request, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(r.FormValue(key)); value != "" {
			return value
		}
	}
	return ""
}

func DeleteUser(roster rostering.RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := roster.DeleteEntry(r.Context(), session, id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListRoles(roster rostering.RosterManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		roles, err := roster.ListRoles(r.Context(), session)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar papéis")
			return
		}

		writeJSON(w, r, http.StatusOK, roles)
	}
}
