package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func Login(authService authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - Login")

		var request LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		tokens, err := authService.Login(r.Context(), request.Email, request.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, tokens)
	}
}

func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		log.ForContext(r.Context()).WithField("code", authErr.Code).Info("Login recusado")
		message := "Credenciais inválidas"
		if authErr.Code == apiErrors.ErrMissingRequiredData {
			message = "Email e senha são obrigatórios"
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	writeServiceError(w, r, err, "Erro ao realizar login")
}

// Logout encerra a sessão no backend; o refresh token no corpo é opcional
func Logout(authService authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		var request LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		tokens := domain.AuthTokens{AccessToken: session.Token, RefreshToken: request.RefreshToken}
		if err := authService.Logout(r.Context(), tokens); err != nil {
			writeServiceError(w, r, err, "Erro ao encerrar sessão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
