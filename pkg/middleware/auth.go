package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

var publicPaths = map[string]bool{
	"/healthcheck":       true,
	"/metrics":           true,
	"/v1/login":          true,
	"/v1/public/profile": true,
}

// AuthMiddleware resolve a sessão do token Bearer e a guarda no contexto.
// Rotas públicas passam direto.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Header Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			session, err := authService.Authorize(r.Context(), tokenString)
			if err != nil {
				writeAuthError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext devolve a sessão guardada pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}

// WithSession é usado por testes e por chamadas internas que já têm a sessão resolvida
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	switch {
	case errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessão expirada", nil)
	case errors.As(err, &authErr) && authenticating.IsAuthenticationError(err):
		apiErrors.WriteError(w, authErr.Code, "Sessão inválida", nil)
	case authenticating.IsAuthenticationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao validar sessão no backend")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível validar a sessão", nil)
	}
}
