package authenticating

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.AuthTokens, error)
	Logout(ctx context.Context, tokens domain.AuthTokens) error
	Authorize(ctx context.Context, token string) (*domain.Session, error)
	RequireAdmin(session domain.Session) error
}

type Service struct {
	identity integrator.IdentityProvider
	now      func() time.Time
}

func NewService(identity integrator.IdentityProvider) Authenticator {
	return &Service{
		identity: identity,
		now:      time.Now,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	email = handleEmail(email)
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	tokens, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		var backendErr *integrator.BackendError
		if errors.As(err, &backendErr) && isCredentialsStatus(backendErr.StatusCode) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, backendErr.Message)
		}
		return nil, pkgerrors.Wrap(err, "erro ao autenticar no backend")
	}

	log.ForContext(ctx).WithField("user_email", email).Info("Login realizado")

	return tokens, nil
}

func (s *Service) Logout(ctx context.Context, tokens domain.AuthTokens) error {
	if tokens.AccessToken == "" && tokens.RefreshToken == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nenhum token de sessão informado")
	}

	if err := s.identity.EndSession(ctx, tokens); err != nil {
		return pkgerrors.Wrap(err, "erro ao encerrar sessão no backend")
	}

	return nil
}

// Authorize resolve a identidade dona do token. Tokens JWT vencidos são
// recusados sem consultar o backend; tokens opacos seguem direto para ele.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrInvalidToken, "Token não informado")
	}

	if s.isExpired(token) {
		return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
	}

	identity, err := s.identity.CurrentIdentity(ctx, token)
	if err != nil {
		var backendErr *integrator.BackendError
		if errors.As(err, &backendErr) && isCredentialsStatus(backendErr.StatusCode) {
			return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrInvalidToken, backendErr.Message)
		}
		return nil, pkgerrors.Wrap(err, "erro ao resolver sessão no backend")
	}

	if identity == nil || identity.ID == "" {
		return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrInvalidToken, "Sessão sem usuário")
	}

	return &domain.Session{Token: token, Identity: *identity}, nil
}

func (s *Service) RequireAdmin(session domain.Session) error {
	if !session.Identity.IsAdmin() {
		return NewAuthError(ErrForbidden, apiErrors.ErrInsufficientPrivilege, "")
	}
	return nil
}

// isExpired lê o exp do JWT sem verificar a assinatura. Quem valida o token é o backend.
func (s *Service) isExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !s.now().Before(exp.Time)
}

func isCredentialsStatus(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusUnauthorized || status == http.StatusForbidden
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
