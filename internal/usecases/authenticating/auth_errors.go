package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated     = errors.New("sessão ausente ou inválida")
	ErrExpiredToken        = errors.New("token expirado")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrForbidden           = errors.New("apenas administradores podem realizar esta ação")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// sentinelas respondidas com 401
var unauthenticatedErrs = []error{ErrUnauthenticated, ErrExpiredToken, ErrInvalidCredentials}

// AuthError carrega o código apiErrors que o handler devolve ao cliente
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error { return e.Err }

func IsAuthenticationError(err error) bool {
	for _, target := range unauthenticatedErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrForbidden)
}
