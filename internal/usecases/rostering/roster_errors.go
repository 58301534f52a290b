package rostering

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidEmail        = errors.New("email inválido")
	ErrWeakPassword        = errors.New("a senha deve ter pelo menos 6 caracteres")
	ErrMissingDisplayName  = errors.New("o nome do estabelecimento é obrigatório")
	ErrMissingRosterID     = errors.New("o ID do usuário é obrigatório")
	ErrRoleNotFound        = errors.New("papel não encontrado no backend")
	ErrRoleCatalogUnloaded = errors.New("catálogo de papéis indisponível")

	// Erros do backend
	ErrBackendOperation = errors.New("erro ao executar operação no backend")
)

// RosterError é um erro com contexto adicional para a gestão de usuários
type RosterError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *RosterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RosterError) Unwrap() error {
	return e.Err
}

func NewRosterError(err error, code string, details string) *RosterError {
	return &RosterError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
