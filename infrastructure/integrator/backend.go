package integrator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

//go:generate mockgen -source=backend.go -destination=mocks/backend.go -package=mocks

// IdentityProvider autentica e resolve o usuário dono de um token de sessão
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*domain.AuthTokens, error)
	EndSession(ctx context.Context, tokens domain.AuthTokens) error
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
	UpdateProfile(ctx context.Context, token string, identityID string, update domain.ProfileUpdate) error
}

// RecordStore lê registros de uma coleção (pedidos, perfis)
type RecordStore interface {
	ListRecords(ctx context.Context, token string, collection string, query domain.RecordQuery) ([]domain.Record, error)
}

// ObjectStorage guarda arquivos e devolve uma URL pública para eles
type ObjectStorage interface {
	StoreObject(ctx context.Context, token string, file domain.ImageFile) (*domain.StoredObject, error)
	ObjectURL(ref string) string
}

// Directory administra os usuários do tenant e o catálogo de papéis
type Directory interface {
	ListRoster(ctx context.Context, token string) ([]domain.RosterEntry, error)
	ListRoles(ctx context.Context, token string) ([]domain.Role, error)
	CreateRosterEntry(ctx context.Context, token string, entry domain.NewRosterEntry) (*domain.RosterEntry, error)
	DeleteRosterEntry(ctx context.Context, token string, id string) error
}

type Backend interface {
	IdentityProvider
	RecordStore
	ObjectStorage
	Directory

	Name() string
	// PublicProfile lê o perfil de exibição global, mostrado antes do login
	PublicProfile(ctx context.Context) (*domain.Profile, error)
}

type recordStoreOverride struct {
	Backend
	store RecordStore
}

func (r *recordStoreOverride) ListRecords(ctx context.Context, token string, collection string, query domain.RecordQuery) ([]domain.Record, error) {
	return r.store.ListRecords(ctx, token, collection, query)
}

// WithRecordStore substitui a leitura de registros do backend por outra fonte,
// mantendo as demais operações
func WithRecordStore(backend Backend, store RecordStore) Backend {
	if store == nil {
		return backend
	}
	return &recordStoreOverride{Backend: backend, store: store}
}

// BackendError é uma resposta de erro do backend hospedado
type BackendError struct {
	Backend    string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Backend, e.StatusCode, e.Message)
}

func NewBackendError(backend string, statusCode int, message string) *BackendError {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &BackendError{Backend: backend, StatusCode: statusCode, Message: message}
}

const DefaultErrorMessage = "Erro ao processar a requisição no backend"

var (
	ErrInvalidCollection = errors.New("nome de coleção inválido")

	collectionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ValidateCollection garante que o nome pode ser usado em rotas e consultas sem escape
func ValidateCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}
