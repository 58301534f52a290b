package rostering

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var requestValidator = validator.New()

type RosterManager interface {
	ListRoster(ctx context.Context, session domain.Session) ([]domain.RosterEntry, error)
	CreateEntry(ctx context.Context, session domain.Session, request CreateEntryRequest) (*domain.RosterEntry, error)
	DeleteEntry(ctx context.Context, session domain.Session, id string) error
	ListRoles(ctx context.Context, session domain.Session) ([]domain.Role, error)
}

type CreateEntryRequest struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"min=6"`
	DisplayName string `validate:"required"`
	RoleName    string
	Collection  string
	Logo        *domain.ImageFile
}

type Service struct {
	directory integrator.Directory
	storage   integrator.ObjectStorage
	catalog   *RoleCatalog
	cache     *rosterCache
	maxBytes  int64
}

func NewService(cfg *config.Config, backend integrator.Backend, catalog *RoleCatalog) RosterManager {
	if catalog == nil {
		catalog = NewRoleCatalog()
	}

	return &Service{
		directory: backend,
		storage:   backend,
		catalog:   catalog,
		cache:     newRosterCache(cfg.Cache.RosterTTL),
		maxBytes:  cfg.Upload.MaxBytes,
	}
}

func (s *Service) ListRoster(ctx context.Context, session domain.Session) ([]domain.RosterEntry, error) {
	if entries, ok := s.cache.Get(); ok {
		return entries, nil
	}

	generation := s.cache.Generation()
	entries, err := s.directory.ListRoster(ctx, session.Token)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar usuários")
	}
	s.cache.Set(entries, generation)

	return entries, nil
}

// CreateEntry valida o formulário e a logo antes de qualquer chamada ao backend.
// A logo é enviada primeiro; uma falha ao atribuir o papel depois da criação
// do usuário não é desfeita.
func (s *Service) CreateEntry(ctx context.Context, session domain.Session, request CreateEntryRequest) (*domain.RosterEntry, error) {
	request, err := s.validate(request)
	if err != nil {
		return nil, err
	}

	entry := domain.NewRosterEntry{
		Email:       request.Email,
		Password:    request.Password,
		DisplayName: request.DisplayName,
		Collection:  request.Collection,
	}

	if request.Logo != nil {
		logo := *request.Logo
		if logo.Title == "" {
			logo.Title = fmt.Sprintf("Logo - %s", request.DisplayName)
		}

		stored, err := s.storage.StoreObject(ctx, session.Token, logo)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao enviar logo do novo usuário")
		}
		entry.LogoRef = &stored.Key
	}

	role, err := s.ResolveRole(ctx, session, request.RoleName)
	if err != nil {
		return nil, err
	}
	entry.RoleID = role.ID
	entry.RoleName = role.Name

	created, err := s.directory.CreateRosterEntry(ctx, session.Token, entry)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar usuário")
	}
	s.cache.Invalidate()

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":    created.ID,
		"user_email": created.Email,
		"user_role":  created.RoleName,
	}).Info("Usuário criado")

	return created, nil
}

func (s *Service) DeleteEntry(ctx context.Context, session domain.Session, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return NewRosterError(ErrMissingRosterID, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.directory.DeleteRosterEntry(ctx, session.Token, id); err != nil {
		return errors.Wrapf(err, "erro ao excluir usuário %s", id)
	}
	s.cache.Remove(id)

	log.ForContext(ctx).WithField("user_id", id).Info("Usuário excluído")

	return nil
}

func (s *Service) ListRoles(ctx context.Context, session domain.Session) ([]domain.Role, error) {
	if s.catalog.Len() > 0 {
		return s.catalog.Snapshot(), nil
	}

	if err := s.refreshCatalog(ctx, session.Token); err != nil {
		return nil, err
	}

	return s.catalog.Snapshot(), nil
}

// ResolveRole procura o papel pelo nome no catálogo local e, sem sucesso,
// recarrega o catálogo do backend uma vez
func (s *Service) ResolveRole(ctx context.Context, session domain.Session, name string) (domain.Role, error) {
	if role, ok := s.catalog.Find(name); ok {
		return role, nil
	}

	if err := s.refreshCatalog(ctx, session.Token); err != nil {
		return domain.Role{}, err
	}

	if role, ok := s.catalog.Find(name); ok {
		return role, nil
	}

	return domain.Role{}, NewRosterError(ErrRoleNotFound, apiErrors.ErrInvalidRequest, fmt.Sprintf("papel '%s'", name))
}

func (s *Service) refreshCatalog(ctx context.Context, token string) error {
	roles, err := s.directory.ListRoles(ctx, token)
	if err != nil {
		return errors.Wrap(err, ErrRoleCatalogUnloaded.Error())
	}
	s.catalog.Replace(roles)
	return nil
}

func (s *Service) validate(request CreateEntryRequest) (CreateEntryRequest, error) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.DisplayName = strings.TrimSpace(request.DisplayName)
	request.RoleName = strings.TrimSpace(request.RoleName)
	request.Collection = strings.TrimSpace(request.Collection)

	if err := requestValidator.Struct(request); err != nil {
		return request, rosterValidationError(err, request.Email)
	}

	if request.Collection != "" {
		if err := integrator.ValidateCollection(request.Collection); err != nil {
			return request, NewRosterError(err, apiErrors.ErrInvalidFormat, "")
		}
	}

	if request.Logo != nil {
		if err := request.Logo.Validate(s.maxBytes); err != nil {
			return request, NewRosterError(err, apiErrors.ErrInvalidImage, "")
		}
	}

	return request, nil
}

// rosterValidationError traduz a primeira regra violada para o RosterError do campo
func rosterValidationError(err error, email string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewRosterError(err, apiErrors.ErrInvalidFormat, "")
	}

	switch fieldErrs[0].Field() {
	case "Email":
		return NewRosterError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, email)
	case "Password":
		return NewRosterError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "")
	default:
		return NewRosterError(ErrMissingDisplayName, apiErrors.ErrMissingRequiredData, "")
	}
}
