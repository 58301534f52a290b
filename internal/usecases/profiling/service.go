package profiling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/cache"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// DefaultDisplayName é exibido quando não há perfil global configurado
const DefaultDisplayName = "Dashboard Delivery"

var ErrEmptyName = errors.New("o nome do estabelecimento é obrigatório")

type Profiler interface {
	GetProfile(ctx context.Context, session domain.Session) (*domain.Profile, error)
	UpdateName(ctx context.Context, session domain.Session, name string) (*domain.Profile, error)
	UploadLogo(ctx context.Context, session domain.Session, file domain.ImageFile) (*domain.Profile, error)
	PublicProfile(ctx context.Context) domain.Profile
}

// PublicProfileReader lê o perfil global sem sessão de usuário
type PublicProfileReader interface {
	PublicProfile(ctx context.Context) (*domain.Profile, error)
}

type Service struct {
	identity integrator.IdentityProvider
	storage  integrator.ObjectStorage
	public   PublicProfileReader
	cache    cache.ProfileCache
	maxBytes int64
	cacheTTL time.Duration
}

func NewService(cfg *config.Config, backend integrator.Backend, profileCache cache.ProfileCache) Profiler {
	if profileCache == nil {
		profileCache = cache.NoopProfileCache{}
	}

	return &Service{
		identity: backend,
		storage:  backend,
		public:   backend,
		cache:    profileCache,
		maxBytes: cfg.Upload.MaxBytes,
		cacheTTL: cfg.Cache.ProfileTTL,
	}
}

func (s *Service) GetProfile(_ context.Context, session domain.Session) (*domain.Profile, error) {
	return &domain.Profile{
		Name:    session.Identity.Name,
		LogoURL: session.Identity.LogoURL,
	}, nil
}

func (s *Service) UpdateName(ctx context.Context, session domain.Session, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	err := s.identity.UpdateProfile(ctx, session.Token, session.Identity.ID, domain.ProfileUpdate{Name: &name})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar nome do estabelecimento")
	}
	s.cache.InvalidateProfile(ctx)

	log.ForContext(ctx).WithField("user_id", session.Identity.ID).Info("Nome do estabelecimento atualizado")

	return &domain.Profile{Name: name, LogoURL: session.Identity.LogoURL}, nil
}

// UploadLogo valida a imagem antes de qualquer chamada ao backend, guarda o
// arquivo e o define como logo do usuário
func (s *Service) UploadLogo(ctx context.Context, session domain.Session, file domain.ImageFile) (*domain.Profile, error) {
	if err := file.Validate(s.maxBytes); err != nil {
		return nil, err
	}

	if file.Title == "" {
		file.Title = logoTitle(session.Identity.Name)
	}

	stored, err := s.storage.StoreObject(ctx, session.Token, file)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao enviar logo")
	}

	err = s.identity.UpdateProfile(ctx, session.Token, session.Identity.ID, domain.ProfileUpdate{LogoRef: &stored.Key})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao vincular logo ao perfil")
	}
	s.cache.InvalidateProfile(ctx)

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":    session.Identity.ID,
		"object_key": stored.Key,
	}).Info("Logo atualizada")

	url := stored.URL
	return &domain.Profile{Name: session.Identity.Name, LogoURL: &url}, nil
}

// PublicProfile nunca falha: sem perfil configurado ou com erro no backend,
// devolve o nome padrão
func (s *Service) PublicProfile(ctx context.Context) domain.Profile {
	if cached, ok := s.cache.GetProfile(ctx); ok {
		return *cached
	}

	profile, err := s.public.PublicProfile(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao carregar perfil público, usando padrão")
		return domain.Profile{Name: DefaultDisplayName}
	}
	if profile == nil {
		return domain.Profile{Name: DefaultDisplayName}
	}

	if strings.TrimSpace(profile.Name) == "" {
		profile.Name = DefaultDisplayName
	}
	s.cache.SetProfile(ctx, *profile, s.cacheTTL)

	return *profile
}

func logoTitle(name string) string {
	if name == "" {
		return "Logo"
	}
	return fmt.Sprintf("Logo - %s", name)
}
