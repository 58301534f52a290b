package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
)

type stubRoleLister struct {
	mu     sync.Mutex
	roles  []domain.Role
	err    error
	tokens []string
	block  chan struct{}
}

func (s *stubRoleLister) ListRoles(_ context.Context, token string) ([]domain.Role, error) {
	if s.block != nil {
		<-s.block
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, token)
	return s.roles, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Backend:         config.Backend{Provider: config.ProviderDirectus, Timeout: time.Second},
		Directus:        config.Directus{StaticToken: "token-de-servico"},
		RoleCatalogSync: config.RoleCatalogSync{CronSchedule: "*/30 * * * *", Enabled: true},
	}
}

func TestRoleCatalogSyncService_Sync(t *testing.T) {
	lister := &stubRoleLister{roles: []domain.Role{{ID: "1", Name: "Administrator"}, {ID: "2", Name: "User"}}}
	catalog := rostering.NewRoleCatalog()
	service := NewRoleCatalogSyncService(lister, catalog, metrics.NewRegistry(), testConfig())

	service.syncRoleCatalog()

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"token-de-servico"}, lister.tokens)

	status := service.GetStatus()
	assert.Equal(t, 2, status["roles_cached"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestRoleCatalogSyncService_ErroMantemCatalogo(t *testing.T) {
	catalog := rostering.NewRoleCatalog()
	catalog.Replace([]domain.Role{{ID: "1", Name: "admin"}})

	lister := &stubRoleLister{err: errors.New("backend fora do ar")}
	service := NewRoleCatalogSyncService(lister, catalog, nil, testConfig())

	service.syncRoleCatalog()

	assert.Equal(t, 1, catalog.Len())
	assert.Equal(t, "backend fora do ar", service.GetStatus()["last_sync_error"])
}

func TestRoleCatalogSyncService_ListaVaziaNaoSubstitui(t *testing.T) {
	catalog := rostering.NewRoleCatalog()
	catalog.Replace([]domain.Role{{ID: "1", Name: "admin"}})

	service := NewRoleCatalogSyncService(&stubRoleLister{}, catalog, nil, testConfig())

	service.syncRoleCatalog()

	assert.Equal(t, 1, catalog.Len())
	assert.NotEmpty(t, service.GetStatus()["last_sync_error"])
}

func TestRoleCatalogSyncService_TriggerManualSync(t *testing.T) {
	lister := &stubRoleLister{
		roles: []domain.Role{{ID: "1", Name: "admin"}},
		block: make(chan struct{}),
	}
	catalog := rostering.NewRoleCatalog()
	service := NewRoleCatalogSyncService(lister, catalog, nil, testConfig())

	require.True(t, service.TriggerManualSync())

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == true
	}, time.Second, 10*time.Millisecond)

	assert.False(t, service.TriggerManualSync(), "sincronização em andamento é ignorada")

	close(lister.block)

	assert.Eventually(t, func() bool {
		return catalog.Len() == 1 && service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestRoleCatalogSyncService_Desabilitado(t *testing.T) {
	cfg := testConfig()
	cfg.RoleCatalogSync.Enabled = false
	lister := &stubRoleLister{}
	service := NewRoleCatalogSyncService(lister, rostering.NewRoleCatalog(), nil, cfg)

	require.NoError(t, service.Start(context.Background()))

	assert.Empty(t, lister.tokens)
}

func TestRoleCatalogSyncService_CronInvalido(t *testing.T) {
	cfg := testConfig()
	cfg.RoleCatalogSync.CronSchedule = "nao e cron"
	service := NewRoleCatalogSyncService(&stubRoleLister{}, rostering.NewRoleCatalog(), nil, cfg)

	assert.Error(t, service.Start(context.Background()))
}
