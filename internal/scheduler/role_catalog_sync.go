package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
)

// RoleLister é a parte do backend usada pela sincronização
type RoleLister interface {
	ListRoles(ctx context.Context, token string) ([]domain.Role, error)
}

type RoleCatalogSyncConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
}

// RoleCatalogSyncService mantém o catálogo de papéis em memória atualizado
type RoleCatalogSyncService struct {
	scheduler           *gocron.Scheduler
	config              RoleCatalogSyncConfig
	roles               RoleLister
	catalog             *rostering.RoleCatalog
	metrics             *metrics.Registry
	serviceToken        string
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncRoles       int
}

func NewRoleCatalogSyncService(
	roles RoleLister,
	catalog *rostering.RoleCatalog,
	registry *metrics.Registry,
	appConfig *config.Config,
) *RoleCatalogSyncService {
	syncConfig := RoleCatalogSyncConfig{
		CronSchedule: appConfig.RoleCatalogSync.CronSchedule,
		Timeout:      appConfig.Backend.Timeout,
		SyncEnabled:  appConfig.RoleCatalogSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"backend":       appConfig.Backend.Provider,
	}).Info("Configuração do agendador do catálogo de papéis carregada")

	return &RoleCatalogSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		roles:        roles,
		catalog:      catalog,
		metrics:      registry,
		serviceToken: appConfig.ServiceToken(),
		baseCtx:      context.Background(),
	}
}

// Start agenda a sincronização, executa a primeira imediatamente e para o
// agendador quando ctx é cancelado
func (s *RoleCatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do catálogo de papéis desabilitada por configuração")
		return nil
	}

	if s.serviceToken == "" {
		logrus.Warn("Nenhum token de serviço configurado, a sincronização do catálogo de papéis será anônima")
	}

	s.baseCtx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do catálogo de papéis")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncRoleCatalog)
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do catálogo de papéis: %w", err)
	}

	s.scheduler.StartAsync()
	go s.syncRoleCatalog()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do catálogo de papéis")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RoleCatalogSyncService) syncRoleCatalog() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do catálogo de papéis já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.refresh()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.metrics.ObserveRoleCatalogSync(err)

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao sincronizar catálogo de papéis")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncRoles = s.catalog.Len()

	logrus.WithFields(logrus.Fields{
		"roles":    s.lastSyncRoles,
		"duration": time.Since(s.lastSyncStartedAt).String(),
	}).Info("Catálogo de papéis sincronizado")
}

func (s *RoleCatalogSyncService) refresh() error {
	ctx := s.baseCtx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	roles, err := s.roles.ListRoles(ctx, s.serviceToken)
	if err != nil {
		return err
	}

	if len(roles) == 0 {
		return fmt.Errorf("backend não retornou nenhum papel")
	}

	s.catalog.Replace(roles)
	return nil
}

// TriggerManualSync dispara uma sincronização fora do agendamento.
// Retorna false quando já existe uma em andamento.
func (s *RoleCatalogSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do catálogo de papéis já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do catálogo de papéis")
	go s.syncRoleCatalog()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *RoleCatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"roles_cached":           s.catalog.Len(),
		"catalog_refreshed_at":   s.catalog.RefreshedAt(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
