package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/cache"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/database/postgres"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/directusclient"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase/supabaseclient"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/repository"
	"github.com/emanuelkel/dash-delivery-wiz/internal/api"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/scheduler"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/dashboarding"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/rostering"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel)
	log.L.WithField("backend", cfg.Backend.Provider).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := metrics.NewRegistry()

	backend := newBackend(cfg, registry)

	if cfg.Database.DSN != "" {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		backend = integrator.WithRecordStore(backend, repository.NewRecordRepository(pgConn))
		log.L.Info("Pedidos serão lidos direto do PostgreSQL")
	}

	profileCache := newProfileCache(ctx, cfg)

	catalog := rostering.NewRoleCatalog()

	authenticator := authenticating.NewService(backend)
	profiler := profiling.NewService(cfg, backend, profileCache)
	dashboarder := dashboarding.NewService(cfg, backend)
	roster := rostering.NewService(cfg, backend, catalog)

	roleCatalogSync := scheduler.NewRoleCatalogSyncService(backend, catalog, registry, cfg)
	if err := roleCatalogSync.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do catálogo de papéis")
	} else {
		log.L.Info("Agendador do catálogo de papéis iniciado com sucesso")
	}

	server, err := api.New(cfg, registry, api.Services{
		Authenticator:   authenticator,
		Profiler:        profiler,
		Dashboarder:     dashboarder,
		Roster:          roster,
		RoleCatalogSync: roleCatalogSync,
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// newBackend escolhe o adaptador pelo BACKEND_PROVIDER
func newBackend(cfg *config.Config, registry *metrics.Registry) integrator.Backend {
	httpClient := &http.Client{
		Timeout:   cfg.Backend.Timeout,
		Transport: registry.InstrumentTransport(cfg.Backend.Provider, nil),
	}

	switch cfg.Backend.Provider {
	case config.ProviderSupabase:
		return supabase.New(cfg, supabaseclient.NewClient(cfg.Supabase, httpClient))
	default:
		return directus.New(cfg, directusclient.NewClient(cfg.Directus, httpClient))
	}
}

// newProfileCache usa o Redis quando configurado; sem ele o perfil público é lido a cada requisição
func newProfileCache(ctx context.Context, cfg *config.Config) cache.ProfileCache {
	if cfg.Cache.RedisURL == "" {
		return cache.NoopProfileCache{}
	}

	client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
	if err != nil {
		log.L.WithError(err).Warn("Redis indisponível, seguindo sem cache do perfil público")
		return cache.NoopProfileCache{}
	}

	log.L.Info("Cache do perfil público no Redis habilitado")
	return cache.NewRedisProfileCache(client)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
