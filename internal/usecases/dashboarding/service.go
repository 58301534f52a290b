package dashboarding

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Dashboarder interface {
	GetDashboard(ctx context.Context, session domain.Session, filter domain.OrderFilter) (*domain.DashboardMetrics, error)
	ListOrders(ctx context.Context, session domain.Session, filter domain.OrderFilter) ([]domain.Order, error)
}

type Service struct {
	store             integrator.RecordStore
	mapper            Mapper
	defaultCollection string
}

func NewService(cfg *config.Config, store integrator.RecordStore) Dashboarder {
	return &Service{
		store:             store,
		mapper:            NewMapper(cfg.OrderFields(), cfg.Location()),
		defaultCollection: cfg.Orders.Collection,
	}
}

func (s *Service) GetDashboard(ctx context.Context, session domain.Session, filter domain.OrderFilter) (*domain.DashboardMetrics, error) {
	orders, err := s.loadOrders(ctx, session, filter)
	if err != nil {
		return nil, err
	}

	metrics := Aggregate(orders)
	return &metrics, nil
}

func (s *Service) ListOrders(ctx context.Context, session domain.Session, filter domain.OrderFilter) ([]domain.Order, error) {
	orders, err := s.loadOrders(ctx, session, filter)
	if err != nil {
		return nil, err
	}

	return SortNewestFirst(FilterOrders(orders, filter.Status, filter.Search)), nil
}

func (s *Service) loadOrders(ctx context.Context, session domain.Session, filter domain.OrderFilter) ([]domain.Order, error) {
	collection := s.collectionFor(session.Identity)
	if collection == "" {
		return nil, ErrNoOrdersCollection
	}

	startedAt := time.Now()
	records, err := s.store.ListRecords(ctx, session.Token, collection, domain.RecordQuery{})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao carregar pedidos da tabela %s", collection)
	}

	orders := FilterByDateRange(s.mapper.MapOrders(records), filter.StartDate, filter.EndDate)

	log.ForContext(ctx).WithFields(log.Fields{
		"collection":  collection,
		"records":     len(records),
		"filtered":    len(orders),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Debug("Pedidos carregados")

	return orders, nil
}

// collectionFor usa a tabela vinculada ao usuário e, sem ela, a tabela padrão
func (s *Service) collectionFor(identity domain.Identity) string {
	if identity.Collection != "" {
		return identity.Collection
	}
	return s.defaultCollection
}
