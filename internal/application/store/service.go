package store

import (
	"context"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

type Service struct {
	stores domain.Repository
	log    observability.Logger
}

func NewService(stores domain.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		stores: stores,
		log:    logger.With(observability.F("component", "store_service")),
	}
}

// Register adds a store; the repository rejects a duplicate name+address pair.
func (s *Service) Register(ctx context.Context, name, address string) (*domain.Store, error) {
	logger := logctx.FromOr(ctx, s.log)

	st := domain.New(name, address)
	if err := s.stores.Create(ctx, st); err != nil {
		return nil, err
	}

	logger.Info("store_registered",
		observability.F("store_id", st.ID),
		observability.F("name", st.Name),
	)
	return st, nil
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.stores.Exists(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Store, error) {
	return s.stores.FindByID(ctx, id)
}
