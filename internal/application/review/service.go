package review

import (
	"context"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/review"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

type ReviewInput struct {
	CustomerID uint
	ProductID  uint
	StoreID    uint
	Rating     int
	Comment    string
}

type Service struct {
	reviews domain.Repository
	log     observability.Logger
}

func NewService(reviews domain.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		reviews: reviews,
		log:     logger.With(observability.F("component", "review_service")),
	}
}

func (s *Service) CreateReview(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	logger := logctx.FromOr(ctx, s.log)

	rev, err := domain.New(in.CustomerID, in.ProductID, in.StoreID, in.Rating, in.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	logger.Info("review_created",
		observability.F("review_id", rev.ID),
		observability.F("product_id", rev.ProductID),
	)
	return rev, nil
}

func (s *Service) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *Service) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *Service) ReviewsByStoreAndProduct(ctx context.Context, storeID, productID uint) ([]domain.Review, error) {
	return s.reviews.FindByStoreAndProduct(ctx, storeID, productID)
}

func (s *Service) ReviewsByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}

func (s *Service) ReviewsByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	return s.reviews.FindByCustomer(ctx, customerID)
}

func (s *Service) UpdateReview(ctx context.Context, id string, in ReviewInput) (*domain.Review, error) {
	existing, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := domain.New(in.CustomerID, in.ProductID, in.StoreID, in.Rating, in.Comment)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID

	if err := s.reviews.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}

// AverageRating is zero when the product has no reviews.
func (s *Service) AverageRating(ctx context.Context, productID uint) (float64, error) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return domain.AverageRating(reviews), nil
}
