package catalog

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

// ProductInput carries the caller-supplied product fields. The id is always
// assigned by the repository and the SKU is immutable after creation.
type ProductInput struct {
	Name     string
	Category string
	Price    float64
	SKU      string
}

type Service struct {
	products domain.Repository
	stock    inventory.Repository
	log      observability.Logger
}

func NewService(products domain.Repository, stock inventory.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		products: products,
		stock:    stock,
		log:      logger.With(observability.F("component", "catalog_service")),
	}
}

func (s *Service) AddProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	logger := logctx.FromOr(ctx, s.log)

	product, err := domain.New(in.Name, in.Category, in.Price, in.SKU)
	if err != nil {
		return nil, err
	}

	if existing, err := s.products.FindByName(ctx, in.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: name=%q", domain.ErrDuplicateName, in.Name)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing, err := s.products.FindBySKU(ctx, in.SKU); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: sku=%q", domain.ErrDuplicateSKU, in.SKU)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("product_added",
		observability.F("product_id", product.ID),
		observability.F("sku", product.SKU),
	)
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// UpdateProduct changes name, category, and price. The SKU is deliberately
// left untouched.
func (s *Service) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Category = in.Category
	if err := product.Reprice(in.Price); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product together with its stock records at every
// store.
func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	logger := logctx.FromOr(ctx, s.log)

	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.stock.DeleteByProduct(ctx, id); err != nil {
		return fmt.Errorf("catalog: delete stock records for product %d: %w", id, err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("product_deleted", observability.F("product_id", id))
	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *Service) FilterByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.products.FindByCategory(ctx, category)
}

func (s *Service) SearchByName(ctx context.Context, sub string) ([]domain.Product, error) {
	return s.products.SearchByName(ctx, sub)
}

func (s *Service) SearchByNameAndCategory(ctx context.Context, sub, category string) ([]domain.Product, error) {
	return s.products.SearchByNameAndCategory(ctx, sub, category)
}

func (s *Service) ProductsByCategoryAndStore(ctx context.Context, category string, storeID uint) ([]domain.Product, error) {
	return s.products.FindByCategoryAndStore(ctx, category, storeID)
}

func (s *Service) ProductsByPriceRange(ctx context.Context, min, max float64) ([]domain.Product, error) {
	return s.products.FindByPriceBetween(ctx, min, max)
}
