package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	domain "github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

// Availability reports whether a wanted quantity can be fulfilled from the
// stock on hand at one store.
type Availability struct {
	Available bool `json:"available"`
	OnHand    int  `json:"available_stock"`
	Wanted    int  `json:"requested_quantity"`
}

// Service manages stock records outside the order path. Order placement only
// ever decrements records this service created.
type Service struct {
	stock    domain.Repository
	products catalog.Repository
	stores   store.Repository
	log      observability.Logger
}

func NewService(stock domain.Repository, products catalog.Repository, stores store.Repository, logger observability.Logger) *Service {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Service{
		stock:    stock,
		products: products,
		stores:   stores,
		log:      logger.With(observability.F("component", "inventory_service")),
	}
}

// CreateStockRecord registers the quantity-on-hand for a (store, product)
// pair that has none yet.
func (s *Service) CreateStockRecord(ctx context.Context, storeID, productID uint, quantity int) (*domain.StockRecord, error) {
	logger := logctx.FromOr(ctx, s.log)

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	if _, err := s.stock.FindByStoreAndProduct(ctx, storeID, productID); err == nil {
		return nil, fmt.Errorf("%w: store=%d product=%d", domain.ErrAlreadyExists, storeID, productID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	record, err := domain.New(storeID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.stock.Create(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("stock_record_created",
		observability.F("store_id", storeID),
		observability.F("product_id", productID),
		observability.F("quantity", quantity),
	)
	return record, nil
}

// UpdateQuantity replaces the quantity of an existing record.
func (s *Service) UpdateQuantity(ctx context.Context, storeID, productID uint, quantity int) (*domain.StockRecord, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	record, err := s.stock.FindByStoreAndProduct(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	if err := record.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := s.stock.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ProductsAtStore lists every product with a stock record at the store.
func (s *Service) ProductsAtStore(ctx context.Context, storeID uint) ([]catalog.Product, error) {
	records, err := s.stock.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(records))
	for _, rec := range records {
		product, err := s.products.FindByID(ctx, rec.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

// SearchAtStore matches stocked products at the store by name substring.
func (s *Service) SearchAtStore(ctx context.Context, sub string, storeID uint) ([]catalog.Product, error) {
	return s.products.SearchByNameAtStore(ctx, sub, storeID)
}

// CheckAvailability answers whether the wanted quantity is on hand. A missing
// stock record reads as zero on hand rather than an error.
func (s *Service) CheckAvailability(ctx context.Context, storeID, productID uint, wanted int) (Availability, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return Availability{}, err
	}

	record, err := s.stock.FindByStoreAndProduct(ctx, storeID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Availability{Available: false, OnHand: 0, Wanted: wanted}, nil
		}
		return Availability{}, err
	}

	return Availability{
		Available: record.Quantity >= wanted,
		OnHand:    record.Quantity,
		Wanted:    wanted,
	}, nil
}
