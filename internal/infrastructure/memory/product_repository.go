package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[uint]*domain.Product
	nextID   uint

	// stock lets the store-scoped queries answer which products a store
	// carries; wired by the memory unit of work.
	stock *StockRepository
}

func NewProductRepository(stock *StockRepository) *ProductRepository {
	return &ProductRepository{
		products: make(map[uint]*domain.Product),
		nextID:   1,
		stock:    stock,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicateSKU
		}
	}

	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return r.findFirst(func(p *domain.Product) bool { return p.SKU == sku })
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.findFirst(func(p *domain.Product) bool { return p.Name == name })
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return true }), nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Category == category }), nil
}

func (r *ProductRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Price >= min && p.Price <= max }), nil
}

func (r *ProductRepository) SearchByName(ctx context.Context, sub string) ([]domain.Product, error) {
	sub = strings.ToLower(sub)
	return r.filter(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), sub)
	}), nil
}

func (r *ProductRepository) SearchByNameAndCategory(ctx context.Context, sub, category string) ([]domain.Product, error) {
	sub = strings.ToLower(sub)
	return r.filter(func(p *domain.Product) bool {
		return p.Category == category && strings.Contains(strings.ToLower(p.Name), sub)
	}), nil
}

func (r *ProductRepository) SearchByNameAtStore(ctx context.Context, sub string, storeID uint) ([]domain.Product, error) {
	stocked := r.stockedAt(storeID)
	sub = strings.ToLower(sub)
	return r.filter(func(p *domain.Product) bool {
		return stocked[p.ID] && strings.Contains(strings.ToLower(p.Name), sub)
	}), nil
}

func (r *ProductRepository) FindByCategoryAndStore(ctx context.Context, category string, storeID uint) ([]domain.Product, error) {
	stocked := r.stockedAt(storeID)
	return r.filter(func(p *domain.Product) bool {
		return stocked[p.ID] && p.Category == category
	}), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) findFirst(match func(*domain.Product) bool) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if match(p) {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProductRepository) filter(match func(*domain.Product) bool) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0)
	for _, p := range r.products {
		if match(p) {
			out = append(out, *cloneProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ProductRepository) stockedAt(storeID uint) map[uint]bool {
	stocked := make(map[uint]bool)
	if r.stock == nil {
		return stocked
	}
	records, _ := r.stock.FindByStore(context.Background(), storeID)
	for _, rec := range records {
		stocked[rec.ProductID] = true
	}
	return stocked
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
