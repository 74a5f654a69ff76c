package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
)

type stockKey struct {
	storeID   uint
	productID uint
}

type StockRepository struct {
	mu      sync.RWMutex
	records map[stockKey]*domain.StockRecord
	nextID  uint
}

func NewStockRepository() *StockRepository {
	return &StockRepository{
		records: make(map[stockKey]*domain.StockRecord),
		nextID:  1,
	}
}

func (r *StockRepository) Create(ctx context.Context, rec *domain.StockRecord) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey{storeID: rec.StoreID, productID: rec.ProductID}
	if _, exists := r.records[key]; exists {
		return domain.ErrAlreadyExists
	}

	rec.ID = r.nextID
	r.nextID++
	r.records[key] = cloneRecord(rec)
	return nil
}

func (r *StockRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uint) (*domain.StockRecord, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[stockKey{storeID: storeID, productID: productID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (r *StockRepository) Save(ctx context.Context, rec *domain.StockRecord) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[stockKey{storeID: rec.StoreID, productID: rec.ProductID}] = cloneRecord(rec)
	return nil
}

func (r *StockRepository) FindByStore(ctx context.Context, storeID uint) ([]domain.StockRecord, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.StockRecord, 0)
	for key, rec := range r.records {
		if key.storeID == storeID {
			out = append(out, *cloneRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StockRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.records {
		if key.productID == productID {
			delete(r.records, key)
		}
	}
	return nil
}

// snapshot and restore support the transactional rollback of the memory
// unit of work.
func (r *StockRepository) snapshot() map[stockKey]*domain.StockRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[stockKey]*domain.StockRecord, len(r.records))
	for key, rec := range r.records {
		out[key] = cloneRecord(rec)
	}
	return out
}

func (r *StockRepository) restore(records map[stockKey]*domain.StockRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = records
}

func cloneRecord(rec *domain.StockRecord) *domain.StockRecord {
	if rec == nil {
		return nil
	}
	clone := *rec
	return &clone
}
