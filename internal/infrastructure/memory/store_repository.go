package memory

import (
	"context"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

type StoreRepository struct {
	mu     sync.RWMutex
	stores map[uint]*domain.Store
	nextID uint
}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{
		stores: make(map[uint]*domain.Store),
		nextID: 1,
	}
}

func (r *StoreRepository) Create(ctx context.Context, st *domain.Store) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.stores {
		if existing.Name == st.Name && existing.Address == st.Address {
			return domain.ErrDuplicate
		}
	}

	st.ID = r.nextID
	r.nextID++
	r.stores[st.ID] = cloneStore(st)
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uint) (*domain.Store, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneStore(st), nil
}

func (r *StoreRepository) Exists(ctx context.Context, id uint) (bool, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.stores[id]
	return ok, nil
}

func cloneStore(st *domain.Store) *domain.Store {
	if st == nil {
		return nil
	}
	clone := *st
	return &clone
}
