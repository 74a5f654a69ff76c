package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/order"
)

type OrderRepository struct {
	mu         sync.RWMutex
	orders     map[uint]*domain.Order
	nextID     uint
	nextLineID uint
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders:     make(map[uint]*domain.Order),
		nextID:     1,
		nextLineID: 1,
	}
}

func (r *OrderRepository) Create(ctx context.Context, ord *domain.Order) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	ord.ID = r.nextID
	r.nextID++
	r.orders[ord.ID] = cloneOrder(ord)
	return nil
}

func (r *OrderRepository) CreateLine(ctx context.Context, line *domain.Line) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	ord, ok := r.orders[line.OrderID]
	if !ok {
		return domain.ErrNotFound
	}

	line.ID = r.nextLineID
	r.nextLineID++
	ord.Lines = append(ord.Lines, *line)
	return nil
}

func (r *OrderRepository) Save(ctx context.Context, ord *domain.Order) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.orders[ord.ID]
	if !ok {
		return domain.ErrNotFound
	}

	clone := cloneOrder(ord)
	// Lines are persisted through CreateLine; keep the stored ones when the
	// caller's copy carries ids the repository already assigned.
	if len(clone.Lines) == 0 {
		clone.Lines = existing.Lines
	}
	r.orders[ord.ID] = clone
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	ord, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(ord), nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, ord := range r.orders {
		if ord.CustomerID == customerID {
			out = append(out, *cloneOrder(ord))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *OrderRepository) snapshot() map[uint]*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[uint]*domain.Order, len(r.orders))
	for id, ord := range r.orders {
		out[id] = cloneOrder(ord)
	}
	return out
}

func (r *OrderRepository) restore(orders map[uint]*domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = orders
}

func cloneOrder(ord *domain.Order) *domain.Order {
	if ord == nil {
		return nil
	}
	return ord.Clone()
}
