package memory

import (
	"context"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/customer"
)

type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[uint]*domain.Customer
	nextID    uint
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[uint]*domain.Customer),
		nextID:    1,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.customers[c.ID] = cloneCustomer(c)
	return nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Email == email {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneCustomer(c), nil
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
