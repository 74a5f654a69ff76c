package order

import "context"

type Repository interface {
	// Create persists the order header and assigns its id.
	Create(ctx context.Context, order *Order) error
	CreateLine(ctx context.Context, line *Line) error
	// Save persists header changes, in practice the computed total.
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]Order, error)
}
