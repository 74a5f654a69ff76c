package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer: not found")

// Customer is keyed by unique email. Records are created lazily on a
// customer's first order and reused unchanged on repeat orders.
type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Phone string `gorm:"not null" json:"phone"`
}

func New(name, email, phone string) *Customer {
	return &Customer{Name: name, Email: email, Phone: phone}
}

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindByID(ctx context.Context, id uint) (*Customer, error)
}
