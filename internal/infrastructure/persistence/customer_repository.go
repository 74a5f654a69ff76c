package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/peemtanapat/retail-backoffice/internal/domain/customer"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	return r.db.WithContext(ctx).Create(cust).Error
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var cust customer.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cust).Error; err != nil {
		return nil, translateNotFound(err, customer.ErrNotFound)
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var cust customer.Customer
	if err := r.db.WithContext(ctx).First(&cust, id).Error; err != nil {
		return nil, translateNotFound(err, customer.ErrNotFound)
	}
	return &cust, nil
}
