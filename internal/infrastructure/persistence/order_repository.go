package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the header only; lines are written individually as the
// placement workflow fulfills them.
func (r *OrderRepository) Create(ctx context.Context, ord *order.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ord).Error
}

func (r *OrderRepository) CreateLine(ctx context.Context, line *order.Line) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *OrderRepository) Save(ctx context.Context, ord *order.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ord).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var ord order.Order
	if err := r.db.WithContext(ctx).Preload("Lines").First(&ord, id).Error; err != nil {
		return nil, translateNotFound(err, order.ErrNotFound)
	}
	return &ord, nil
}

func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID uint) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("Lines").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
