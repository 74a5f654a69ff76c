package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/peemtanapat/retail-backoffice/internal/domain/review"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*review.Review, error) {
	var rev review.Review
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, review.ErrNotFound)
	}
	return &rev, nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uint) ([]review.Review, error) {
	var reviews []review.Review
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByProduct(ctx context.Context, productID uint) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByCustomer(ctx context.Context, customerID uint) ([]review.Review, error) {
	var reviews []review.Review
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	return r.db.WithContext(ctx).Save(rev).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&review.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return review.ErrNotFound
	}
	return nil
}
