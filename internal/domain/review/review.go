package review

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("review: not found")
	ErrInvalidRating = errors.New("review: rating must be between 1 and 5")
)

// Review keeps string ids so external systems can reference reviews without
// guessing at database sequences.
type Review struct {
	ID         string `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"index;not null" json:"customer_id"`
	ProductID  uint   `gorm:"index;not null" json:"product_id"`
	StoreID    uint   `gorm:"index;not null" json:"store_id"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `json:"comment"`
}

func New(customerID, productID, storeID uint, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Review{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  productID,
		StoreID:    storeID,
		Rating:     rating,
		Comment:    comment,
	}, nil
}

// AverageRating returns the mean rating, or zero when there are no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
