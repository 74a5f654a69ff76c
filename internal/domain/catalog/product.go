package catalog

import "errors"

var (
	ErrNotFound      = errors.New("catalog: product not found")
	ErrDuplicateSKU  = errors.New("catalog: sku already in use")
	ErrDuplicateName = errors.New("catalog: product name already in use")
	ErrInvalidPrice  = errors.New("catalog: price must be zero or greater")
)

// Product is a catalog entry. SKU is unique and never changes after creation;
// Price here is the current list price, orders snapshot it at purchase time.
type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"index;not null" json:"name"`
	Category string  `gorm:"index;not null" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	SKU      string  `gorm:"uniqueIndex;not null" json:"sku"`
}

func New(name, category string, price float64, sku string) (*Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		Name:     name,
		Category: category,
		Price:    price,
		SKU:      sku,
	}, nil
}

// Reprice replaces the list price. Existing order lines are unaffected.
func (p *Product) Reprice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	p.Price = price
	return nil
}
