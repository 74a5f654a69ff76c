package inventory

import "errors"

var (
	ErrNotFound          = errors.New("inventory: stock record not found")
	ErrAlreadyExists     = errors.New("inventory: stock record already exists for this store and product")
	ErrNegativeQuantity  = errors.New("inventory: quantity cannot be negative")
	ErrInvalidQuantity   = errors.New("inventory: quantity must be greater than zero")
	ErrInsufficientStock = errors.New("inventory: insufficient stock")
)

// StockRecord is the quantity-on-hand of one product at one store. At most
// one record exists per (store, product) pair and Quantity never goes
// negative; every mutation path re-validates the invariant.
type StockRecord struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StoreID   uint `gorm:"not null;uniqueIndex:idx_stock_store_product" json:"store_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_stock_store_product" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
}

func New(storeID, productID uint, quantity int) (*StockRecord, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &StockRecord{
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  quantity,
	}, nil
}

// SetQuantity replaces the quantity on hand, rejecting negative values
// rather than clamping.
func (r *StockRecord) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	r.Quantity = quantity
	return nil
}

// Deduct removes quantity from stock. It fails with ErrInsufficientStock when
// more is requested than is on hand, leaving the record unchanged.
func (r *StockRecord) Deduct(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > r.Quantity {
		return ErrInsufficientStock
	}
	r.Quantity -= quantity
	return nil
}
