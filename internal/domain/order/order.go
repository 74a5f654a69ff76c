package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("order: not found")
	ErrNoLines         = errors.New("order: at least one line is required")
	ErrInvalidQuantity = errors.New("order: quantity must be greater than zero")
)

// Order owns its lines; customer, store, and products are referenced by id
// only, so serializing an order never walks back into other aggregates.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	StoreID    uint      `gorm:"index;not null" json:"store_id"`
	Lines      []Line    `gorm:"foreignKey:OrderID" json:"lines"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Line is one purchased product. UnitPrice is the product's price captured at
// purchase time; later catalog repricing never alters historical totals.
type Line struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

func (Line) TableName() string { return "order_lines" }

// New creates an order header with no lines and a zero total. The total is
// set exactly once, after every line has been priced.
func New(customerID, storeID uint) *Order {
	return &Order{
		CustomerID: customerID,
		StoreID:    storeID,
		CreatedAt:  time.Now().UTC(),
	}
}

func NewLine(orderID, productID uint, quantity int, unitPrice float64) (*Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Line{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Total sums unit price times quantity over the given lines. It is always
// computed server-side; client-submitted totals are ignored.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

func (o *Order) Clone() *Order {
	clone := *o
	clone.Lines = append([]Line(nil), o.Lines...)
	return &clone
}
