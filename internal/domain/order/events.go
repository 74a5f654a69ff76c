package order

import "time"

// PlacedEvent is emitted after an order commits. Downstream consumers (e.g.
// the confirmation notifier) react to it outside the placement transaction.
type PlacedEvent struct {
	OrderID    uint
	CustomerID uint
	StoreID    uint
	TotalPrice float64
	LineCount  int
	OccurredAt time.Time
}

func (PlacedEvent) EventName() string { return "order.placed" }

func NewPlacedEvent(o *Order) PlacedEvent {
	return PlacedEvent{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		StoreID:    o.StoreID,
		TotalPrice: o.TotalPrice,
		LineCount:  len(o.Lines),
		OccurredAt: time.Now().UTC(),
	}
}
