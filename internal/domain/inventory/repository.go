package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, record *StockRecord) error
	// FindByStoreAndProduct returns the single record for the pair. Inside a
	// unit of work the returned row is locked until the transaction ends so
	// that concurrent read-check-decrement sequences serialize.
	FindByStoreAndProduct(ctx context.Context, storeID, productID uint) (*StockRecord, error)
	Save(ctx context.Context, record *StockRecord) error
	FindByStore(ctx context.Context, storeID uint) ([]StockRecord, error)
	DeleteByProduct(ctx context.Context, productID uint) error
}
