package persistence

import (
	"context"

	"gorm.io/gorm"

	apporder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

// UnitOfWork runs a function inside a single database transaction. Any error
// returned by the function rolls the whole transaction back, so partial stock
// decrements never become visible.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, r apporder.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &txRepositories{tx: tx})
	})
}

// txRepositories hands out repositories bound to the in-flight transaction.
// Stock lookups take row locks so concurrent placements for the same record
// serialize on the database.
type txRepositories struct {
	tx *gorm.DB
}

func (r *txRepositories) Stores() store.Repository {
	return NewStoreRepository(r.tx)
}

func (r *txRepositories) Products() catalog.Repository {
	return NewProductRepository(r.tx)
}

func (r *txRepositories) Stock() inventory.Repository {
	return newLockedStockRepository(r.tx)
}

func (r *txRepositories) Orders() order.Repository {
	return NewOrderRepository(r.tx)
}
