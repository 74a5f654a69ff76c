package order

import (
	"context"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

// Repositories is the collaborator set handed to a unit of work. Every read
// and write performed through it belongs to the surrounding transaction.
type Repositories interface {
	Stores() store.Repository
	Products() catalog.Repository
	Stock() inventory.Repository
	Orders() order.Repository
}

// UnitOfWork executes fn atomically: all writes made through the passed
// repositories become visible together on success, or none do when fn
// returns an error.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}
