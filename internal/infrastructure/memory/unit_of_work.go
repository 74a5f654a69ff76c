package memory

import (
	"context"
	"sync"

	apporder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

// UnitOfWork gives the memory repositories transactional semantics by
// snapshotting mutable state before the callback runs and restoring it when
// the callback fails. Placement only writes stock and orders inside the
// callback, so those are the repositories snapshotted. Transactions are
// serialized with a mutex held for the whole callback; a restore must never
// clobber writes committed by another transaction in the gap.
type UnitOfWork struct {
	mu       sync.Mutex
	stores   *StoreRepository
	products *ProductRepository
	stock    *StockRepository
	orders   *OrderRepository

	ordersView order.Repository
}

func NewUnitOfWork(stores *StoreRepository, products *ProductRepository, stock *StockRepository, orders *OrderRepository) *UnitOfWork {
	return &UnitOfWork{
		stores:     stores,
		products:   products,
		stock:      stock,
		orders:     orders,
		ordersView: orders,
	}
}

// ReplaceOrders swaps the order repository handed to callbacks. Snapshots
// still cover the underlying memory repository, so a wrapper that delegates
// before failing leaves no partial state behind.
func (u *UnitOfWork) ReplaceOrders(r order.Repository) {
	u.ordersView = r
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, r apporder.Repositories) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	stockSnap := u.stock.snapshot()
	orderSnap := u.orders.snapshot()

	if err := fn(ctx, &memRepositories{uow: u}); err != nil {
		u.stock.restore(stockSnap)
		u.orders.restore(orderSnap)
		return err
	}
	return nil
}

type memRepositories struct {
	uow *UnitOfWork
}

func (r *memRepositories) Stores() store.Repository     { return r.uow.stores }
func (r *memRepositories) Products() catalog.Repository { return r.uow.products }
func (r *memRepositories) Stock() inventory.Repository  { return r.uow.stock }
func (r *memRepositories) Orders() order.Repository     { return r.uow.ordersView }
