package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/memory"
)

func newStockFixture(t *testing.T, quantity int) (*memory.UnitOfWork, *memory.StockRepository) {
	t.Helper()

	storeRepo := memory.NewStoreRepository()
	stockRepo := memory.NewStockRepository()
	productRepo := memory.NewProductRepository(stockRepo)
	orderRepo := memory.NewOrderRepository()

	rec, err := inventory.New(1, 1, quantity)
	require.NoError(t, err)
	require.NoError(t, stockRepo.Create(context.Background(), rec))

	return memory.NewUnitOfWork(storeRepo, productRepo, stockRepo, orderRepo), stockRepo
}

// deductInTx runs one read-check-deduct sequence inside a unit of work.
func deductInTx(ctx context.Context, uow *memory.UnitOfWork, quantity int) error {
	return uow.Do(ctx, func(ctx context.Context, r apporder.Repositories) error {
		rec, err := r.Stock().FindByStoreAndProduct(ctx, 1, 1)
		if err != nil {
			return err
		}
		if err := rec.Deduct(quantity); err != nil {
			return err
		}
		return r.Stock().Save(ctx, rec)
	})
}

func TestUnitOfWorkRollbackKeepsUncommittedWritesOut(t *testing.T) {
	ctx := context.Background()
	uow, stockRepo := newStockFixture(t, 5)

	err := uow.Do(ctx, func(ctx context.Context, r apporder.Repositories) error {
		rec, err := r.Stock().FindByStoreAndProduct(ctx, 1, 1)
		require.NoError(t, err)
		require.NoError(t, rec.Deduct(3))
		require.NoError(t, r.Stock().Save(ctx, rec))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	rec, err := stockRepo.FindByStoreAndProduct(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Quantity)
}

func TestUnitOfWorkSerializesConcurrentTransactions(t *testing.T) {
	ctx := context.Background()
	uow, stockRepo := newStockFixture(t, 5)

	// Two transactions race to deduct 4 from a stock of 5. Exactly one can
	// win; the loser's rollback must not erase the winner's committed
	// deduction.
	var successes atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := deductInTx(ctx, uow, 4); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	rec, err := stockRepo.FindByStoreAndProduct(ctx, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, successes.Load())
	assert.Equal(t, 1, rec.Quantity)
}

func TestUnitOfWorkConcurrentDeductionsNeverOversell(t *testing.T) {
	ctx := context.Background()
	const initial = 10
	uow, stockRepo := newStockFixture(t, initial)

	var successes atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := deductInTx(ctx, uow, 3); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	rec, err := stockRepo.FindByStoreAndProduct(ctx, 1, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rec.Quantity, 0)
	assert.Equal(t, initial-int(successes.Load())*3, rec.Quantity)
	assert.LessOrEqual(t, int(successes.Load())*3, initial)
}
