package persistence

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apporder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/review"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

var seq atomic.Int64

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:persistence%d?mode=memory&cache=shared", seq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestStoreRepositoryDuplicate(t *testing.T) {
	db := openDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, store.New("Downtown", "1 Main St")))
	assert.ErrorIs(t, repo.Create(ctx, store.New("Downtown", "1 Main St")), store.ErrDuplicate)

	require.NoError(t, repo.Create(ctx, store.New("Downtown", "2 Side St")))

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductRepositoryDuplicateSKU(t *testing.T) {
	db := openDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p1, err := catalog.New("keyboard", "electronics", 49.99, "KB-1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p1))

	p2, err := catalog.New("other", "electronics", 10, "KB-1")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, p2), catalog.ErrDuplicateSKU)
}

func TestStockRepositoryDuplicatePair(t *testing.T) {
	db := openDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	rec, err := inventory.New(1, 1, 5)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rec))

	dup, err := inventory.New(1, 1, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), inventory.ErrAlreadyExists)

	// Other store, same product is a distinct record.
	other, err := inventory.New(2, 1, 3)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	_, err = repo.FindByStoreAndProduct(ctx, 3, 1)
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestOrderRepositoryLoadsLines(t *testing.T) {
	db := openDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	ord := order.New(1, 1)
	require.NoError(t, repo.Create(ctx, ord))
	require.NotZero(t, ord.ID)

	line, err := order.NewLine(ord.ID, 7, 2, 49.99)
	require.NoError(t, err)
	require.NoError(t, repo.CreateLine(ctx, line))

	ord.TotalPrice = 99.98
	require.NoError(t, repo.Save(ctx, ord))

	loaded, err := repo.FindByID(ctx, ord.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, uint(7), loaded.Lines[0].ProductID)
	assert.InDelta(t, 99.98, loaded.TotalPrice, 1e-9)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, order.ErrNotFound)

	byCustomer, err := repo.FindByCustomer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)
}

func TestReviewRepositoryDelete(t *testing.T) {
	db := openDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	rev, err := review.New(1, 2, 3, 4, "solid")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rev))

	require.NoError(t, repo.Delete(ctx, rev.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rev.ID), review.ErrNotFound)
}

func TestUnitOfWorkRollsBack(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	stock := NewStockRepository(db)
	rec, err := inventory.New(1, 1, 5)
	require.NoError(t, err)
	require.NoError(t, stock.Create(ctx, rec))

	boom := fmt.Errorf("boom")
	err = NewUnitOfWork(db).Do(ctx, func(ctx context.Context, r apporder.Repositories) error {
		inTx, ferr := r.Stock().FindByStoreAndProduct(ctx, 1, 1)
		if ferr != nil {
			return ferr
		}
		if derr := inTx.Deduct(3); derr != nil {
			return derr
		}
		if serr := r.Stock().Save(ctx, inTx); serr != nil {
			return serr
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	after, err := stock.FindByStoreAndProduct(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, after.Quantity)
}
