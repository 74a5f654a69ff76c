package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appInventory "github.com/peemtanapat/retail-backoffice/internal/application/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/memory"
)

type inventoryFixture struct {
	svc       *appInventory.Service
	storeID   uint
	productID uint
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()
	ctx := context.Background()

	stock := memory.NewStockRepository()
	products := memory.NewProductRepository(stock)
	stores := memory.NewStoreRepository()

	st := store.New("Downtown", "1 Main St")
	require.NoError(t, stores.Create(ctx, st))

	p, err := catalog.New("keyboard", "electronics", 49.99, "KB-1")
	require.NoError(t, err)
	require.NoError(t, products.Create(ctx, p))

	return &inventoryFixture{
		svc:       appInventory.NewService(stock, products, stores, nil),
		storeID:   st.ID,
		productID: p.ID,
	}
}

func TestCreateStockRecord(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	rec, err := f.svc.CreateStockRecord(ctx, f.storeID, f.productID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Quantity)

	_, err = f.svc.CreateStockRecord(ctx, f.storeID, f.productID, 5)
	assert.ErrorIs(t, err, inventory.ErrAlreadyExists)

	_, err = f.svc.CreateStockRecord(ctx, f.storeID, 999, 5)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = f.svc.CreateStockRecord(ctx, 999, f.productID, 5)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.svc.CreateStockRecord(ctx, f.storeID, f.productID, -1)
	assert.Error(t, err)
}

func TestUpdateQuantity(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateStockRecord(ctx, f.storeID, f.productID, 10)
	require.NoError(t, err)

	rec, err := f.svc.UpdateQuantity(ctx, f.storeID, f.productID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Quantity)

	_, err = f.svc.UpdateQuantity(ctx, f.storeID, f.productID, -1)
	assert.ErrorIs(t, err, inventory.ErrNegativeQuantity)

	_, err = f.svc.UpdateQuantity(ctx, 999, f.productID, 3)
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestCheckAvailability(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	// No stock record yet: zero on hand, not an error.
	avail, err := f.svc.CheckAvailability(ctx, f.storeID, f.productID, 1)
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Zero(t, avail.OnHand)

	_, err = f.svc.CreateStockRecord(ctx, f.storeID, f.productID, 4)
	require.NoError(t, err)

	avail, err = f.svc.CheckAvailability(ctx, f.storeID, f.productID, 4)
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Equal(t, 4, avail.OnHand)
	assert.Equal(t, 4, avail.Wanted)

	avail, err = f.svc.CheckAvailability(ctx, f.storeID, f.productID, 5)
	require.NoError(t, err)
	assert.False(t, avail.Available)

	_, err = f.svc.CheckAvailability(ctx, f.storeID, 999, 1)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProductsAtStore(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	products, err := f.svc.ProductsAtStore(ctx, f.storeID)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = f.svc.CreateStockRecord(ctx, f.storeID, f.productID, 1)
	require.NoError(t, err)

	products, err = f.svc.ProductsAtStore(ctx, f.storeID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, f.productID, products[0].ID)

	found, err := f.svc.SearchAtStore(ctx, "key", f.storeID)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = f.svc.SearchAtStore(ctx, "lamp", f.storeID)
	require.NoError(t, err)
	assert.Empty(t, found)
}
