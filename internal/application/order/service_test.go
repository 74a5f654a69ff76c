package order_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appOrder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	domorder "github.com/peemtanapat/retail-backoffice/internal/domain/order"
	domoutbox "github.com/peemtanapat/retail-backoffice/internal/domain/outbox"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/memory"
	"github.com/peemtanapat/retail-backoffice/internal/infrastructure/persistence"
)

var dbSeq atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:placeorder%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	return db
}

type capturePublisher struct {
	mu     sync.Mutex
	events []domoutbox.Event
}

func (p *capturePublisher) Publish(_ context.Context, e domoutbox.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) all() []domoutbox.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domoutbox.Event(nil), p.events...)
}

type fixture struct {
	db      *gorm.DB
	service *appOrder.Service
	events  *capturePublisher
	storeID uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	st := store.New("Downtown", "1 Main St")
	require.NoError(t, persistence.NewStoreRepository(db).Create(context.Background(), st))

	events := &capturePublisher{}
	service := appOrder.NewService(
		persistence.NewCustomerRepository(db),
		persistence.NewUnitOfWork(db),
		events,
		nil,
	)
	return &fixture{db: db, service: service, events: events, storeID: st.ID}
}

func (f *fixture) seedProduct(t *testing.T, name string, price float64, stock int) uint {
	t.Helper()
	ctx := context.Background()

	p, err := catalog.New(name, "electronics", price, "SKU-"+name)
	require.NoError(t, err)
	require.NoError(t, persistence.NewProductRepository(f.db).Create(ctx, p))

	rec, err := inventory.New(f.storeID, p.ID, stock)
	require.NoError(t, err)
	require.NoError(t, persistence.NewStockRepository(f.db).Create(ctx, rec))
	return p.ID
}

func (f *fixture) stockOf(t *testing.T, productID uint) int {
	t.Helper()
	rec, err := persistence.NewStockRepository(f.db).FindByStoreAndProduct(context.Background(), f.storeID, productID)
	require.NoError(t, err)
	return rec.Quantity
}

func (f *fixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&domorder.Order{}).Count(&n).Error)
	return n
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newFixture(t)
	p1 := f.seedProduct(t, "keyboard", 10.00, 5)
	p2 := f.seedProduct(t, "monitor", 25.50, 2)

	ord, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines: []appOrder.PlaceOrderLine{
			// Client-side prices and totals are deliberately wrong; the
			// service must ignore them.
			{ProductID: p1, Quantity: 2, UnitPrice: 0.01, LineTotal: 0.02},
			{ProductID: p2, Quantity: 1, UnitPrice: 1.00, LineTotal: 1.00},
		},
		TotalPrice: 1.02,
	})
	require.NoError(t, err)
	require.NotNil(t, ord)

	assert.NotZero(t, ord.ID)
	assert.InDelta(t, 45.50, ord.TotalPrice, 1e-9)
	require.Len(t, ord.Lines, 2)
	assert.InDelta(t, 10.00, ord.Lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 25.50, ord.Lines[1].UnitPrice, 1e-9)

	assert.Equal(t, 3, f.stockOf(t, p1))
	assert.Equal(t, 1, f.stockOf(t, p2))

	events := f.events.all()
	require.Len(t, events, 1)
	placed, ok := events[0].(domorder.PlacedEvent)
	require.True(t, ok)
	assert.Equal(t, ord.ID, placed.OrderID)
	assert.Equal(t, 2, placed.LineCount)
	assert.InDelta(t, 45.50, placed.TotalPrice, 1e-9)

	loaded, err := f.service.Get(context.Background(), ord.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Lines, 2)
	assert.InDelta(t, 45.50, loaded.TotalPrice, 1e-9)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	f := newFixture(t)
	p1 := f.seedProduct(t, "keyboard", 10.00, 2)

	_, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p1, Quantity: 3}},
	})
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	assert.Equal(t, 2, f.stockOf(t, p1))
	assert.Zero(t, f.orderCount(t))
	assert.Empty(t, f.events.all())
}

func TestPlaceOrderStoreNotFound(t *testing.T) {
	f := newFixture(t)
	p1 := f.seedProduct(t, "keyboard", 10.00, 5)

	_, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       99,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p1, Quantity: 1}},
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	assert.Zero(t, f.orderCount(t))
	assert.Equal(t, 5, f.stockOf(t, p1))

	// The customer record survives the failed placement.
	cust, err := persistence.NewCustomerRepository(f.db).FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", cust.Name)
}

func TestPlaceOrderUnknownProductRollsBack(t *testing.T) {
	f := newFixture(t)
	p1 := f.seedProduct(t, "keyboard", 10.00, 5)

	_, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines: []appOrder.PlaceOrderLine{
			{ProductID: p1, Quantity: 2},
			{ProductID: 4242, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, catalog.ErrNotFound)

	// The first line's decrement must be undone with the transaction.
	assert.Equal(t, 5, f.stockOf(t, p1))
	assert.Zero(t, f.orderCount(t))
	assert.Empty(t, f.events.all())
}

func TestPlaceOrderMissingStockRecord(t *testing.T) {
	f := newFixture(t)

	p, err := catalog.New("mouse", "electronics", 5.00, "SKU-mouse")
	require.NoError(t, err)
	require.NoError(t, persistence.NewProductRepository(f.db).Create(context.Background(), p))

	_, err = f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, inventory.ErrNotFound)
	assert.Zero(t, f.orderCount(t))
}

func TestPlaceOrderValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerEmail: "",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, appOrder.ErrValidation)

	_, err = f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerEmail: "ada@example.com",
	})
	assert.ErrorIs(t, err, appOrder.ErrValidation)

	_, err = f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerEmail: "ada@example.com",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, appOrder.ErrValidation)
}

func TestPlaceOrderReusesCustomerByEmail(t *testing.T) {
	f := newFixture(t)
	p1 := f.seedProduct(t, "keyboard", 10.00, 5)

	first, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "111",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p1, Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := f.service.PlaceOrder(context.Background(), appOrder.PlaceOrderRequest{
		StoreID:       f.storeID,
		CustomerName:  "Someone Else",
		CustomerEmail: "ada@example.com",
		CustomerPhone: "222",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p1, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)

	// The existing record wins; the new name and phone are not applied.
	cust, err := persistence.NewCustomerRepository(f.db).FindByID(context.Background(), first.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cust.Name)
	assert.Equal(t, "111", cust.Phone)
}

func TestGetUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, domorder.ErrNotFound)
}

// failingOrderRepository delegates everything except Save, which always fails.
type failingOrderRepository struct {
	domorder.Repository
}

func (f *failingOrderRepository) Save(context.Context, *domorder.Order) error {
	return fmt.Errorf("disk full")
}

func TestPlaceOrderPersistenceFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	storeRepo := memory.NewStoreRepository()
	stockRepo := memory.NewStockRepository()
	productRepo := memory.NewProductRepository(stockRepo)
	orderRepo := memory.NewOrderRepository()
	customerRepo := memory.NewCustomerRepository()

	st := store.New("Downtown", "1 Main St")
	require.NoError(t, storeRepo.Create(ctx, st))

	p, err := catalog.New("keyboard", "electronics", 10.00, "SKU-keyboard")
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, p))

	rec, err := inventory.New(st.ID, p.ID, 5)
	require.NoError(t, err)
	require.NoError(t, stockRepo.Create(ctx, rec))

	uow := memory.NewUnitOfWork(storeRepo, productRepo, stockRepo, orderRepo)
	uow.ReplaceOrders(&failingOrderRepository{Repository: orderRepo})

	service := appOrder.NewService(customerRepo, uow, nil, nil)

	_, err = service.PlaceOrder(ctx, appOrder.PlaceOrderRequest{
		StoreID:       st.ID,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Lines:         []appOrder.PlaceOrderLine{{ProductID: p.ID, Quantity: 2}},
	})
	require.ErrorIs(t, err, appOrder.ErrPersistence)

	restored, err := stockRepo.FindByStoreAndProduct(ctx, st.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, restored.Quantity, "stock decrement must roll back with the failed save")

	_, err = orderRepo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domorder.ErrNotFound)
}

func TestPlaceOrderConcurrentPlacementsNeverOversell(t *testing.T) {
	ctx := context.Background()

	storeRepo := memory.NewStoreRepository()
	stockRepo := memory.NewStockRepository()
	productRepo := memory.NewProductRepository(stockRepo)
	orderRepo := memory.NewOrderRepository()
	customerRepo := memory.NewCustomerRepository()

	st := store.New("Downtown", "1 Main St")
	require.NoError(t, storeRepo.Create(ctx, st))

	p, err := catalog.New("keyboard", "electronics", 10.00, "SKU-keyboard")
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(ctx, p))

	const initial = 5
	rec, err := inventory.New(st.ID, p.ID, initial)
	require.NoError(t, err)
	require.NoError(t, stockRepo.Create(ctx, rec))

	uow := memory.NewUnitOfWork(storeRepo, productRepo, stockRepo, orderRepo)
	service := appOrder.NewService(customerRepo, uow, nil, nil)

	// Six buyers race for five units, two apiece. At most two placements can
	// succeed and the combined deductions must never exceed the starting
	// stock.
	var successes atomic.Int64
	var insufficient atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.PlaceOrder(ctx, appOrder.PlaceOrderRequest{
				StoreID:       st.ID,
				CustomerName:  fmt.Sprintf("Buyer %d", n),
				CustomerEmail: fmt.Sprintf("buyer%d@example.com", n),
				Lines:         []appOrder.PlaceOrderLine{{ProductID: p.ID, Quantity: 2}},
			})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, inventory.ErrInsufficientStock):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected placement error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	remaining, err := stockRepo.FindByStoreAndProduct(ctx, st.ID, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, successes.Load())
	assert.EqualValues(t, 4, insufficient.Load())
	assert.Equal(t, initial-int(successes.Load())*2, remaining.Quantity)

	// Only the winning placements left orders behind.
	var committed int
	for id := uint(1); id <= 6; id++ {
		orders, err := orderRepo.FindByCustomer(ctx, id)
		require.NoError(t, err)
		committed += len(orders)
	}
	assert.Equal(t, 2, committed)
}
