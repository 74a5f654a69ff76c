package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/customer"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	domain "github.com/peemtanapat/retail-backoffice/internal/domain/order"
	domoutbox "github.com/peemtanapat/retail-backoffice/internal/domain/outbox"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	useCasePlaceOrder = "order.place"
	spanPrefix        = "UC."
	publishTimeout    = 300 * time.Millisecond
)

var (
	// ErrValidation marks malformed requests, before any collaborator is touched.
	ErrValidation = errors.New("order: invalid request")
	// ErrPersistence marks infrastructure write failures; the wrapped message
	// names the entity that failed to save.
	ErrPersistence = errors.New("order: persistence failure")
)

// PlaceOrderLine is one requested (product, quantity) pair. Name, UnitPrice,
// and LineTotal mirror what clients send for display purposes; they are
// advisory only and never trusted.
type PlaceOrderLine struct {
	ProductID uint
	Quantity  int
	Name      string
	UnitPrice float64
	LineTotal float64
}

type PlaceOrderRequest struct {
	StoreID       uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Lines         []PlaceOrderLine
	// TotalPrice is advisory; the total is always recomputed server-side.
	TotalPrice float64
}

// Service orchestrates order placement. Customer resolution runs ahead of the
// unit of work: a customer created for a request that later fails is kept,
// matching the system's long-standing behavior.
type Service struct {
	customers customer.Repository
	uow       UnitOfWork
	publisher domoutbox.Publisher
	tel       observability.Telemetry
	log       observability.Logger
}

func NewService(customers customer.Repository, uow UnitOfWork, publisher domoutbox.Publisher, tel observability.Telemetry) *Service {
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Service{
		customers: customers,
		uow:       uow,
		publisher: publisher,
		tel:       tel,
		log:       tel.Logger().With(observability.F("component", "order_service")),
	}
}

// PlaceOrder either commits a fully consistent order with decremented stock,
// or leaves all persistent state unchanged (customer creation excepted) and
// reports a typed failure. Lines are processed strictly in request order; the
// first failing line aborts the whole operation.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (_ *domain.Order, err error) {
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCasePlaceOrder))

	ctx, span := s.tel.Tracer().Start(ctx, spanPrefix+"PlaceOrder",
		attribute.Int64("order.store_id", int64(req.StoreID)),
		attribute.Int("order.lines", len(req.Lines)),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"

	defer func() {
		lat := time.Since(start).Seconds()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, statusText)
		} else {
			span.SetStatus(codes.Ok, statusText)
		}
		span.End()

		if c := s.tel.Counter(observability.MetricUsecaseRequests); c != nil {
			c.Add(1,
				observability.L("use_case", useCasePlaceOrder),
				observability.L("outcome", outcome),
			)
		}
		if h := s.tel.Histogram(observability.MetricUsecaseDuration); h != nil {
			h.Observe(lat, observability.L("use_case", useCasePlaceOrder))
		}

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}
		logger.Info("use_case_done", fields...)
	}()

	if err := validate(req); err != nil {
		outcome, statusText = "error", "REQUEST_INVALID"
		return nil, err
	}

	cust, err := s.resolveCustomer(ctx, req)
	if err != nil {
		outcome, statusText = "error", "CUSTOMER_RESOLVE_FAILED"
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order.customer_id", int64(cust.ID)))

	var placed *domain.Order
	err = s.uow.Do(ctx, func(ctx context.Context, r Repositories) error {
		st, ferr := r.Stores().FindByID(ctx, req.StoreID)
		if ferr != nil {
			if errors.Is(ferr, store.ErrNotFound) {
				return fmt.Errorf("%w: id=%d", store.ErrNotFound, req.StoreID)
			}
			return fmt.Errorf("%w: find store id=%d: %v", ErrPersistence, req.StoreID, ferr)
		}

		ord := domain.New(cust.ID, st.ID)
		if cerr := r.Orders().Create(ctx, ord); cerr != nil {
			return fmt.Errorf("%w: create order header: %v", ErrPersistence, cerr)
		}

		for _, line := range req.Lines {
			if lerr := s.fulfillLine(ctx, r, ord, st.ID, line); lerr != nil {
				return lerr
			}
		}

		ord.TotalPrice = domain.Total(ord.Lines)
		if serr := r.Orders().Save(ctx, ord); serr != nil {
			return fmt.Errorf("%w: save order id=%d: %v", ErrPersistence, ord.ID, serr)
		}

		placed = ord
		return nil
	})
	if err != nil {
		outcome, statusText = "error", failureStatus(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("order.id", int64(placed.ID)))
	s.publishPlaced(ctx, logger, placed)

	return placed, nil
}

// fulfillLine resolves one requested line inside the transaction: product
// lookup, locked stock lookup, sufficiency check, decrement, price snapshot.
func (s *Service) fulfillLine(ctx context.Context, r Repositories, ord *domain.Order, storeID uint, line PlaceOrderLine) error {
	product, err := r.Products().FindByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: id=%d", catalog.ErrNotFound, line.ProductID)
		}
		return fmt.Errorf("%w: find product id=%d: %v", ErrPersistence, line.ProductID, err)
	}

	record, err := r.Stock().FindByStoreAndProduct(ctx, storeID, product.ID)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return fmt.Errorf("%w: store=%d product=%d", inventory.ErrNotFound, storeID, product.ID)
		}
		return fmt.Errorf("%w: find stock record store=%d product=%d: %v", ErrPersistence, storeID, product.ID, err)
	}

	if record.Quantity < line.Quantity {
		return fmt.Errorf("%w: store=%d product=%d requested=%d available=%d",
			inventory.ErrInsufficientStock, storeID, product.ID, line.Quantity, record.Quantity)
	}
	if err := record.Deduct(line.Quantity); err != nil {
		return fmt.Errorf("%w: store=%d product=%d", err, storeID, product.ID)
	}
	if err := r.Stock().Save(ctx, record); err != nil {
		return fmt.Errorf("%w: save stock record store=%d product=%d: %v", ErrPersistence, storeID, product.ID, err)
	}

	orderLine, err := domain.NewLine(ord.ID, product.ID, line.Quantity, product.Price)
	if err != nil {
		return err
	}
	if err := r.Orders().CreateLine(ctx, orderLine); err != nil {
		return fmt.Errorf("%w: create order line product=%d: %v", ErrPersistence, product.ID, err)
	}
	ord.Lines = append(ord.Lines, *orderLine)

	return nil
}

// Get loads a placed order with its lines.
func (s *Service) Get(ctx context.Context, id uint) (*domain.Order, error) {
	var found *domain.Order
	err := s.uow.Do(ctx, func(ctx context.Context, r Repositories) error {
		ord, ferr := r.Orders().FindByID(ctx, id)
		if ferr != nil {
			return ferr
		}
		found = ord
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *Service) resolveCustomer(ctx context.Context, req PlaceOrderRequest) (*customer.Customer, error) {
	existing, err := s.customers.FindByEmail(ctx, req.CustomerEmail)
	switch {
	case err == nil:
		// Repeat orders reuse the record unchanged, even when the request
		// carries a different name or phone.
		return existing, nil
	case errors.Is(err, customer.ErrNotFound):
		cust := customer.New(req.CustomerName, req.CustomerEmail, req.CustomerPhone)
		if cerr := s.customers.Create(ctx, cust); cerr != nil {
			return nil, fmt.Errorf("%w: create customer: %v", ErrPersistence, cerr)
		}
		return cust, nil
	default:
		return nil, fmt.Errorf("%w: find customer by email: %v", ErrPersistence, err)
	}
}

func (s *Service) publishPlaced(ctx context.Context, logger observability.Logger, ord *domain.Order) {
	if s.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if perr := s.publisher.Publish(pubCtx, domain.NewPlacedEvent(ord)); perr != nil {
		if c := s.tel.Counter(observability.MetricOrderEventFailures); c != nil {
			c.Add(1, observability.L("event", domain.PlacedEvent{}.EventName()))
		}
		logger.Warn("order_placed_event_publish_failed",
			observability.F("order_id", ord.ID),
			observability.F("error", perr.Error()),
		)
	}
}

func validate(req PlaceOrderRequest) error {
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", ErrValidation)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, domain.ErrNoLines)
	}
	for i, line := range req.Lines {
		if line.ProductID == 0 {
			return fmt.Errorf("%w: line %d: product id is required", ErrValidation, i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: line %d: %v", ErrValidation, i, domain.ErrInvalidQuantity)
		}
	}
	return nil
}

func failureStatus(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "STORE_NOT_FOUND"
	case errors.Is(err, catalog.ErrNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, inventory.ErrNotFound):
		return "INVENTORY_NOT_FOUND"
	case errors.Is(err, inventory.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrPersistence):
		return "PERSISTENCE_FAILURE"
	default:
		return "ERROR"
	}
}
