package notifier

import (
	"context"

	"github.com/peemtanapat/retail-backoffice/internal/domain/customer"
	domorder "github.com/peemtanapat/retail-backoffice/internal/domain/order"
	domoutbox "github.com/peemtanapat/retail-backoffice/internal/domain/outbox"
	"github.com/peemtanapat/retail-backoffice/internal/observability"
	"github.com/peemtanapat/retail-backoffice/internal/observability/logctx"
)

// Worker listens for placed orders and emails the customer a confirmation.
// Delivery failures are logged and swallowed; a lost email never unwinds a
// committed order.
type Worker struct {
	subscriber domoutbox.Subscriber
	customers  customer.Repository
	sender     EmailSender
	log        observability.Logger
}

func NewWorker(subscriber domoutbox.Subscriber, customers customer.Repository, sender EmailSender, logger observability.Logger) *Worker {
	return &Worker{
		subscriber: subscriber,
		customers:  customers,
		sender:     sender,
		log:        logger.With(observability.F("component", "notifier_worker")),
	}
}

func (w *Worker) Start() {
	w.subscriber.Subscribe(domorder.PlacedEvent{}.EventName(), w.handleOrderPlaced)
}

func (w *Worker) handleOrderPlaced(ctx context.Context, e domoutbox.Event) error {
	logger := logctx.FromOr(ctx, w.log)

	evt, ok := e.(domorder.PlacedEvent)
	if !ok {
		return nil
	}

	cust, err := w.customers.FindByID(ctx, evt.CustomerID)
	if err != nil {
		logger.Warn("confirmation_customer_lookup_failed",
			observability.F("order_id", evt.OrderID),
			observability.F("customer_id", evt.CustomerID),
			observability.F("error", err),
		)
		return nil
	}

	if err := w.sender.SendOrderConfirmation(ctx, cust.Email, cust.Name, evt.OrderID, evt.TotalPrice); err != nil {
		logger.Warn("confirmation_email_failed",
			observability.F("order_id", evt.OrderID),
			observability.F("error", err),
		)
		return nil
	}

	logger.Info("confirmation_email_sent",
		observability.F("order_id", evt.OrderID),
	)
	return nil
}
