package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. It allocates a
// date-scoped identifier from the daily sequence counter, persists the order
// in Confirmed status, then issues the best-effort side effects: an invoice
// render request and a customer notification. Side-effect failures are
// logged and swallowed; a placed order is reported as placed.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	invoices   ports.InvoiceRequestor
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The invoice requestor and notifier may be nil, which disables the
// corresponding side effect.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	invoices ports.InvoiceRequestor,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		invoices:   invoices,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the placement command and returns the allocated order
// identifier. The counter increment and the order insert share one
// transaction, so a failed insert rolls the allocation back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	now := time.Now()
	day := kernel.DayKey(now)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	seq, err := uow.SequenceRepository().Next(ctx, day)
	if err != nil {
		return kernel.OrderID{}, err
	}
	if seq > kernel.MaxSequence {
		return kernel.OrderID{}, errs.NewSequenceExhaustedError(day, seq)
	}

	orderID, err := kernel.NewOrderID(now, seq)
	if err != nil {
		return kernel.OrderID{}, err
	}

	placed, err := order.NewOrder(orderID, cmd.Items(), cmd.Total(), cmd.Customer(), now)
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	h.dispatchSideEffects(ctx, placed)

	return orderID, nil
}

func (h *PlaceOrderCommandHandler) dispatchSideEffects(ctx context.Context, placed *order.Order) {
	if h.invoices != nil {
		if err := h.invoices.RequestInvoice(ctx, placed); err != nil {
			h.logger.WarnContext(ctx, "invoice request failed",
				"orderId", placed.ID().String(), "error", err)
		}
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyOrderPlaced(ctx, placed); err != nil {
			h.logger.WarnContext(ctx, "order placed notification failed",
				"orderId", placed.ID().String(), "error", err)
		}
	}
}
