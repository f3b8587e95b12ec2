package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions to orders.
//
// Plain status changes are executed as a single conditional update: the new
// status is written only if the stored status is still one of the allowed
// predecessors of the target. Reading the status first and writing later
// would race against concurrent updates to the same order; the conditional
// update closes that window at the storage layer.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if transport := cmd.Transport(); transport != nil {
		if err := orderRepo.UpdateTransport(ctx, cmd.OrderID(), *transport); err != nil {
			return err
		}
	} else {
		allowedFrom := order.TransitionSources(cmd.Target())
		if err := orderRepo.UpdateStatus(ctx, cmd.OrderID(), cmd.Target(), allowedFrom); err != nil {
			return err
		}
	}

	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		if err = h.notifier.NotifyStatusChanged(ctx, updated); err != nil {
			h.logger.WarnContext(ctx, "status change notification failed",
				"orderId", cmd.OrderID().String(), "error", err)
		}
	}

	return nil
}
