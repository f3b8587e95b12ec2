package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
)

// VerifyPaymentCommandHandler records a payment review outcome and applies
// the implied status correction. The customer is notified of the new status
// best-effort after commit.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the verification command. The order must exist and carry
// an uploaded payment screenshot.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
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
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.RecordVerification(cmd.Verified(), cmd.VerifiedBy(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdatePaymentProof(ctx, cmd.OrderID(), *existing.PaymentProof(), existing.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.notifier != nil {
		if err = h.notifier.NotifyStatusChanged(ctx, existing); err != nil {
			h.logger.WarnContext(ctx, "status change notification failed",
				"orderId", cmd.OrderID().String(), "error", err)
		}
	}

	return nil
}
