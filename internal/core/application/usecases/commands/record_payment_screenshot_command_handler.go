package commands

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"
)

// RecordPaymentScreenshotCommandHandler attaches an uploaded payment
// screenshot to an order. The screenshot starts unverified and the order
// status is left unchanged; verification is a separate admin operation.
type RecordPaymentScreenshotCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentScreenshotCommandHandler creates a handler for screenshot
// uploads.
func NewRecordPaymentScreenshotCommandHandler(uowFactory OrderUoWFactory) RecordPaymentScreenshotCommandHandler {
	return RecordPaymentScreenshotCommandHandler{uowFactory: uowFactory}
}

// Handle processes the screenshot command. An order that exists but belongs
// to a different mobile number is reported as not found, so the operation
// does not reveal other customers' orders.
func (h *RecordPaymentScreenshotCommandHandler) Handle(ctx context.Context, cmd RecordPaymentScreenshotCommand) error {
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

	if !existing.IsOwnedBy(cmd.Mobile()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = existing.AttachPaymentProof(cmd.ImageRef(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdatePaymentProof(ctx, cmd.OrderID(), *existing.PaymentProof(), existing.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
