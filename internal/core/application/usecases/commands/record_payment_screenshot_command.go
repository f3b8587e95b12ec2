package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrRecordPaymentScreenshotCommandIsNotConstructed = errors.New(
		"RecordPaymentScreenshotCommand must be created via NewRecordPaymentScreenshotCommand constructor",
	)
)

// RecordPaymentScreenshotCommand represents a customer uploading a payment
// screenshot for their order. The supplied mobile number must match the one
// the order was placed with; it serves as the ownership proof.
type RecordPaymentScreenshotCommand struct {
	orderID  kernel.OrderID
	mobile   string
	imageRef string

	guard guard.ConstructorGuard
}

// NewRecordPaymentScreenshotCommand creates a validated screenshot command.
func NewRecordPaymentScreenshotCommand(
	orderID kernel.OrderID, mobile, imageRef string,
) (RecordPaymentScreenshotCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecordPaymentScreenshotCommand{}, err
	}
	if mobile == "" {
		return RecordPaymentScreenshotCommand{}, errs.NewValueIsRequiredError("mobile")
	}
	if imageRef == "" {
		return RecordPaymentScreenshotCommand{}, errs.NewValueIsRequiredError("paymentScreenshot")
	}

	return RecordPaymentScreenshotCommand{
		orderID:  orderID,
		mobile:   mobile,
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentScreenshotCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentScreenshotCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RecordPaymentScreenshotCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Mobile returns the caller-supplied mobile number used for the ownership
// check.
func (c RecordPaymentScreenshotCommand) Mobile() string {
	return c.mobile
}

// ImageRef returns the uploaded screenshot reference.
func (c RecordPaymentScreenshotCommand) ImageRef() string {
	return c.imageRef
}
