package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrVerifyPaymentCommandIsNotConstructed = errors.New(
		"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
	)
)

// VerifyPaymentCommand represents an administrator recording the outcome of
// a payment screenshot review. Verification is a correction mechanism:
// acceptance moves the order to payment_verified, rejection returns it to
// confirmed, regardless of the prior status.
type VerifyPaymentCommand struct {
	orderID    kernel.OrderID
	verified   bool
	verifiedBy string

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a validated verification command.
func NewVerifyPaymentCommand(orderID kernel.OrderID, verified bool, verifiedBy string) (VerifyPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyPaymentCommand{}, err
	}
	if verifiedBy == "" {
		return VerifyPaymentCommand{}, errs.NewValueIsRequiredError("verifiedBy")
	}

	return VerifyPaymentCommand{
		orderID:    orderID,
		verified:   verified,
		verifiedBy: verifiedBy,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c VerifyPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Verified returns the review outcome.
func (c VerifyPaymentCommand) Verified() bool {
	return c.verified
}

// VerifiedBy returns the reviewing administrator's identity.
func (c VerifyPaymentCommand) VerifiedBy() string {
	return c.verifiedBy
}
