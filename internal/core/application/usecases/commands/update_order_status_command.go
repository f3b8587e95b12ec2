package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order through
// its lifecycle. It comes in two shapes:
//
//   - a plain status change, validated against the transition table
//   - a transport assignment (carrier + LR number), which books the order
//     from any state — the transport-implied transition bypasses the table
//     by design
type UpdateOrderStatusCommand struct {
	orderID   kernel.OrderID
	target    order.Status
	transport *order.Transport

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a table-validated status change
// command.
func NewUpdateOrderStatusCommand(orderID kernel.OrderID, target order.Status) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewBookOrderCommand creates a transport assignment command. Both the
// carrier name and the LR number are mandatory; supplying them forces the
// order into booked status.
func NewBookOrderCommand(orderID kernel.OrderID, carrier, lrNumber string) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if carrier == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("transportName")
	}
	if lrNumber == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("lrNumber")
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		target:    order.Booked,
		transport: &order.Transport{Carrier: carrier, LRNumber: lrNumber},
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Transport returns the carrier assignment, or nil for a plain status
// change.
func (c UpdateOrderStatusCommand) Transport() *order.Transport {
	return c.transport
}
