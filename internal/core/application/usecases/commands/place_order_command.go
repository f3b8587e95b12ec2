package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// OrderItemInput is one line item of a placement request.
type OrderItemInput struct {
	Name     string
	Price    int64
	Quantity int
}

// CustomerInput holds the buyer details of a placement request.
type CustomerInput struct {
	FullName string
	Mobile   string
	Email    string
	Address  string
	Pincode  string
}

// PlaceOrderCommand represents a request to place a new order. The command
// validates the line items, the customer details and the total/items
// invariant up front, so a rejected placement never reaches the allocator
// or the store.
type PlaceOrderCommand struct {
	items    []order.LineItem
	total    int64
	customer order.Customer

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a validated placement command. Items, total
// and customer details are mandatory; the total must equal the sum of
// price x quantity over the items.
func NewPlaceOrderCommand(items []OrderItemInput, total int64, customer CustomerInput) (PlaceOrderCommand, error) {
	if len(items) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if total <= 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("total")
	}

	lineItems := make([]order.LineItem, 0, len(items))
	var sum int64
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.Name, item.Price, item.Quantity)
		if err != nil {
			return PlaceOrderCommand{}, err
		}
		lineItems = append(lineItems, lineItem)
		sum += lineItem.Subtotal()
	}
	if sum != total {
		return PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("total",
			errors.New("total does not match the sum of line item subtotals"))
	}

	orderCustomer, err := order.NewCustomer(
		customer.FullName, customer.Mobile, customer.Email, customer.Address, customer.Pincode)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		items:    lineItems,
		total:    total,
		customer: orderCustomer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns the validated line items.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

// Total returns the order total.
func (c PlaceOrderCommand) Total() int64 {
	return c.total
}

// Customer returns the validated customer details.
func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}
