package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// LineItem is a single purchased position within an order. Line items are
// immutable once the order is placed.
type LineItem struct {
	name     string
	price    int64
	quantity int
}

// NewLineItem creates a validated line item. Name must be non-empty, price
// positive and quantity at least one.
func NewLineItem(name string, price int64, quantity int) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}
	if price <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("price must be positive, got %d", price))
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("quantity must be positive, got %d", quantity))
	}
	return LineItem{name: name, price: price, quantity: quantity}, nil
}

// Name returns the item name as displayed to the customer.
func (li LineItem) Name() string { return li.name }

// Price returns the unit price at the time of placement.
func (li LineItem) Price() int64 { return li.price }

// Quantity returns the number of units purchased.
func (li LineItem) Quantity() int { return li.quantity }

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() int64 { return li.price * int64(li.quantity) }

// Customer holds the buyer details captured at placement. The details are
// immutable for the lifetime of the order; the mobile number doubles as the
// ownership proof for payment-screenshot uploads and order tracking.
type Customer struct {
	fullName string
	mobile   string
	email    string
	address  string
	pincode  string
}

// NewCustomer creates validated customer details. Full name, mobile, address
// and pincode are mandatory; email is optional.
func NewCustomer(fullName, mobile, email, address, pincode string) (Customer, error) {
	if err := errors.Join(
		requireField("fullName", fullName),
		requireField("mobile", mobile),
		requireField("address", address),
		requireField("pincode", pincode),
	); err != nil {
		return Customer{}, err
	}
	return Customer{fullName: fullName, mobile: mobile, email: email, address: address, pincode: pincode}, nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// FullName returns the customer's full name.
func (c Customer) FullName() string { return c.fullName }

// Mobile returns the customer's mobile number.
func (c Customer) Mobile() string { return c.mobile }

// Email returns the customer's email address, possibly empty.
func (c Customer) Email() string { return c.email }

// Address returns the delivery address.
func (c Customer) Address() string { return c.address }

// Pincode returns the postal code of the delivery address.
func (c Customer) Pincode() string { return c.pincode }

// IsZero reports whether the customer details are absent.
func (c Customer) IsZero() bool { return c == Customer{} }

// PaymentProof is the payment-screenshot metadata attached to an order.
// The proof starts unverified; an administrator later records the
// verification outcome.
type PaymentProof struct {
	ImageRef   string
	UploadedAt time.Time
	Verified   bool
	VerifiedBy string
	VerifiedAt *time.Time
}

// Transport holds the carrier assignment of a booked order.
type Transport struct {
	Carrier  string
	LRNumber string
}

// Order is the aggregate root of the order lifecycle. It is created once at
// placement and afterwards mutated only through the state machine operations
// (ChangeStatus, AssignTransport) and the payment-verification operations
// (AttachPaymentProof, RecordVerification). Orders are removed only by
// explicit cancellation, which is a hard delete.
//
// Invariants:
//   - The identifier, line items, total and customer details are immutable
//   - The total equals the sum of line item subtotals
//   - Status transitions follow the transition table, except for the
//     documented verification and transport bypasses
type Order struct {
	id           kernel.OrderID
	items        []LineItem
	total        int64
	customer     Customer
	status       Status
	paymentProof *PaymentProof
	transport    *Transport
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates an order in Confirmed status. Items, total and customer
// details are mandatory, and the total must equal the sum of line item
// subtotals; a mismatch is rejected before any side effect takes place.
func NewOrder(
	id kernel.OrderID,
	items []LineItem,
	total int64,
	customer Customer,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if total <= 0 {
		return nil, errs.NewValueIsRequiredError("total")
	}
	if customer.IsZero() {
		return nil, errs.NewValueIsRequiredError("customerDetails")
	}

	var sum int64
	for _, item := range items {
		sum += item.Subtotal()
	}
	if sum != total {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("total %d does not match line item sum %d", total, sum))
	}

	return &Order{
		id:            id,
		items:         items,
		total:         total,
		customer:      customer,
		status:        Confirmed,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The status must be
// valid; the total/items invariant is trusted because it was enforced at
// placement and both fields are immutable afterwards.
func RestoreOrder(
	id kernel.OrderID,
	items []LineItem,
	total int64,
	customer Customer,
	status Status,
	paymentProof *PaymentProof,
	transport *Transport,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		items:         items,
		total:         total,
		customer:      customer,
		status:        status,
		paymentProof:  paymentProof,
		transport:     transport,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID { return o.id }

// Items returns the ordered line items.
func (o *Order) Items() []LineItem { return o.items }

// Total returns the order total.
func (o *Order) Total() int64 { return o.total }

// Customer returns the buyer details captured at placement.
func (o *Order) Customer() Customer { return o.customer }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentProof returns the attached payment screenshot metadata.
// Returns nil if no screenshot has been uploaded.
func (o *Order) PaymentProof() *PaymentProof { return o.paymentProof }

// Transport returns the carrier assignment of a booked order.
// Returns nil if the order has not been booked with transport details.
func (o *Order) Transport() *Transport { return o.transport }

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsOwnedBy reports whether the given mobile number matches the customer
// who placed the order. Used as the ownership check for screenshot uploads
// and tracking lookups.
func (o *Order) IsOwnedBy(mobile string) bool {
	return mobile != "" && o.customer.mobile == mobile
}

// AttachPaymentProof attaches an uploaded payment screenshot to the order.
// The proof starts unverified and the order status is left unchanged.
// A re-upload replaces the previous proof and clears any verification.
func (o *Order) AttachPaymentProof(imageRef string, uploadedAt time.Time) error {
	if imageRef == "" {
		return errs.NewValueIsRequiredError("paymentScreenshot")
	}

	o.paymentProof = &PaymentProof{
		ImageRef:   imageRef,
		UploadedAt: uploadedAt,
	}
	return nil
}

// RecordVerification records the outcome of a payment review. Verification
// is a correction mechanism, not a forward transition: it bypasses the
// transition table, setting the status to PaymentVerified on acceptance or
// back to Confirmed on rejection, whatever the prior status was.
func (o *Order) RecordVerification(verified bool, verifiedBy string, at time.Time) error {
	if o.paymentProof == nil {
		return errs.NewValueIsRequiredError("paymentScreenshot")
	}
	if verifiedBy == "" {
		return errs.NewValueIsRequiredError("verifiedBy")
	}

	o.paymentProof.Verified = verified
	o.paymentProof.VerifiedBy = verifiedBy
	o.paymentProof.VerifiedAt = &at

	if verified {
		o.status = PaymentVerified
	} else {
		o.status = Confirmed
	}
	return nil
}

// AssignTransport stores the carrier assignment and forces the order into
// Booked status. Supplying transport details books the order from any state;
// re-booking with updated details is allowed.
func (o *Order) AssignTransport(carrier, lrNumber string) error {
	if err := errors.Join(
		requireField("transportName", carrier),
		requireField("lrNumber", lrNumber),
	); err != nil {
		return err
	}

	o.transport = &Transport{Carrier: carrier, LRNumber: lrNumber}
	o.status = Booked
	return nil
}

// ChangeStatus moves the order to the target status if the transition table
// allows it. The in-memory transition mirrors the conditional update the
// repository performs; see ports.OrderRepository.UpdateStatus.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
