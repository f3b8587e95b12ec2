package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Status mutations are expressed as conditional updates rather than
// read-modify-write: the repository applies the new status only if the
// stored status still satisfies the given predecessor predicate, failing the
// whole operation otherwise. This removes the check-then-act race between
// concurrent updates to the same order without external locking.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByMobile retrieves all orders placed with the given mobile number,
	// newest first. Used by the customer-facing tracking lookup.
	GetByMobile(ctx context.Context, mobile string) ([]*order.Order, error)

	// UpdateStatus sets the order's status to target only if the stored
	// status is in allowedFrom. If no row matches, it returns an
	// ObjectNotFoundError when the order is absent, or an
	// InvalidTransitionError naming the current status and its allowed
	// targets otherwise.
	UpdateStatus(ctx context.Context, id kernel.OrderID, target order.Status, allowedFrom []order.Status) error

	// UpdatePaymentProof stores the payment screenshot metadata and the
	// status it implies. Verification bypasses the transition table, so the
	// update is unconditional on the stored status.
	UpdatePaymentProof(ctx context.Context, id kernel.OrderID, proof order.PaymentProof, status order.Status) error

	// UpdateTransport stores the carrier assignment and forces the order
	// into Booked status regardless of the stored status.
	UpdateTransport(ctx context.Context, id kernel.OrderID, transport order.Transport) error

	// Delete permanently removes an order. Cancellation is a hard delete;
	// no tombstone or audit record remains.
	Delete(ctx context.Context, id kernel.OrderID) error
}
