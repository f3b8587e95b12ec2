package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderNotifier publishes customer/admin notifications about order lifecycle
// events. Implementations hand the message to an external delivery channel;
// actual email/push dispatch happens outside this service.
//
// Notifications are best-effort side effects: command handlers log a failed
// publish and still report success for the primary operation.
type OrderNotifier interface {
	// NotifyOrderPlaced announces a newly placed order.
	NotifyOrderPlaced(ctx context.Context, o *order.Order) error

	// NotifyStatusChanged announces an order's new lifecycle status.
	NotifyStatusChanged(ctx context.Context, o *order.Order) error

	// NotifyOrderCancelled announces that an order was cancelled and removed.
	NotifyOrderCancelled(ctx context.Context, o *order.Order) error
}

// InvoiceRequestor asks an external collaborator to render and deliver the
// invoice for an order. Rendering and delivery are out of scope for this
// service; only the request is issued here, best-effort like notifications.
type InvoiceRequestor interface {
	// RequestInvoice submits an order for invoice rendering and delivery.
	RequestInvoice(ctx context.Context, o *order.Order) error
}
