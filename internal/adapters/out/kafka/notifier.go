// Package kafka publishes order lifecycle events to Kafka topics. Actual
// customer delivery (email, push) and invoice rendering happen in separate
// consumers; this adapter only hands the messages to the broker.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/order"

	segmentio "github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

// orderEvent is the wire format shared by all published order events.
type orderEvent struct {
	Event     string    `json:"event"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEventPublisher implements OrderNotifier and InvoiceRequestor over
// two Kafka topics: one for customer notifications, one for invoice render
// requests.
type OrderEventPublisher struct {
	notifications *segmentio.Writer
	invoices      *segmentio.Writer
}

// NewOrderEventPublisher creates a publisher for the given brokers and
// topics.
func NewOrderEventPublisher(brokers []string, notificationTopic, invoiceTopic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		notifications: newWriter(brokers, notificationTopic),
		invoices:      newWriter(brokers, invoiceTopic),
	}
}

func newWriter(brokers []string, topic string) *segmentio.Writer {
	return &segmentio.Writer{
		Addr:         segmentio.TCP(brokers...),
		Topic:        topic,
		Balancer:     &segmentio.LeastBytes{},
		RequiredAcks: segmentio.RequireAll,
	}
}

// NotifyOrderPlaced announces a newly placed order.
func (p *OrderEventPublisher) NotifyOrderPlaced(ctx context.Context, o *order.Order) error {
	return p.publish(ctx, p.notifications, "order.placed", o)
}

// NotifyStatusChanged announces an order's new lifecycle status.
func (p *OrderEventPublisher) NotifyStatusChanged(ctx context.Context, o *order.Order) error {
	return p.publish(ctx, p.notifications, "order.status_changed", o)
}

// NotifyOrderCancelled announces that an order was cancelled and removed.
func (p *OrderEventPublisher) NotifyOrderCancelled(ctx context.Context, o *order.Order) error {
	return p.publish(ctx, p.notifications, "order.cancelled", o)
}

// RequestInvoice submits an order for invoice rendering and delivery.
func (p *OrderEventPublisher) RequestInvoice(ctx context.Context, o *order.Order) error {
	return p.publish(ctx, p.invoices, "invoice.requested", o)
}

// Close releases both writers.
func (p *OrderEventPublisher) Close() error {
	if err := p.notifications.Close(); err != nil {
		_ = p.invoices.Close()
		return err
	}
	return p.invoices.Close()
}

func (p *OrderEventPublisher) publish(ctx context.Context, w *segmentio.Writer, event string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(orderEvent{
		Event:     event,
		OrderID:   o.ID().String(),
		Status:    o.Status().String(),
		Total:     o.Total(),
		Mobile:    o.Customer().Mobile(),
		Email:     o.Customer().Email(),
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return w.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(o.ID().String()),
		Value: payload,
	})
}
