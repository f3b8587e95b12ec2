package queries

import (
	"context"

	"gorm.io/gorm"
)

// TrackOrdersQueryHandler serves the customer tracking lookup. An unknown
// mobile number yields an empty slice, not an error: the caller cannot
// distinguish "no orders" from "wrong number", which is intentional.
type TrackOrdersQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrdersQueryHandler creates a handler for tracking lookups.
func NewTrackOrdersQueryHandler(db *gorm.DB) TrackOrdersQueryHandler {
	return TrackOrdersQueryHandler{db: db}
}

// Handle executes the tracking lookup, newest orders first.
func (h TrackOrdersQueryHandler) Handle(ctx context.Context, query TrackOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrders(ctx, h.db, `
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE customer_mobile = ?
		ORDER BY created_at DESC, id DESC
	`, query.Mobile())
}
