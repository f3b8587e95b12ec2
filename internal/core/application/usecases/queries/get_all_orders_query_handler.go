package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler serves the admin order dashboard.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order listing.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanOrders(ctx, h.db, `
		SELECT `+orderSelectColumns+`
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
}
