// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Query handlers bypass the domain model and read
// projections directly, either with raw SQL against the fixed tables or
// through the catalog port for the partitioned product store.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderItemResponse is one line item of an order read model.
type OrderItemResponse struct {
	Name     string
	Price    int64
	Quantity int
	Subtotal int64
}

// OrderResponse is the full order read model served to tracking and admin
// views.
type OrderResponse struct {
	ID              string
	Status          string
	Total           int64
	CustomerName    string
	Mobile          string
	Email           string
	Address         string
	Pincode         string
	PaymentImageRef *string
	PaymentVerified bool
	TransportName   *string
	LRNumber        *string
	CreatedAt       time.Time
	Items           []OrderItemResponse
}

const orderSelectColumns = `
	id,
	status,
	total,
	customer_full_name,
	customer_mobile,
	customer_email,
	customer_address,
	customer_pincode,
	payment_image_ref,
	payment_verified,
	transport_name,
	lr_number,
	created_at
`

// scanOrders reads order rows produced by a SELECT over orderSelectColumns
// and attaches the line items of every returned order in one extra query.
func scanOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		err = rows.Scan(
			&resp.ID,
			&resp.Status,
			&resp.Total,
			&resp.CustomerName,
			&resp.Mobile,
			&resp.Email,
			&resp.Address,
			&resp.Pincode,
			&resp.PaymentImageRef,
			&resp.PaymentVerified,
			&resp.TransportName,
			&resp.LRNumber,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		resp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID string
		var item OrderItemResponse
		if err = itemRows.Scan(&orderID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		item.Subtotal = item.Price * int64(item.Quantity)
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
