package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history from the
// database, joining restaurant display fields for the listing view.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history
// queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first; an unknown
// customer yields an empty slice rather than an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_id,
			o.restaurant_id,
			rest.name,
			rest.location,
			o.status,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN restaurants rest ON rest.restaurant_id = o.restaurant_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.order_id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetCustomerOrdersQueryResponse

		err = rows.Scan(
			&o.OrderID,
			&o.RestaurantID,
			&o.RestaurantName,
			&o.RestaurantLocation,
			&o.Status,
			&o.TotalAmount,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
