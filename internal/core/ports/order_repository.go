// Package ports defines the persistence contracts between the domain layer
// and the infrastructure adapters.
package ports

import (
	"context"

	"fastfoodie/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items and payment
	// record as one unit, and assigns the generated identifier to the
	// aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and payment by identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllAwaitingDispatch retrieves orders in out_for_delivery status
	// that have no delivery record yet. These are the orders whose rider
	// acquisition failed and must be retried by the recovery sweep.
	GetAllAwaitingDispatch(ctx context.Context) ([]*order.Order, error)
}
