package ports

import (
	"context"

	"fastfoodie/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery records.
//
// At most one delivery exists per order. Creation paths check GetByOrder
// before Add inside the same transaction, and the store backs this up with a
// unique index on order_id, so a lost race surfaces as a duplicate-key error
// instead of a silent second delivery.
type DeliveryRepository interface {
	// Add persists a new delivery record and assigns the generated
	// identifier to the aggregate.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status and timestamp changes to an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by identifier.
	Get(ctx context.Context, id int64) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery belonging to an order.
	// Returns an ObjectNotFoundError when the order has no delivery.
	GetByOrder(ctx context.Context, orderID int64) (*delivery.Delivery, error)
}
