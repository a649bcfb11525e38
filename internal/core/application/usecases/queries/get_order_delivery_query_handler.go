package queries

import (
	"context"
	"database/sql"

	"fastfoodie/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDeliveryQueryHandler retrieves the delivery tracking view for an
// order, joining the deliveries and riders tables in one round trip.
type GetOrderDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDeliveryQueryHandler creates a handler for delivery tracking
// queries.
func NewGetOrderDeliveryQueryHandler(db *gorm.DB) GetOrderDeliveryQueryHandler {
	return GetOrderDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when the
// order has no delivery record yet.
func (h GetOrderDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDeliveryQuery,
) (*GetOrderDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.delivery_id,
			d.order_id,
			d.status,
			d.pickup_time,
			d.delivery_time,
			r.rider_id,
			r.name,
			r.phone,
			r.vehicle_type
		FROM deliveries d
		JOIN riders r ON r.rider_id = d.rider_id
		WHERE d.order_id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	var resp GetOrderDeliveryQueryResponse
	var pickupTime, deliveryTime sql.NullTime

	err = rows.Scan(
		&resp.DeliveryID,
		&resp.OrderID,
		&resp.Status,
		&pickupTime,
		&deliveryTime,
		&resp.RiderID,
		&resp.RiderName,
		&resp.RiderPhone,
		&resp.RiderVehicleType,
	)
	if err != nil {
		return nil, err
	}

	resp.PickupTime = nullableTime(pickupTime)
	resp.DeliveryTime = nullableTime(deliveryTime)

	return &resp, nil
}
