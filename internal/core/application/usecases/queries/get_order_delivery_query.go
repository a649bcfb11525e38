package queries

import (
	"database/sql"
	"errors"
	"time"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"
)

var ErrGetOrderDeliveryQueryIsNotConstructed = errors.New(
	"GetOrderDeliveryQuery must be created via NewGetOrderDeliveryQuery constructor",
)

// GetOrderDeliveryQuery retrieves the delivery record for a single order,
// joined with the assigned rider's contact details.
type GetOrderDeliveryQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDeliveryQuery validates and creates an order delivery lookup.
func NewGetOrderDeliveryQuery(orderID int64) (GetOrderDeliveryQuery, error) {
	q := GetOrderDeliveryQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderDeliveryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDeliveryQueryIsNotConstructed)
}

// OrderID returns the order whose delivery is being looked up.
func (q GetOrderDeliveryQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderDeliveryQuery) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order_id")
	}
	q.orderID = id
	return nil
}

// GetOrderDeliveryQueryResponse is the delivery read model for order
// tracking. Pickup and delivery times are nil until the corresponding
// transition happens.
type GetOrderDeliveryQueryResponse struct {
	DeliveryID       int64
	OrderID          int64
	Status           string
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	RiderID          int64
	RiderName        string
	RiderPhone       string
	RiderVehicleType string
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
