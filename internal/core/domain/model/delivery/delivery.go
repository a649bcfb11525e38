// Package delivery contains the Delivery aggregate: the record tracking
// which rider fulfills which order, with pickup and delivery timestamps.
// At most one delivery exists per order; the store enforces this with a
// unique index on order_id, and every creation path checks before inserting
// inside the same transaction.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"fastfoodie/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryAlreadyPersisted is returned when AssignID is called on a
	// delivery that already carries a store identifier.
	ErrDeliveryAlreadyPersisted = errors.New("delivery id is already assigned")
)

// Delivery ties exactly one order to exactly one rider for the duration of a
// fulfillment attempt.
type Delivery struct {
	id           int64
	orderID      int64
	riderID      int64
	status       Status
	pickupTime   *time.Time
	deliveryTime *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in Assigned status for the given order and
// rider. The caller claims the rider in the same transaction.
func NewDelivery(orderID, riderID int64) (*Delivery, error) {
	d := &Delivery{
		status:        Assigned,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery aggregate from its persisted state.
func RestoreDelivery(
	id int64,
	orderID int64,
	riderID int64,
	status Status,
	pickupTime *time.Time,
	deliveryTime *time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d := &Delivery{
		id:            id,
		status:        status,
		pickupTime:    pickupTime,
		deliveryTime:  deliveryTime,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setRiderID(riderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store. It may be called
// exactly once, by the repository that persisted the delivery.
func (d *Delivery) AssignID(id int64) error {
	if d.id != 0 {
		return ErrDeliveryAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryID",
			fmt.Errorf("%d is not a valid delivery id", id))
	}
	d.id = id
	return nil
}

// MarkPickedUp transitions the delivery to PickedUp and stamps the pickup
// time.
func (d *Delivery) MarkPickedUp(at time.Time) error {
	newStatus, err := d.status.TransitionTo(PickedUp)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.pickupTime = &at
	return nil
}

// MarkDelivered transitions the delivery to Delivered and stamps the
// delivery time. Rejected when the delivery is already delivered, so a rider
// can never be released twice through this path.
func (d *Delivery) MarkDelivered(at time.Time) error {
	newStatus, err := d.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.deliveryTime = &at
	return nil
}

// Cancel transitions the delivery to Cancelled. Used when the owning order
// is cancelled while the delivery is still active.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// IsActive reports whether the delivery still holds its rider.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// ID returns the delivery's store identifier (0 until persisted).
func (d *Delivery) ID() int64 {
	return d.id
}

// OrderID returns the owning order's identifier.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// RiderID returns the assigned rider's identifier.
func (d *Delivery) RiderID() int64 {
	return d.riderID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// PickupTime returns the pickup timestamp, or nil if not picked up yet.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveryTime returns the completion timestamp, or nil if not delivered.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

func (d *Delivery) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", id))
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setRiderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("riderID",
			fmt.Errorf("%d is not a valid rider id", id))
	}
	d.riderID = id
	return nil
}
