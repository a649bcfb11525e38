package order

import (
	"errors"
	"fmt"
	"time"

	"fastfoodie/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyPersisted is returned when AssignID is called on an
	// order that already carries a store identifier.
	ErrOrderAlreadyPersisted = errors.New("order id is already assigned")
)

// Order is the aggregate root for the order lifecycle. It owns the line-item
// snapshots and the payment record created at ingestion, and its status may
// only advance through the transition table in status.go.
//
// Invariants:
//   - at least one line item, each with positive quantity
//   - positive total amount, payment amount equals the total
//   - status mutations go through ChangeStatus only
//   - the store identifier is assigned exactly once, by the repository
type Order struct {
	id                  int64
	customerID          int64
	restaurantID        int64
	totalAmount         decimal.Decimal
	deliveryAddress     string
	specialInstructions string
	status              Status
	orderDate           time.Time
	updatedAt           time.Time
	items               []Item
	payment             Payment

	isConstructed bool
}

// NewOrder creates a pending order with its items and a pending payment.
// specialInstructions and paymentMethod may be empty; an empty payment
// method defaults to cash on delivery.
func NewOrder(
	customerID int64,
	restaurantID int64,
	totalAmount decimal.Decimal,
	deliveryAddress string,
	specialInstructions string,
	items []Item,
	paymentMethod string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		specialInstructions: specialInstructions,
		status:              Pending,
		orderDate:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	payment, err := NewPayment(paymentMethod, totalAmount)
	if err != nil {
		return nil, err
	}
	o.payment = payment

	return o, nil
}

// RestoreOrder rebuilds an order aggregate from its persisted state.
// Used by the repository layer; performs the same field validation as
// NewOrder but accepts any valid status.
func RestoreOrder(
	id int64,
	customerID int64,
	restaurantID int64,
	totalAmount decimal.Decimal,
	deliveryAddress string,
	specialInstructions string,
	status Status,
	orderDate time.Time,
	updatedAt time.Time,
	items []Item,
	payment Payment,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                  id,
		specialInstructions: specialInstructions,
		status:              status,
		orderDate:           orderDate,
		updatedAt:           updatedAt,
		payment:             payment,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store. It may be called
// exactly once, by the repository that persisted the order.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", id))
	}
	o.id = id
	return nil
}

// ChangeStatus advances the order through the transition table and stamps
// the last-modified time. Transitions outside the table are rejected.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// ID returns the order's store identifier (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the optional instructions (may be empty).
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the creation time.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// UpdatedAt returns the last-modified time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Payment returns the payment record created with the order.
func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("%d is not a valid customer id", id))
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID",
			fmt.Errorf("%d is not a valid restaurant id", id))
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setTotalAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
