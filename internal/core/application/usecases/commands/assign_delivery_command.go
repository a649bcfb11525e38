package commands

import (
	"errors"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents an explicit delivery assignment: the
// caller picks the rider instead of relying on auto-selection.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	riderID int64

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand validates and creates an explicit-assignment
// command.
func NewAssignDeliveryCommand(orderID, riderID int64) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// RiderID returns the chosen rider.
func (c AssignDeliveryCommand) RiderID() int64 {
	return c.riderID
}

func (c *AssignDeliveryCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order_id")
	}
	c.orderID = id
	return nil
}

func (c *AssignDeliveryCommand) setRiderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("rider_id")
	}
	c.riderID = id
	return nil
}
