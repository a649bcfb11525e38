package commands

import (
	"errors"

	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// ChangeDeliveryStatusCommand represents a direct update to a delivery
// record, used by rider-facing flows that report pickup and completion.
type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID int64
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewChangeDeliveryStatusCommand validates and creates a delivery
// status-change command.
func NewChangeDeliveryStatusCommand(deliveryID int64, status delivery.Status) (ChangeDeliveryStatusCommand, error) {
	cmd := ChangeDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c ChangeDeliveryStatusCommand) DeliveryID() int64 {
	return c.deliveryID
}

// Status returns the requested target status.
func (c ChangeDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *ChangeDeliveryStatusCommand) setDeliveryID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("delivery_id")
	}
	c.deliveryID = id
	return nil
}

func (c *ChangeDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
