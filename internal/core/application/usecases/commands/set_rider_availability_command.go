package commands

import (
	"errors"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a manual availability override,
// e.g. taking a rider off shift.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID   int64
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand validates and creates an availability
// override command.
func NewSetRiderAvailabilityCommand(riderID int64, available bool) (SetRiderAvailabilityCommand, error) {
	cmd := SetRiderAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setRiderID(riderID); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the target rider's identifier.
func (c SetRiderAvailabilityCommand) RiderID() int64 {
	return c.riderID
}

// Available returns the requested availability.
func (c SetRiderAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetRiderAvailabilityCommand) setRiderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("rider_id")
	}
	c.riderID = id
	return nil
}
