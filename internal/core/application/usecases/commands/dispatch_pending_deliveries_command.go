package commands

import (
	"errors"

	"fastfoodie/internal/pkg/guard"
)

var ErrDispatchPendingDeliveriesCommandIsNotConstructed = errors.New(
	"DispatchPendingDeliveriesCommand must be created via NewDispatchPendingDeliveriesCommand constructor",
)

// DispatchPendingDeliveriesCommand triggers a sweep over orders that are out
// for delivery but have no delivery record, pairing each with a free rider.
type DispatchPendingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingDeliveriesCommand creates a dispatch sweep command.
func NewDispatchPendingDeliveriesCommand() (DispatchPendingDeliveriesCommand, error) {
	return DispatchPendingDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingDeliveriesCommandIsNotConstructed)
}
