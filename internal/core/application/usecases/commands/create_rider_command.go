package commands

import (
	"errors"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand represents a request to register a new rider in the
// pool. New riders start available.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	name        string
	phone       string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand validates and creates a rider-registration command.
// vehicleType may be empty.
func NewCreateRiderCommand(name, phone, vehicleType string) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// Name returns the rider's name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Phone returns the rider's phone number.
func (c CreateRiderCommand) Phone() string {
	return c.phone
}

// VehicleType returns the rider's vehicle type (may be empty).
func (c CreateRiderCommand) VehicleType() string {
	return c.vehicleType
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
