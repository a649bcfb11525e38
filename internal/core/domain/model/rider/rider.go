// Package rider contains the Rider aggregate: a courier identity with an
// availability flag. A rider is unavailable exactly while holding an active
// (non-delivered, non-cancelled) delivery.
package rider

import (
	"errors"
	"fmt"

	"fastfoodie/internal/pkg/errs"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not
	// created through NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

	// ErrRiderAlreadyPersisted is returned when AssignID is called on a
	// rider that already carries a store identifier.
	ErrRiderAlreadyPersisted = errors.New("rider id is already assigned")

	// ErrRiderNotAvailable is returned by Claim when the rider is already
	// holding an active delivery.
	ErrRiderNotAvailable = errors.New("rider is not available")
)

// Rider represents a courier in the pool. Claim and Release are the only two
// operations that flip availability as part of the delivery workflow;
// SetAvailability exists for manual overrides.
type Rider struct {
	id          int64
	name        string
	phone       string
	vehicleType string
	isAvailable bool

	isConstructed bool
}

// NewRider creates an available rider.
func NewRider(name, phone, vehicleType string) (*Rider, error) {
	r := &Rider{
		vehicleType:   vehicleType,
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setName(name),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider rebuilds a rider aggregate from its persisted state.
func RestoreRider(id int64, name, phone, vehicleType string, isAvailable bool) (*Rider, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("riderID",
			fmt.Errorf("%d is not a valid rider id", id))
	}

	r := &Rider{
		id:            id,
		vehicleType:   vehicleType,
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setName(name),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// AssignID records the identifier generated by the store. It may be called
// exactly once, by the repository that persisted the rider.
func (r *Rider) AssignID(id int64) error {
	if r.id != 0 {
		return ErrRiderAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("riderID",
			fmt.Errorf("%d is not a valid rider id", id))
	}
	r.id = id
	return nil
}

// Claim marks the rider unavailable for the duration of one delivery.
// Fails with ErrRiderNotAvailable when the rider is already claimed, which
// closes the double-booking path on explicit assignment.
func (r *Rider) Claim() error {
	if !r.isAvailable {
		return ErrRiderNotAvailable
	}
	r.isAvailable = false
	return nil
}

// Release returns the rider to the pool after a delivery completes or is
// cancelled. Releasing an already-available rider is a no-op.
func (r *Rider) Release() {
	r.isAvailable = true
}

// SetAvailability is the manual override used by the rider-availability
// endpoint.
func (r *Rider) SetAvailability(available bool) {
	r.isAvailable = available
}

// ID returns the rider's store identifier (0 until persisted).
func (r *Rider) ID() int64 {
	return r.id
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// VehicleType returns the rider's vehicle type (may be empty).
func (r *Rider) VehicleType() string {
	return r.vehicleType
}

// IsAvailable reports whether the rider can take a delivery.
func (r *Rider) IsAvailable() bool {
	return r.isAvailable
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}
