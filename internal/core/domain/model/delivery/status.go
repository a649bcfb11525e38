package delivery

import (
	"fmt"

	"fastfoodie/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery record.
//
// State transitions:
//
//	Assigned ──> PickedUp ──> Delivered
//	   │            │
//	   ├────────────┴──> Cancelled
//	   └──> Delivered (direct completion via the delivery-status endpoint)
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned means a rider was explicitly picked for the order but has
	// not collected it yet.
	Assigned

	// PickedUp means the rider collected the order from the restaurant.
	// The auto-assignment path creates deliveries directly in this status.
	PickedUp

	// Delivered is the terminal success status; reaching it releases the
	// rider back to the pool.
	Delivered

	// Cancelled is terminal; reaching it also releases the rider.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Assigned: {PickedUp, Delivered, Cancelled},
		PickedUp: {Delivered, Cancelled},
	}
}

// StatusFromString parses the wire representation of a delivery status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks the Status is one of the defined values (Unknown excluded).
func (s Status) Validate() error {
	if s < Assigned || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire/store representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the transition against the table and returns the
// next status, or an error when the transition is not allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next))
}
