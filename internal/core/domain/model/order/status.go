package order

import (
	"fmt"

	"fastfoodie/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │          │        ▲
//	   │            │          │        │ (delivery re-queued)
//	   │            │          └────────┘
//	   └────────────┴──────────┴──> Cancelled
//
// OutForDelivery may fall back to Preparing when the order's delivery is
// cancelled; the order then moves through the lifecycle again with its
// cancelled delivery counting as settled. Delivered and Cancelled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set by order ingestion.
	Pending

	// Preparing indicates the restaurant accepted the order.
	Preparing

	// OutForDelivery indicates the order left the restaurant. Entering this
	// status triggers rider acquisition and delivery creation.
	OutForDelivery

	// Delivered is the terminal success status. Entering it releases the
	// assigned rider back to the pool.
	Delivered

	// Cancelled is terminal and reachable from any pre-delivered status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getTransitionTable returns the allowed (current -> next) transitions.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Preparing, Cancelled},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for anything outside the closed enumeration; Unknown is
// not parseable.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks the Status is one of the defined values (Unknown excluded).
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire/store representation of the status.
// Implements fmt.Stringer; safe to call on invalid values.
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

// CanTransitionTo reports whether the transition table allows moving from
// the current status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition against the table and returns the
// next status, or an error when the transition is not allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next))
	}
	return next, nil
}
