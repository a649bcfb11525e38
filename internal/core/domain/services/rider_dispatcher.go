package services

import (
	"errors"

	"fastfoodie/internal/core/domain/model/rider"
)

// ErrNoAvailableRider is returned when no rider in the candidate set can be
// claimed. Callers treat this as a recoverable condition, not a failure: the
// order keeps its status and the background sweep retries later.
var ErrNoAvailableRider = errors.New("no available rider")

// RiderDispatcher selects one rider from a candidate set and claims it.
//
// The pool has no ranking policy: candidates are expected to arrive ordered
// by id from the repository, and the dispatcher takes the first one that can
// be claimed. The candidate set must be loaded with a row lock so the claim
// and the availability flip commit atomically with the delivery creation.
type RiderDispatcher struct{}

// NewRiderDispatcher creates a new RiderDispatcher.
func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{}
}

// Dispatch claims the first available rider from candidates.
// Returns ErrNoAvailableRider when the set is empty or every candidate is
// already claimed.
func (d RiderDispatcher) Dispatch(candidates []*rider.Rider) (*rider.Rider, error) {
	for _, r := range candidates {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		if err := r.Claim(); err != nil {
			if errors.Is(err, rider.ErrRiderNotAvailable) {
				continue
			}
			return nil, err
		}
		return r, nil
	}

	return nil, ErrNoAvailableRider
}
