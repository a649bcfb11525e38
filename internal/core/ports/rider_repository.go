package ports

import (
	"context"

	"fastfoodie/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider and assigns the generated identifier to the
	// aggregate.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider, including availability.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by identifier.
	Get(ctx context.Context, id int64) (*rider.Rider, error)

	// GetAllAvailableForUpdate retrieves available riders ordered by id,
	// locking the rows for the duration of the transaction (SKIP LOCKED).
	// The lock turns check-then-claim into one atomic conditional update:
	// two concurrent transactions can never claim the same rider.
	//
	// Must only be called inside an active unit of work.
	GetAllAvailableForUpdate(ctx context.Context) ([]*rider.Rider, error)
}
