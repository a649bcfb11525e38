// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fastfoodie/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery retrieves riders from the pool, optionally filtered to
// available ones only.
//
// Example:
//
//	query := NewGetRidersQuery(true)
//	handler := NewGetRidersQueryHandler(db)
//
//	riders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve riders: %w", err)
//	}
//
//	for _, r := range riders {
//	    fmt.Printf("Rider %d (%s) available=%v\n", r.ID, r.Name, r.IsAvailable)
//	}
type GetRidersQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a query for the rider list. With availableOnly
// set, busy riders are filtered out.
func NewGetRidersQuery(availableOnly bool) GetRidersQuery {
	return GetRidersQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

// AvailableOnly reports whether busy riders should be excluded.
func (q GetRidersQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetRidersQueryResponse represents rider information in the read model.
type GetRidersQueryResponse struct {
	ID          int64
	Name        string
	Phone       string
	VehicleType string
	IsAvailable bool
}
