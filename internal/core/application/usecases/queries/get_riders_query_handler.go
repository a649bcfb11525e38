package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRidersQueryHandler retrieves rider information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider list queries.
// Requires a GORM database connection for query execution.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query and returns rider read models sorted by ID.
func (h GetRidersQueryHandler) Handle(
	ctx context.Context,
	query GetRidersQuery,
) ([]GetRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetRidersQueryResponse, 0)

	sql := `
		SELECT
			rider_id,
			name,
			phone,
			vehicle_type,
			is_available
		FROM riders
	`
	if query.AvailableOnly() {
		sql += " WHERE is_available"
	}
	sql += " ORDER BY rider_id"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetRidersQueryResponse

		err = rows.Scan(
			&r.ID,
			&r.Name,
			&r.Phone,
			&r.VehicleType,
			&r.IsAvailable,
		)
		if err != nil {
			return nil, err
		}

		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
