// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
package riderrepo

import (
	"fastfoodie/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The availability flag is indexed because dispatch scans it on every sweep.
type RiderDTO struct {
	ID          int64  `gorm:"column:rider_id;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Phone       string `gorm:"column:phone;not null"`
	VehicleType string `gorm:"column:vehicle_type;type:varchar(32)"`
	IsAvailable bool   `gorm:"column:is_available;index;not null;default:true"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider aggregate to its database representation.
func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:          r.ID(),
		Name:        r.Name(),
		Phone:       r.Phone(),
		VehicleType: r.VehicleType(),
		IsAvailable: r.IsAvailable(),
	}
}

// toDomain converts a database DTO to a rider aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	return rider.RestoreRider(dto.ID, dto.Name, dto.Phone, dto.VehicleType, dto.IsAvailable)
}
