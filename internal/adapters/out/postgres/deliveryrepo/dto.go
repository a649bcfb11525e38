// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
package deliveryrepo

import (
	"time"

	"fastfoodie/internal/core/domain/model/delivery"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. The unique index on order_id is the storage-level guarantee that
// an order never has two deliveries, whatever races the application loses.
type DeliveryDTO struct {
	ID           int64      `gorm:"column:delivery_id;primaryKey"`
	OrderID      int64      `gorm:"column:order_id;uniqueIndex;not null"`
	RiderID      int64      `gorm:"column:rider_id;index;not null"`
	Status       string     `gorm:"column:status;type:varchar(32);not null"`
	PickupTime   *time.Time `gorm:"column:pickup_time"`
	DeliveryTime *time.Time `gorm:"column:delivery_time"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID(),
		OrderID:      d.OrderID(),
		RiderID:      d.RiderID(),
		Status:       d.Status().String(),
		PickupTime:   d.PickupTime(),
		DeliveryTime: d.DeliveryTime(),
	}
}

// toDomain converts a database DTO to a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		dto.ID,
		dto.OrderID,
		dto.RiderID,
		status,
		dto.PickupTime,
		dto.DeliveryTime,
	)
}
