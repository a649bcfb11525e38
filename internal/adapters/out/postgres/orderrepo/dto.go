// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fastfoodie/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the payment record live in their own tables and are written
// in the same transaction as the order row.
type OrderDTO struct {
	ID                  int64           `gorm:"column:order_id;primaryKey"`
	CustomerID          int64           `gorm:"column:customer_id;index;not null"`
	RestaurantID        int64           `gorm:"column:restaurant_id;not null"`
	TotalAmount         decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null"`
	DeliveryAddress     string          `gorm:"column:delivery_address;not null"`
	SpecialInstructions string          `gorm:"column:special_instructions"`
	Status              string          `gorm:"column:status;type:varchar(32);index;not null"`
	CreatedAt           time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt           time.Time       `gorm:"column:updated_at;not null"`

	Items   []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Payment PaymentDTO     `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item with its price snapshot.
type OrderItemDTO struct {
	ID         int64           `gorm:"column:order_item_id;primaryKey"`
	OrderID    int64           `gorm:"column:order_id;index;not null"`
	MenuItemID int64           `gorm:"column:menu_item_id;not null"`
	Quantity   int             `gorm:"column:quantity;not null"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents the payment record created alongside the order.
type PaymentDTO struct {
	ID      int64           `gorm:"column:payment_id;primaryKey"`
	OrderID int64           `gorm:"column:order_id;index;not null"`
	Method  string          `gorm:"column:payment_method;type:varchar(32);not null"`
	Status  string          `gorm:"column:payment_status;type:varchar(32);not null"`
	Amount  decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null"`
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID(),
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	payment := o.Payment()

	return OrderDTO{
		ID:                  o.ID(),
		CustomerID:          o.CustomerID(),
		RestaurantID:        o.RestaurantID(),
		TotalAmount:         o.TotalAmount(),
		DeliveryAddress:     o.DeliveryAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status().String(),
		CreatedAt:           o.OrderDate(),
		UpdatedAt:           o.UpdatedAt(),
		Items:               items,
		Payment: PaymentDTO{
			ID:      payment.ID(),
			OrderID: o.ID(),
			Method:  payment.Method(),
			Status:  payment.Status(),
			Amount:  payment.Amount(),
		},
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including line items and payment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.MenuItemID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment := order.RestorePayment(dto.Payment.ID, dto.Payment.Method, dto.Payment.Status, dto.Payment.Amount)

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.RestaurantID,
		dto.TotalAmount,
		dto.DeliveryAddress,
		dto.SpecialInstructions,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
		payment,
	)
}
