package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Bound request structs are validated against their struct tags before the
// handler sees them.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// CreateOrderRequest is the order ingestion payload.
type CreateOrderRequest struct {
	CustomerID          int64              `json:"customer_id"      validate:"required,gt=0"`
	RestaurantID        int64              `json:"restaurant_id"    validate:"required,gt=0"`
	TotalAmount         decimal.Decimal    `json:"total_amount"     validate:"required"`
	DeliveryAddress     string             `json:"delivery_address" validate:"required"`
	SpecialInstructions string             `json:"special_instructions"`
	PaymentMethod       string             `json:"payment_method"`
	Items               []OrderItemRequest `json:"items"            validate:"required,min=1,dive"`
}

// OrderItemRequest is one line item in the ingestion payload.
type OrderItemRequest struct {
	MenuItemID int64           `json:"menu_item_id" validate:"required,gt=0"`
	Quantity   int             `json:"quantity"     validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price"        validate:"required"`
}

// ChangeStatusRequest carries the target status for order and delivery
// status updates. The string is parsed against the closed enumeration.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignDeliveryRequest is the explicit assignment payload.
type AssignDeliveryRequest struct {
	OrderID int64 `json:"order_id" validate:"required,gt=0"`
	RiderID int64 `json:"rider_id" validate:"required,gt=0"`
}

// CreateRiderRequest is the rider registration payload.
type CreateRiderRequest struct {
	Name        string `json:"name"  validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	VehicleType string `json:"vehicle_type"`
}

// SetRiderAvailabilityRequest is the manual availability override payload.
type SetRiderAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
