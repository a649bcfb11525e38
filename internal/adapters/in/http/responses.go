package http

import (
	"time"

	"fastfoodie/internal/core/application/usecases/queries"
	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/core/domain/model/rider"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OrderResponse is the full order representation returned by write
// endpoints.
type OrderResponse struct {
	OrderID             int64               `json:"order_id"`
	CustomerID          int64               `json:"customer_id"`
	RestaurantID        int64               `json:"restaurant_id"`
	Status              string              `json:"status"`
	TotalAmount         decimal.Decimal     `json:"total_amount"`
	DeliveryAddress     string              `json:"delivery_address"`
	SpecialInstructions string              `json:"special_instructions,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	Items               []OrderItemResponse `json:"items"`
	Payment             PaymentResponse     `json:"payment"`
}

// OrderItemResponse is one line item with its price snapshot.
type OrderItemResponse struct {
	MenuItemID int64           `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// PaymentResponse is the payment record created with the order.
type PaymentResponse struct {
	Method string          `json:"method"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
		})
	}

	return OrderResponse{
		OrderID:             o.ID(),
		CustomerID:          o.CustomerID(),
		RestaurantID:        o.RestaurantID(),
		Status:              o.Status().String(),
		TotalAmount:         o.TotalAmount(),
		DeliveryAddress:     o.DeliveryAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		CreatedAt:           o.OrderDate(),
		UpdatedAt:           o.UpdatedAt(),
		Items:               items,
		Payment: PaymentResponse{
			Method: o.Payment().Method(),
			Status: o.Payment().Status(),
			Amount: o.Payment().Amount(),
		},
	}
}

// DeliveryResponse is the delivery representation returned by write
// endpoints.
type DeliveryResponse struct {
	DeliveryID   int64      `json:"delivery_id"`
	OrderID      int64      `json:"order_id"`
	RiderID      int64      `json:"rider_id"`
	Status       string     `json:"status"`
	PickupTime   *time.Time `json:"pickup_time"`
	DeliveryTime *time.Time `json:"delivery_time"`
}

func deliveryToResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		DeliveryID:   d.ID(),
		OrderID:      d.OrderID(),
		RiderID:      d.RiderID(),
		Status:       d.Status().String(),
		PickupTime:   d.PickupTime(),
		DeliveryTime: d.DeliveryTime(),
	}
}

// RiderResponse is the rider representation.
type RiderResponse struct {
	RiderID     int64  `json:"rider_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type,omitempty"`
	IsAvailable bool   `json:"is_available"`
}

func riderToResponse(r *rider.Rider) RiderResponse {
	return RiderResponse{
		RiderID:     r.ID(),
		Name:        r.Name(),
		Phone:       r.Phone(),
		VehicleType: r.VehicleType(),
		IsAvailable: r.IsAvailable(),
	}
}

// OrderDeliveryResponse is the tracking view: the delivery joined with the
// assigned rider's contact details.
type OrderDeliveryResponse struct {
	DeliveryID   int64                 `json:"delivery_id"`
	OrderID      int64                 `json:"order_id"`
	Status       string                `json:"status"`
	PickupTime   *time.Time            `json:"pickup_time"`
	DeliveryTime *time.Time            `json:"delivery_time"`
	Rider        DeliveryRiderResponse `json:"rider"`
}

// DeliveryRiderResponse is the rider contact block inside the tracking view.
type DeliveryRiderResponse struct {
	RiderID     int64  `json:"rider_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type,omitempty"`
}

func orderDeliveryToResponse(view *queries.GetOrderDeliveryQueryResponse) OrderDeliveryResponse {
	return OrderDeliveryResponse{
		DeliveryID:   view.DeliveryID,
		OrderID:      view.OrderID,
		Status:       view.Status,
		PickupTime:   view.PickupTime,
		DeliveryTime: view.DeliveryTime,
		Rider: DeliveryRiderResponse{
			RiderID:     view.RiderID,
			Name:        view.RiderName,
			Phone:       view.RiderPhone,
			VehicleType: view.RiderVehicleType,
		},
	}
}

// CustomerOrderResponse is one row of the order history listing.
type CustomerOrderResponse struct {
	OrderID            int64           `json:"order_id"`
	RestaurantID       int64           `json:"restaurant_id"`
	RestaurantName     string          `json:"restaurant_name"`
	RestaurantLocation string          `json:"restaurant_location"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	CreatedAt          time.Time       `json:"created_at"`
}

func customerOrdersToResponse(rows []queries.GetCustomerOrdersQueryResponse) []CustomerOrderResponse {
	out := make([]CustomerOrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, CustomerOrderResponse{
			OrderID:            row.OrderID,
			RestaurantID:       row.RestaurantID,
			RestaurantName:     row.RestaurantName,
			RestaurantLocation: row.RestaurantLocation,
			Status:             row.Status,
			TotalAmount:        row.TotalAmount,
			CreatedAt:          row.CreatedAt,
		})
	}
	return out
}

func ridersToResponse(rows []queries.GetRidersQueryResponse) []RiderResponse {
	out := make([]RiderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, RiderResponse{
			RiderID:     row.ID,
			Name:        row.Name,
			Phone:       row.Phone,
			VehicleType: row.VehicleType,
			IsAvailable: row.IsAvailable,
		})
	}
	return out
}
