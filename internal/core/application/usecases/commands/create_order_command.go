package commands

import (
	"errors"

	"fastfoodie/internal/pkg/errs"
	"fastfoodie/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItem is one ordered menu item as submitted by the customer.
type LineItem struct {
	MenuItemID int64
	Quantity   int
	Price      decimal.Decimal
}

// CreateOrderCommand represents a request to ingest a new order: the order
// row, one row per line item and one pending payment record, created as a
// single atomic unit.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          int64
	restaurantID        int64
	totalAmount         decimal.Decimal
	deliveryAddress     string
	specialInstructions string
	paymentMethod       string
	items               []LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and creates an order-ingestion command.
// specialInstructions may be empty; an empty paymentMethod defaults to cash
// on delivery at the domain layer.
func NewCreateOrderCommand(
	customerID int64,
	restaurantID int64,
	totalAmount decimal.Decimal,
	deliveryAddress string,
	specialInstructions string,
	paymentMethod string,
	items []LineItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		specialInstructions: specialInstructions,
		paymentMethod:       paymentMethod,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTotalAmount(totalAmount),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// SpecialInstructions returns the optional instructions (may be empty).
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// PaymentMethod returns the requested payment method (may be empty).
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Items returns the submitted line items.
func (c CreateOrderCommand) Items() []LineItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("total_amount")
	}
	c.totalAmount = amount
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]LineItem, len(items))
	copy(c.items, items)
	return nil
}
