package commands

import (
	"context"

	"fastfoodie/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order ingestion.
//
// The order row, its line items and the pending payment record are written
// inside one transaction: either all of them exist afterwards or none do.
// Any insert failure rolls back the whole unit and surfaces the underlying
// cause.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order ingestion.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order-ingestion command and returns the created order
// with its store-assigned identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, li := range cmd.Items() {
		item, err := order.NewItem(li.MenuItemID, li.Quantity, li.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.TotalAmount(),
		cmd.DeliveryAddress(),
		cmd.SpecialInstructions(),
		items,
		cmd.PaymentMethod(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
