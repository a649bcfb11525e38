package commands

import (
	"context"
	"errors"

	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/pkg/errs"
)

// ErrDeliveryAlreadyExists is returned when an order already has a delivery
// record. Maps to HTTP 409 at the transport boundary.
var ErrDeliveryAlreadyExists = errors.New("order already has a delivery")

// AssignDeliveryCommandHandler creates a delivery for a caller-chosen rider.
//
// Within one transaction: reject if the order already has a delivery, claim
// the chosen rider (the claim fails when the rider is unavailable), insert
// the delivery in assigned status and move the order to out_for_delivery.
// An order already in out_for_delivery keeps its status, which lets
// dispatchers assign riders manually to orders the auto-selection left
// without one.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for explicit delivery
// assignment.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the explicit assignment and returns the created delivery.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	riderRepo := uow.RiderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	_, err = deliveryRepo.GetByOrder(ctx, o.ID())
	if err == nil {
		return nil, ErrDeliveryAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}
	if err = r.Claim(); err != nil {
		return nil, err
	}

	if o.Status() != order.OutForDelivery {
		if err = o.ChangeStatus(order.OutForDelivery); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	d, err := delivery.NewDelivery(o.ID(), r.ID())
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}
	if err = riderRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
