package commands

import (
	"context"
	"errors"
	"time"

	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/core/domain/services"
	"fastfoodie/internal/core/ports"
	"fastfoodie/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler is the order state machine's entry point.
//
// Beyond the status write itself, two transitions carry side effects that
// must commit atomically with it:
//
//   - entering out_for_delivery claims one available rider and creates the
//     delivery record (picked_up, pickup time now). When no rider is free
//     the status change still commits with no delivery; the recovery sweep
//     retries the acquisition later.
//   - entering delivered completes the delivery (delivery time now) and
//     releases the rider back to the pool.
//
// Cancelling an order that still holds an active delivery cancels the
// delivery and releases its rider in the same transaction, so a rider can
// never be stranded by a cancellation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the status transition and its side effects in one
// transaction and returns the updated order.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case order.OutForDelivery:
		err = createDeliveryIfMissing(ctx, uow, o)
	case order.Delivered:
		err = completeDelivery(ctx, uow, o)
	case order.Cancelled:
		err = cancelActiveDelivery(ctx, uow, o)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// createDeliveryIfMissing is side effect A: on entering out_for_delivery,
// claim one rider and create the delivery, unless one already exists.
// Running out of riders is not an error here.
func createDeliveryIfMissing(ctx context.Context, uow UoW, o *order.Order) error {
	deliveryRepo := uow.DeliveryRepository()

	_, err := deliveryRepo.GetByOrder(ctx, o.ID())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	riderRepo := uow.RiderRepository()
	candidates, err := riderRepo.GetAllAvailableForUpdate(ctx)
	if err != nil {
		return err
	}

	claimed, err := services.NewRiderDispatcher().Dispatch(candidates)
	if errors.Is(err, services.ErrNoAvailableRider) {
		return nil
	}
	if err != nil {
		return err
	}

	d, err := delivery.NewDelivery(o.ID(), claimed.ID())
	if err != nil {
		return err
	}
	if err = d.MarkPickedUp(time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}

	return riderRepo.Update(ctx, claimed)
}

// completeDelivery is side effect B: on entering delivered, stamp the
// delivery and release the rider. An order delivered without a delivery
// record (no rider was ever free) completes without side effects, and so
// does one whose delivery is already terminal: a cancelled delivery
// released its rider at cancellation time and stays as the order's record.
func completeDelivery(ctx context.Context, uow UoW, o *order.Order) error {
	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !d.IsActive() {
		return nil
	}

	if err = d.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return releaseRider(ctx, uow.RiderRepository(), d.RiderID())
}

// cancelActiveDelivery releases the rider of a still-active delivery when
// the order is cancelled.
func cancelActiveDelivery(ctx context.Context, uow UoW, o *order.Order) error {
	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !d.IsActive() {
		return nil
	}

	if err = d.Cancel(); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return releaseRider(ctx, uow.RiderRepository(), d.RiderID())
}

func releaseRider(ctx context.Context, riderRepo ports.RiderRepository, riderID int64) error {
	r, err := riderRepo.Get(ctx, riderID)
	if err != nil {
		return err
	}

	r.Release()
	return riderRepo.Update(ctx, r)
}
