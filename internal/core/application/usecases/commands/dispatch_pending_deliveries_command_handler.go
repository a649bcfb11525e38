package commands

import (
	"context"
	"errors"
	"time"

	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/services"
)

// ErrNoPendingOrders signals that the sweep found nothing to dispatch. The
// background job treats it as routine.
var ErrNoPendingOrders = errors.New("no orders are awaiting dispatch")

// ErrNoFreeRiders signals that undispatched orders exist but every rider is
// busy. The background job treats it as routine and retries on the next
// tick.
var ErrNoFreeRiders = errors.New("no riders are available for dispatch")

// DispatchPendingDeliveriesCommandHandler backfills delivery records for
// orders that went out for delivery while the rider pool was exhausted.
type DispatchPendingDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.RiderDispatcher
}

// NewDispatchPendingDeliveriesCommandHandler creates a handler for the
// dispatch sweep.
func NewDispatchPendingDeliveriesCommandHandler(
	uowFactory UoWFactory, dispatcher services.RiderDispatcher,
) DispatchPendingDeliveriesCommandHandler {
	return DispatchPendingDeliveriesCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle pairs each undispatched order with a free rider in a single
// transaction. Riders are locked for the duration of the sweep, so
// concurrent sweeps and explicit assignments cannot claim the same rider
// twice. Returns the number of deliveries created.
func (h DispatchPendingDeliveriesCommandHandler) Handle(ctx context.Context, cmd DispatchPendingDeliveriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllAwaitingDispatch(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, ErrNoPendingOrders
	}

	riderRepo := uow.RiderRepository()
	deliveryRepo := uow.DeliveryRepository()

	candidates, err := riderRepo.GetAllAvailableForUpdate(ctx)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	now := time.Now().UTC()

	for _, o := range pending {
		r, dispatchErr := h.dispatcher.Dispatch(candidates)
		if errors.Is(dispatchErr, services.ErrNoAvailableRider) {
			break
		}
		if dispatchErr != nil {
			return 0, dispatchErr
		}

		d, newErr := delivery.NewDelivery(o.ID(), r.ID())
		if newErr != nil {
			return 0, newErr
		}
		if err = d.MarkPickedUp(now); err != nil {
			return 0, err
		}

		if err = deliveryRepo.Add(ctx, d); err != nil {
			return 0, err
		}
		if err = riderRepo.Update(ctx, r); err != nil {
			return 0, err
		}

		dispatched++
	}

	if dispatched == 0 {
		return 0, ErrNoFreeRiders
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return dispatched, nil
}
