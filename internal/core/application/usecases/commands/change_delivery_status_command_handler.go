package commands

import (
	"context"
	"fmt"
	"time"

	"fastfoodie/internal/core/domain/model/delivery"
	"fastfoodie/internal/core/domain/model/order"
	"fastfoodie/internal/pkg/errs"
)

// ChangeDeliveryStatusCommandHandler updates a delivery record directly and
// keeps the owning order in step.
//
// The derived order status follows the delivery: picked_up moves the order
// to out_for_delivery, delivered moves it to delivered (releasing the
// rider), and a cancelled delivery sends the order back to preparing, also
// releasing the rider. The cancelled record stays as the order's delivery
// and counts as settled when the order later completes. The order row is
// written only when its status actually changes.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeDeliveryStatusCommandHandler creates a handler for direct
// delivery status updates.
func NewChangeDeliveryStatusCommandHandler(uowFactory UoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the delivery transition, the derived order transition and
// any rider release in one transaction, and returns the updated delivery.
func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	var derivedOrderStatus order.Status
	releaseAfterUpdate := false
	now := time.Now().UTC()

	switch cmd.Status() {
	case delivery.PickedUp:
		if err = d.MarkPickedUp(now); err != nil {
			return nil, err
		}
		derivedOrderStatus = order.OutForDelivery
	case delivery.Delivered:
		if err = d.MarkDelivered(now); err != nil {
			return nil, err
		}
		derivedOrderStatus = order.Delivered
		releaseAfterUpdate = true
	case delivery.Cancelled:
		if err = d.Cancel(); err != nil {
			return nil, err
		}
		derivedOrderStatus = order.Preparing
		releaseAfterUpdate = true
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid target delivery status", cmd.Status()))
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = h.syncOrderStatus(ctx, uow, d.OrderID(), derivedOrderStatus); err != nil {
		return nil, err
	}

	if releaseAfterUpdate {
		if err = releaseRider(ctx, uow.RiderRepository(), d.RiderID()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func (h ChangeDeliveryStatusCommandHandler) syncOrderStatus(ctx context.Context, uow UoW, orderID int64, derived order.Status) error {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if o.Status() == derived {
		return nil
	}

	if err = o.ChangeStatus(derived); err != nil {
		return err
	}

	return orderRepo.Update(ctx, o)
}
