package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fastfoodie/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob runs the dispatch sweep on a schedule, pairing orders
// that went out for delivery without a rider with riders that have since
// freed up.
type DeliveryDispatchJob struct {
	handler commands.DispatchPendingDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDispatchJob creates a job that runs the dispatch sweep every
// five seconds.
func NewDeliveryDispatchJob(handler commands.DispatchPendingDeliveriesCommandHandler, logger *slog.Logger) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the dispatch sweep schedule.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchPendingDeliveriesCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to construct dispatch command", "error", err)
			return
		}

		dispatched, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Empty queues are routine, not failures
			if !errors.Is(err, commands.ErrNoPendingOrders) && !errors.Is(err, commands.ErrNoFreeRiders) {
				j.logger.ErrorContext(ctx, "Delivery dispatch sweep failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Delivery dispatch sweep completed", "dispatched", dispatched)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started (running every five seconds)")
	return nil
}

// Stop stops the dispatch sweep.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
