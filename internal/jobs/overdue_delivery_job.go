package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically sweeps for deliveries whose scheduled date
// has passed without a confirmation. Flagged orders are logged for follow-up
// with the vendor; the orders themselves are not modified.
type OverdueDeliveryJob struct {
	handler queries.GetOverdueDeliveriesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a new job for flagging overdue deliveries.
func NewOverdueDeliveryJob(handler queries.GetOverdueDeliveriesQueryHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery sweep, running at the top of every hour.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverdueDeliveriesQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
			return
		}

		for _, delivery := range overdue {
			j.logger.WarnContext(ctx, "Delivery overdue",
				"orderId", delivery.OrderID.String(),
				"vendorId", delivery.VendorID.String(),
				"scheduledDate", delivery.ScheduledDate,
				"trackingNumber", delivery.TrackingNumber,
			)
		}
		j.logger.InfoContext(ctx, "Overdue delivery sweep completed", "flagged", len(overdue))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running hourly)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
