package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// ScheduleDeliveryCommandHandler books deliveries for approved orders. The
// domain checks the scheduled date against the injected clock, so the
// strictly-future rule is testable with a fixed time.
type ScheduleDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery scheduling.
func NewScheduleDeliveryCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the scheduling command. Loads the order, books the
// delivery through the aggregate, and persists the new status with its audit
// event.
func (h *ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ScheduleDelivery(
		cmd.Date(), cmd.Method(), cmd.Location(), cmd.TrackingNumber(),
		cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
