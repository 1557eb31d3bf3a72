package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// ConfirmDeliveryCommandHandler records physical arrival of a shipment,
// moving the order from InTransit to Delivered on both the workflow and
// delivery axes.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the confirmation command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = aggregate.ConfirmDelivery(cmd.ActualDate(), cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
