package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// TransitionOrderCommandHandler fires payload-free workflow triggers against
// an order. The optimistic-concurrency version check in the repository means
// two users racing the same trigger cannot both win: the loser gets a
// version conflict and must reload.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewTransitionOrderCommandHandler creates a handler for workflow transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the transition command. Loads the order, applies the
// trigger through the aggregate's state machine, and persists the new status
// together with the audit event.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
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

	if err = aggregate.Transition(cmd.Trigger(), cmd.Actor(), cmd.Notes(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
