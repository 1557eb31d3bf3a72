package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// ResolveDiscrepancyCommandHandler closes discrepancy cases with their agreed
// resolution. Resolved cases are immutable; a shortage found later opens a
// fresh case through the reconciliation flow.
type ResolveDiscrepancyCommandHandler struct {
	uowFactory DiscrepancyUoWFactory
	clock      ports.Clock
}

// NewResolveDiscrepancyCommandHandler creates a handler for case resolution.
func NewResolveDiscrepancyCommandHandler(uowFactory DiscrepancyUoWFactory, clock ports.Clock) ResolveDiscrepancyCommandHandler {
	return ResolveDiscrepancyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the resolution command.
func (h *ResolveDiscrepancyCommandHandler) Handle(ctx context.Context, cmd ResolveDiscrepancyCommand) error {
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

	discrepancyRepo := uow.DiscrepancyRepository()
	aggregate, err := discrepancyRepo.Get(ctx, cmd.CaseID())
	if err != nil {
		return err
	}

	if err = aggregate.Resolve(cmd.Action(), cmd.Notes(), cmd.Actor(), h.clock.Now()); err != nil {
		return err
	}

	if err = discrepancyRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
