package commands

import (
	"context"
)

// ReviewDiscrepancyCommandHandler moves a reported discrepancy case under
// review. A case already picked up stays with its reviewer: the second
// pickup fails.
type ReviewDiscrepancyCommandHandler struct {
	uowFactory DiscrepancyUoWFactory
}

// NewReviewDiscrepancyCommandHandler creates a handler for case review pickup.
func NewReviewDiscrepancyCommandHandler(uowFactory DiscrepancyUoWFactory) ReviewDiscrepancyCommandHandler {
	return ReviewDiscrepancyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review pickup command.
func (h *ReviewDiscrepancyCommandHandler) Handle(ctx context.Context, cmd ReviewDiscrepancyCommand) error {
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

	if err = aggregate.StartReview(); err != nil {
		return err
	}

	if err = discrepancyRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
