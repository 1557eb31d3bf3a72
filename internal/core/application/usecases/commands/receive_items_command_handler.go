package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ReceiveItemsCommandHandler runs receipt reconciliation: records counted
// quantities, concludes the delivery sub-state, and opens or updates the
// order's discrepancy case when anything is short. The order update and the
// case change commit in one transaction.
type ReceiveItemsCommandHandler struct {
	uowFactory ReceiptUoWFactory
	reconciler services.ReceiptReconciler
	clock      ports.Clock
}

// NewReceiveItemsCommandHandler creates a handler for receipt reconciliation.
func NewReceiveItemsCommandHandler(uowFactory ReceiptUoWFactory, clock ports.Clock) ReceiveItemsCommandHandler {
	return ReceiveItemsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReceiptReconciler(),
		clock:      clock,
	}
}

// Handle processes the reconciliation command and returns the pass outcome.
//
// When the pass finds shortages, the order's open case is updated with the
// fresh numbers, or a new case is opened if none is open. A case that was
// already resolved stays resolved; a shortage found afterwards opens a new
// one. When the pass is complete, any open case is left for explicit
// resolution, typically as a redelivery.
func (h *ReceiveItemsCommandHandler) Handle(
	ctx context.Context,
	cmd ReceiveItemsCommand,
) (services.ReconciliationResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ReconciliationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ReconciliationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ReconciliationResult{}, err
	}

	result, err := h.reconciler.Reconcile(
		aggregate, cmd.Quantities(), cmd.Actor(), cmd.Notes(), h.clock.Now())
	if err != nil {
		return services.ReconciliationResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return services.ReconciliationResult{}, err
	}

	if result.HasShortages() {
		if err = h.reportShortages(ctx, uow, cmd, result); err != nil {
			return services.ReconciliationResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ReconciliationResult{}, err
	}

	return result, nil
}

func (h *ReceiveItemsCommandHandler) reportShortages(
	ctx context.Context,
	uow ReceiptUoW,
	cmd ReceiveItemsCommand,
	result services.ReconciliationResult,
) error {
	discrepancyRepo := uow.DiscrepancyRepository()

	openCase, err := discrepancyRepo.GetOpenByOrder(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if err = openCase.UpdateShortages(result.Shortages); err != nil {
			return err
		}
		return discrepancyRepo.Update(ctx, openCase)

	case errors.Is(err, errs.ErrObjectNotFound):
		newCase, caseErr := discrepancy.NewCase(
			kernel.NewUUID(), cmd.OrderID(), result.Shortages,
			cmd.Actor(), h.clock.Now())
		if caseErr != nil {
			return caseErr
		}
		return discrepancyRepo.Add(ctx, newCase)

	default:
		return err
	}
}
