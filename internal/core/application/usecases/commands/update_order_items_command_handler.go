package commands

import (
	"context"
)

// UpdateOrderItemsCommandHandler handles pre-approval edits to an order's
// line items and financial parameters. Totals are recomputed by the domain
// on every edit.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemsCommandHandler creates a handler for order edit operations.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command. Loads the order, replaces items and
// rates through the aggregate, and persists the result. Fails once the order
// is approved.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildLineItems(cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.UpdateItems(items); err != nil {
		return err
	}
	if err = aggregate.UpdateRates(
		cmd.VATRate(), cmd.EWTRate(), cmd.HandlingFee(), cmd.DiscountAmount(),
		cmd.BudgetAllocation()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
