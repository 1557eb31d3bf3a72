package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening a new
// procurement order. The order starts in Draft with its totals computed from
// the requested line items and rates.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the line items and the aggregate, then persists them in one
// transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildLineItems(cmd.Items())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.VendorID(), cmd.ProjectID(),
		cmd.VATRate(), cmd.EWTRate(), cmd.HandlingFee(), cmd.DiscountAmount(),
		cmd.BudgetAllocation(), cmd.IsRetroactive(), items)
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
