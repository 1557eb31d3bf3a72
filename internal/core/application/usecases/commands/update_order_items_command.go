package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace an editable
// order's line items and financial parameters. Only allowed while the order
// is pre-approval; the domain enforces the gate.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	vatRate          decimal.Decimal
	ewtRate          decimal.Decimal
	handlingFee      decimal.Decimal
	discountAmount   decimal.Decimal
	budgetAllocation *decimal.Decimal
	items            []LineItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's line
// items and rates.
func NewUpdateOrderItemsCommand(
	orderID kernel.UUID,
	vatRate decimal.Decimal,
	ewtRate decimal.Decimal,
	handlingFee decimal.Decimal,
	discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
	items []LineItemSpec,
) (UpdateOrderItemsCommand, error) {
	cmd := UpdateOrderItemsCommand{
		vatRate:          vatRate,
		ewtRate:          ewtRate,
		handlingFee:      handlingFee,
		discountAmount:   discountAmount,
		budgetAllocation: budgetAllocation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VATRate returns the VAT percentage.
func (c UpdateOrderItemsCommand) VATRate() decimal.Decimal {
	return c.vatRate
}

// EWTRate returns the expanded withholding tax percentage.
func (c UpdateOrderItemsCommand) EWTRate() decimal.Decimal {
	return c.ewtRate
}

// HandlingFee returns the flat handling fee.
func (c UpdateOrderItemsCommand) HandlingFee() decimal.Decimal {
	return c.handlingFee
}

// DiscountAmount returns the flat discount.
func (c UpdateOrderItemsCommand) DiscountAmount() decimal.Decimal {
	return c.discountAmount
}

// BudgetAllocation returns the optional budget allocation, nil if unset.
func (c UpdateOrderItemsCommand) BudgetAllocation() *decimal.Decimal {
	return c.budgetAllocation
}

// Items returns the replacement line items.
func (c UpdateOrderItemsCommand) Items() []LineItemSpec {
	return c.items
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setItems(items []LineItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}
