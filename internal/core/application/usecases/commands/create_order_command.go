package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new procurement order in
// Draft status. Encapsulates the vendor and project references, the tax and
// fee parameters, and the requested line items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	vendorID         kernel.UUID
	projectID        kernel.UUID
	vatRate          decimal.Decimal
	ewtRate          decimal.Decimal
	handlingFee      decimal.Decimal
	discountAmount   decimal.Decimal
	budgetAllocation *decimal.Decimal
	isRetroactive    bool
	items            []LineItemSpec
	actor            string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a procurement order.
// Validates the identifiers and requires at least one line item; the deeper
// per-item rules are enforced by the domain when the order is built.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	projectID kernel.UUID,
	vatRate decimal.Decimal,
	ewtRate decimal.Decimal,
	handlingFee decimal.Decimal,
	discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
	isRetroactive bool,
	items []LineItemSpec,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		vatRate:          vatRate,
		ewtRate:          ewtRate,
		handlingFee:      handlingFee,
		discountAmount:   discountAmount,
		budgetAllocation: budgetAllocation,
		isRetroactive:    isRetroactive,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
		cmd.setProjectID(projectID),
		cmd.setItems(items),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the vendor reference.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// ProjectID returns the project reference.
func (c CreateOrderCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// VATRate returns the VAT percentage.
func (c CreateOrderCommand) VATRate() decimal.Decimal {
	return c.vatRate
}

// EWTRate returns the expanded withholding tax percentage.
func (c CreateOrderCommand) EWTRate() decimal.Decimal {
	return c.ewtRate
}

// HandlingFee returns the flat handling fee.
func (c CreateOrderCommand) HandlingFee() decimal.Decimal {
	return c.handlingFee
}

// DiscountAmount returns the flat discount.
func (c CreateOrderCommand) DiscountAmount() decimal.Decimal {
	return c.discountAmount
}

// BudgetAllocation returns the optional budget allocation, nil if unset.
func (c CreateOrderCommand) BudgetAllocation() *decimal.Decimal {
	return c.budgetAllocation
}

// IsRetroactive reports whether the order documents a purchase that already
// happened.
func (c CreateOrderCommand) IsRetroactive() bool {
	return c.isRetroactive
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []LineItemSpec {
	return c.items
}

// Actor returns who is creating the order.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setProjectID(projectID kernel.UUID) error {
	if err := projectID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("projectId", err)
	}
	c.projectID = projectID
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItemSpec) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
