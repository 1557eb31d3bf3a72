package commands

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrGenerateAssetsCommandIsNotConstructed = errors.New(
	"GenerateAssetsCommand must be created via NewGenerateAssetsCommand constructor",
)

// GenerateAssetsCommand represents a request to generate asset records from
// a received order's line items.
type GenerateAssetsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	selections []services.GenerationSelection
	actor      string

	guard guard.ConstructorGuard
}

// NewGenerateAssetsCommand creates a command to generate assets. The balance
// checks happen in the domain against the loaded order; this constructor
// rejects only structurally bad input.
func NewGenerateAssetsCommand(
	orderID kernel.UUID,
	selections []services.GenerationSelection,
	actor string,
) (GenerateAssetsCommand, error) {
	cmd := GenerateAssetsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSelections(selections),
		cmd.setActor(actor),
	); err != nil {
		return GenerateAssetsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateAssetsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateAssetsCommandIsNotConstructed)
}

// OrderID returns the order to generate assets from.
func (c GenerateAssetsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selections returns the per-item generation quantities.
func (c GenerateAssetsCommand) Selections() []services.GenerationSelection {
	return c.selections
}

// Actor returns who is running the generation.
func (c GenerateAssetsCommand) Actor() string {
	return c.actor
}

func (c *GenerateAssetsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *GenerateAssetsCommand) setSelections(selections []services.GenerationSelection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("selections")
	}
	for _, selection := range selections {
		if err := selection.ItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("selections.itemId", err)
		}
		if selection.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("selections.quantity",
				fmt.Errorf("%d is not greater than 0", selection.Quantity))
		}
	}
	c.selections = selections
	return nil
}

func (c *GenerateAssetsCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
