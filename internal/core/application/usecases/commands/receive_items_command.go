package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrReceiveItemsCommandIsNotConstructed = errors.New(
	"ReceiveItemsCommand must be created via NewReceiveItemsCommand constructor",
)

// ReceiveItemsCommand represents one receipt reconciliation pass: the
// physically counted quantity per line item. Items omitted from the count
// keep their previously recorded quantity.
type ReceiveItemsCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	quantities map[kernel.UUID]int
	actor      string
	notes      string

	guard guard.ConstructorGuard
}

// NewReceiveItemsCommand creates a command to reconcile a delivery against
// the counted quantities. The per-item range checks happen in the domain,
// where the ordered quantities are known.
func NewReceiveItemsCommand(
	orderID kernel.UUID,
	quantities map[kernel.UUID]int,
	actor string,
	notes string,
) (ReceiveItemsCommand, error) {
	cmd := ReceiveItemsCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setQuantities(quantities),
		cmd.setActor(actor),
	); err != nil {
		return ReceiveItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveItemsCommand) Validate() error {
	return c.guard.Validate(ErrReceiveItemsCommandIsNotConstructed)
}

// OrderID returns the order being reconciled.
func (c ReceiveItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Quantities returns the counted quantity per line item ID.
func (c ReceiveItemsCommand) Quantities() map[kernel.UUID]int {
	return c.quantities
}

// Actor returns who ran the count.
func (c ReceiveItemsCommand) Actor() string {
	return c.actor
}

// Notes returns the free-form note for the audit trail, if any.
func (c ReceiveItemsCommand) Notes() string {
	return c.notes
}

func (c *ReceiveItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReceiveItemsCommand) setQuantities(quantities map[kernel.UUID]int) error {
	if len(quantities) == 0 {
		return errs.NewValueIsRequiredError("quantities")
	}
	for itemID := range quantities {
		if err := itemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("quantities.itemId", err)
		}
	}
	c.quantities = quantities
	return nil
}

func (c *ReceiveItemsCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
