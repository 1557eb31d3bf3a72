package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a request to record that an in-transit
// shipment physically arrived, with the actual delivery date.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actualDate time.Time
	actor      string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a delivery.
func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	actualDate time.Time,
	actor string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActualDate(actualDate),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the order whose delivery arrived.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActualDate returns when the shipment actually arrived.
func (c ConfirmDeliveryCommand) ActualDate() time.Time {
	return c.actualDate
}

// Actor returns who is confirming the delivery.
func (c ConfirmDeliveryCommand) Actor() string {
	return c.actor
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setActualDate(actualDate time.Time) error {
	if actualDate.IsZero() {
		return errs.NewValueIsRequiredError("actualDate")
	}
	c.actualDate = actualDate
	return nil
}

func (c *ConfirmDeliveryCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
