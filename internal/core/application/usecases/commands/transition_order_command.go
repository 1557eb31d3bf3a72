package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to fire a payload-free workflow
// trigger against an order: submit, the verification and approval decisions,
// resubmit, mark-in-transit, or cancel. Triggers that carry payloads have
// their own commands.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	trigger order.Trigger
	actor   string
	notes   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to fire a workflow trigger.
// Whether the trigger applies to the order's current status, and whether it
// must instead go through its dedicated command, is decided by the domain
// against the loaded order.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	trigger order.Trigger,
	actor string,
	notes string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrigger(trigger),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Trigger returns the workflow trigger to fire.
func (c TransitionOrderCommand) Trigger() order.Trigger {
	return c.trigger
}

// Actor returns who is firing the trigger.
func (c TransitionOrderCommand) Actor() string {
	return c.actor
}

// Notes returns the free-form note for the audit trail, if any.
func (c TransitionOrderCommand) Notes() string {
	return c.notes
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTrigger(trigger order.Trigger) error {
	if err := trigger.Validate(); err != nil {
		return err
	}
	c.trigger = trigger
	return nil
}

func (c *TransitionOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
