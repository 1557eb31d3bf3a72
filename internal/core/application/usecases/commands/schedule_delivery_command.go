package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to book a delivery for an
// approved order: the scheduled date, the delivery method and location, and
// an optional tracking number.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	date           time.Time
	method         string
	location       string
	trackingNumber string
	actor          string

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to book a delivery. The
// strictly-future date rule is enforced by the domain against the handler's
// clock, not here, so the command stays clock-free.
func NewScheduleDeliveryCommand(
	orderID kernel.UUID,
	date time.Time,
	method string,
	location string,
	trackingNumber string,
	actor string,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDate(date),
		cmd.setMethod(method),
		cmd.setLocation(location),
		cmd.setActor(actor),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to schedule.
func (c ScheduleDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the requested delivery date.
func (c ScheduleDeliveryCommand) Date() time.Time {
	return c.date
}

// Method returns the delivery method.
func (c ScheduleDeliveryCommand) Method() string {
	return c.method
}

// Location returns the delivery location.
func (c ScheduleDeliveryCommand) Location() string {
	return c.location
}

// TrackingNumber returns the vendor's tracking number, empty if none.
func (c ScheduleDeliveryCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Actor returns who is scheduling the delivery.
func (c ScheduleDeliveryCommand) Actor() string {
	return c.actor
}

func (c *ScheduleDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ScheduleDeliveryCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}

func (c *ScheduleDeliveryCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	c.method = method
	return nil
}

func (c *ScheduleDeliveryCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *ScheduleDeliveryCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
