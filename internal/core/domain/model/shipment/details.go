package shipment

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrDetailsAreNotConstructed indicates that Details were not created
	// through NewDetails or RestoreDetails.
	ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails or RestoreDetails constructor")
)

// Details is a value object holding the delivery plan and progress of one
// procurement order: the sub-state plus the scheduling and arrival facts
// recorded along the way.
//
// Details is immutable: every transition returns a new value, leaving the
// receiver unchanged. The order aggregate owns the current value.
//
// Business rules:
//   - Scheduling requires a strictly future date (no earlier than tomorrow).
//   - The actual delivery date is recorded once, on delivery confirmation.
//   - Receipt concludes as Received only when every line item arrived in full,
//     otherwise as Partial; a Partial shipment may still become Received after
//     a follow-up delivery closes the gap.
type Details struct {
	status             Status
	scheduledDate      *time.Time
	method             string
	location           string
	trackingNumber     string
	actualDeliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewDetails creates the initial delivery state for a new order: Pending,
// with no schedule recorded.
func NewDetails() Details {
	return Details{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}
}

// RestoreDetails reconstructs delivery state from persistence.
func RestoreDetails(
	status Status,
	scheduledDate *time.Time,
	method string,
	location string,
	trackingNumber string,
	actualDeliveryDate *time.Time,
) (Details, error) {
	if err := status.Validate(); err != nil {
		return Details{}, err
	}

	return Details{
		status:             status,
		scheduledDate:      scheduledDate,
		method:             method,
		location:           location,
		trackingNumber:     trackingNumber,
		actualDeliveryDate: actualDeliveryDate,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Details value was properly constructed.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// Status returns the current delivery sub-state.
func (d Details) Status() Status {
	return d.status
}

// ScheduledDate returns the planned delivery date, nil if not yet scheduled.
func (d Details) ScheduledDate() *time.Time {
	return d.scheduledDate
}

// Method returns the delivery method, empty if not yet scheduled.
func (d Details) Method() string {
	return d.method
}

// Location returns the delivery location, empty if not yet scheduled.
func (d Details) Location() string {
	return d.location
}

// TrackingNumber returns the carrier tracking number, empty if none was given.
func (d Details) TrackingNumber() string {
	return d.trackingNumber
}

// ActualDeliveryDate returns the recorded arrival date, nil until delivery
// is confirmed.
func (d Details) ActualDeliveryDate() *time.Time {
	return d.actualDeliveryDate
}

// Schedule records the delivery plan and moves the sub-state to Scheduled.
//
// The scheduled date must be no earlier than the start of tomorrow relative
// to now: same-day and past dates are rejected. Method and location are
// required; the tracking number is optional.
func (d Details) Schedule(date time.Time, method, location, trackingNumber string, now time.Time) (Details, error) {
	if err := d.Validate(); err != nil {
		return Details{}, err
	}

	if d.status != Pending {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%s is not a valid status to schedule from", d.status))
	}

	if method == "" {
		return Details{}, errs.NewValueIsRequiredError("delivery method")
	}
	if location == "" {
		return Details{}, errs.NewValueIsRequiredError("delivery location")
	}

	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if date.Before(tomorrow) {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("scheduled date",
			fmt.Errorf("%s is not strictly in the future", date.Format("2006-01-02")))
	}

	next := d
	next.status = Scheduled
	next.scheduledDate = &date
	next.method = method
	next.location = location
	next.trackingNumber = trackingNumber
	return next, nil
}

// MarkInTransit moves the sub-state from Scheduled to InTransit.
func (d Details) MarkInTransit() (Details, error) {
	if err := d.Validate(); err != nil {
		return Details{}, err
	}

	if d.status != Scheduled {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%s is not a valid status to mark in transit", d.status))
	}

	next := d
	next.status = InTransit
	return next, nil
}

// ConfirmDelivery moves the sub-state from InTransit to Delivered and records
// the actual delivery date.
func (d Details) ConfirmDelivery(actualDate time.Time) (Details, error) {
	if err := d.Validate(); err != nil {
		return Details{}, err
	}

	if d.status != InTransit {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%s is not a valid status to confirm delivery", d.status))
	}

	next := d
	next.status = Delivered
	next.actualDeliveryDate = &actualDate
	return next, nil
}

// ConcludeReceipt records the outcome of a receipt reconciliation pass:
// Received when every line item arrived in full, Partial otherwise. A Partial
// shipment may conclude again once follow-up deliveries close the gap.
func (d Details) ConcludeReceipt(complete bool) (Details, error) {
	if err := d.Validate(); err != nil {
		return Details{}, err
	}

	if d.status != Delivered && d.status != Partial && d.status != Received {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%s is not a valid status to conclude receipt", d.status))
	}

	next := d
	if complete {
		next.status = Received
	} else {
		next.status = Partial
	}
	return next, nil
}

// IsOverdue reports whether the scheduled date has passed without the
// shipment concluding. This is a derived predicate, never persisted.
func (d Details) IsOverdue(now time.Time) bool {
	if d.scheduledDate == nil {
		return false
	}
	return d.scheduledDate.Before(now) && !d.status.IsConcluded()
}
