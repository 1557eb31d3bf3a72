package discrepancy

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	// ErrCaseIsNotConstructed indicates that a Case was not created through
	// NewCase or RestoreCase.
	ErrCaseIsNotConstructed = errors.New("Case must be created via NewCase or RestoreCase constructor")

	// ErrCaseAlreadyResolved is the sentinel for operations against a case
	// that has already been resolved.
	ErrCaseAlreadyResolved = errors.New("discrepancy case already resolved")
)

// Shortage is one line item's gap between ordered and received quantities,
// captured at reconciliation time. The description is copied from the line
// item so the case stays readable even if the order is later revised.
type Shortage struct {
	ItemID           kernel.UUID
	Description      string
	QuantityOrdered  int
	QuantityReceived int
}

// Missing returns how many units are outstanding.
func (s Shortage) Missing() int {
	return s.QuantityOrdered - s.QuantityReceived
}

// Case is the discrepancy-case aggregate root. One open case exists per order
// at a time; re-reconciliation updates the open case's shortages, and a
// shortage found after resolution opens a fresh case.
type Case struct {
	id         kernel.UUID
	orderID    kernel.UUID
	status     Status
	shortages  []Shortage
	reportedAt time.Time
	reportedBy string

	resolutionAction ResolutionAction
	resolutionNotes  string
	resolvedBy       string
	resolvedAt       *time.Time

	version int

	guard guard.ConstructorGuard
}

// NewCase opens a discrepancy case in Reported status with the shortages
// found during a reconciliation pass. At least one shortage is required:
// a complete receipt never opens a case.
func NewCase(
	id kernel.UUID,
	orderID kernel.UUID,
	shortages []Shortage,
	reportedBy string,
	reportedAt time.Time,
) (*Case, error) {
	c := &Case{
		status:     Reported,
		reportedAt: reportedAt,
		reportedBy: reportedBy,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setShortages(shortages),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCase reconstructs a case from persistence, including its version for
// optimistic concurrency.
func RestoreCase(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	shortages []Shortage,
	reportedBy string,
	reportedAt time.Time,
	resolutionAction ResolutionAction,
	resolutionNotes string,
	resolvedBy string,
	resolvedAt *time.Time,
	version int,
) (*Case, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}

	c := &Case{
		status:           status,
		reportedAt:       reportedAt,
		reportedBy:       reportedBy,
		resolutionAction: resolutionAction,
		resolutionNotes:  resolutionNotes,
		resolvedBy:       resolvedBy,
		resolvedAt:       resolvedAt,
		version:          version,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setShortages(shortages),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Case was properly constructed.
func (c *Case) Validate() error {
	if c == nil {
		return ErrCaseIsNotConstructed
	}
	return c.guard.Validate(ErrCaseIsNotConstructed)
}

// ID returns the case's unique identifier.
func (c *Case) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order the case belongs to.
func (c *Case) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the case's lifecycle status.
func (c *Case) Status() Status {
	return c.status
}

// Shortages returns the recorded per-item shortages.
func (c *Case) Shortages() []Shortage {
	return c.shortages
}

// ReportedAt returns when the case was opened.
func (c *Case) ReportedAt() time.Time {
	return c.reportedAt
}

// ReportedBy returns who ran the reconciliation that opened the case.
func (c *Case) ReportedBy() string {
	return c.reportedBy
}

// ResolutionAction returns how the case was settled. ActionUnknown until the
// case is resolved.
func (c *Case) ResolutionAction() ResolutionAction {
	return c.resolutionAction
}

// ResolutionNotes returns the free-form resolution notes.
func (c *Case) ResolutionNotes() string {
	return c.resolutionNotes
}

// ResolvedBy returns who resolved the case, empty while open.
func (c *Case) ResolvedBy() string {
	return c.resolvedBy
}

// ResolvedAt returns when the case was resolved, nil while open.
func (c *Case) ResolvedAt() *time.Time {
	return c.resolvedAt
}

// Version returns the optimistic-concurrency version loaded from storage.
func (c *Case) Version() int {
	return c.version
}

// IsOpen reports whether the case still awaits resolution.
func (c *Case) IsOpen() bool {
	return c.status == Reported || c.status == UnderReview
}

// UpdateShortages replaces the recorded shortages after a follow-up
// reconciliation pass. Only open cases can be updated.
func (c *Case) UpdateShortages(shortages []Shortage) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsOpen() {
		return ErrCaseAlreadyResolved
	}

	return c.setShortages(shortages)
}

// StartReview moves a reported case into UnderReview. Starting review twice
// is a no-op failure so concurrent pickups surface.
func (c *Case) StartReview() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.status == Resolved {
		return ErrCaseAlreadyResolved
	}
	if c.status != Reported {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("review already started, case is %s", c.status))
	}

	c.status = UnderReview
	return nil
}

// Resolve closes the case with the chosen action. Notes are required: the
// audit trail must say what was agreed with the vendor.
func (c *Case) Resolve(action ResolutionAction, notes, resolvedBy string, at time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.status == Resolved {
		return ErrCaseAlreadyResolved
	}
	if err := action.Validate(); err != nil {
		return err
	}
	if notes == "" {
		return errs.NewValueIsRequiredError("resolutionNotes")
	}

	c.status = Resolved
	c.resolutionAction = action
	c.resolutionNotes = notes
	c.resolvedBy = resolvedBy
	c.resolvedAt = &at
	return nil
}

func (c *Case) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Case) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *Case) setShortages(shortages []Shortage) error {
	if len(shortages) == 0 {
		return errs.NewValueIsRequiredError("shortages")
	}

	for _, shortage := range shortages {
		if err := shortage.ItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("shortages.itemId", err)
		}
		if shortage.QuantityReceived < 0 || shortage.QuantityReceived >= shortage.QuantityOrdered {
			return errs.NewValueIsOutOfRangeError("shortages.quantityReceived",
				shortage.QuantityReceived, 0, shortage.QuantityOrdered-1)
		}
	}

	c.shortages = shortages
	return nil
}
