package order

import (
	"errors"
	"fmt"

	"procurement/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for rejected status moves. Callers
// classify with errors.Is and should refresh their view of the order before
// informing the user.
var ErrInvalidTransition = errors.New("invalid transition")

// Trigger names an action that moves an order through its workflow. Triggers
// arrive from callers as kebab-case strings ("verify-pass") and are parsed
// through TriggerFromString.
type Trigger int

const (
	// TriggerUnknown represents an invalid or undefined trigger.
	TriggerUnknown Trigger = iota

	// Submit sends a draft to verification.
	Submit

	// VerifyPass passes verification, moving the order to approval.
	VerifyPass

	// VerifyRejectSoft returns the order to the maker for revision.
	VerifyRejectSoft

	// VerifyRejectHard rejects the order outright during verification.
	VerifyRejectHard

	// Approve accepts the order.
	Approve

	// RequestRevision returns the order to the maker from approval.
	RequestRevision

	// Reject turns the order down at approval.
	Reject

	// Resubmit sends a revised order back to verification.
	Resubmit

	// Schedule books a delivery for an approved order. Carries a payload;
	// applied through the aggregate's ScheduleDelivery operation.
	Schedule

	// MarkInTransit records that the shipment left the vendor.
	MarkInTransit

	// ConfirmDelivery records physical arrival. Carries the actual delivery
	// date; applied through the aggregate's ConfirmDelivery operation.
	ConfirmDelivery

	// ConfirmReceipt concludes receipt reconciliation. Applied through the
	// receipt reconciliation flow, never directly.
	ConfirmReceipt

	// Cancel withdraws the order before delivery begins.
	Cancel
)

func getTriggerStrings() map[Trigger]string {
	return map[Trigger]string{
		TriggerUnknown:   "unknown",
		Submit:           "submit",
		VerifyPass:       "verify-pass",
		VerifyRejectSoft: "verify-reject-soft",
		VerifyRejectHard: "verify-reject-hard",
		Approve:          "approve",
		RequestRevision:  "request-revision",
		Reject:           "reject",
		Resubmit:         "resubmit",
		Schedule:         "schedule",
		MarkInTransit:    "mark-in-transit",
		ConfirmDelivery:  "confirm-delivery",
		ConfirmReceipt:   "confirm-receipt",
		Cancel:           "cancel",
	}
}

// TriggerFromString parses a kebab-case trigger name. Returns a
// ValueIsInvalidError for unrecognized names.
func TriggerFromString(s string) (Trigger, error) {
	for trigger, str := range getTriggerStrings() {
		if trigger != TriggerUnknown && str == s {
			return trigger, nil
		}
	}
	return TriggerUnknown, errs.NewValueIsInvalidErrorWithCause("trigger",
		fmt.Errorf("%q is not a recognized trigger", s))
}

// Validate checks if the Trigger value is valid.
func (t Trigger) Validate() error {
	if _, ok := getTriggerStrings()[t]; !ok || t == TriggerUnknown {
		return errs.NewValueIsInvalidErrorWithCause("trigger",
			fmt.Errorf("%d is not a valid trigger", t))
	}
	return nil
}

// String returns the kebab-case name of the trigger. Implements fmt.Stringer.
func (t Trigger) String() string {
	if str, ok := getTriggerStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// RequiresPayload reports whether the trigger carries data beyond actor and
// notes and must therefore go through its dedicated aggregate operation
// rather than the generic Transition entry point.
func (t Trigger) RequiresPayload() bool {
	switch t {
	case Schedule, ConfirmDelivery, ConfirmReceipt:
		return true
	default:
		return false
	}
}

// InvalidTransitionError reports a trigger that is not allowed from the
// order's current status. It carries both so the calling layer can render a
// specific message without re-deriving context.
type InvalidTransitionError struct {
	From    Status
	Trigger Trigger
	OrderID string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// status and trigger.
func NewInvalidTransitionError(from Status, trigger Trigger) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Trigger: trigger}
}

func (e *InvalidTransitionError) Error() string {
	if e.OrderID != "" {
		return fmt.Sprintf("%s: %s is not allowed from %s (order %s)",
			ErrInvalidTransition, e.Trigger, e.From, e.OrderID)
	}
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrInvalidTransition, e.Trigger, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
