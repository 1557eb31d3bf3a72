package discrepancy

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a discrepancy case.
//
// State transitions:
//
//	Reported --start-review--> UnderReview --resolve--> Resolved
//	Reported ------------------resolve---------------> Resolved
//
// Resolved is terminal. A shortage found after resolution opens a new case.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Reported is the initial status: shortages were found during receipt
	// reconciliation and recorded.
	Reported

	// UnderReview means someone picked the case up and is working it with
	// the vendor.
	UnderReview

	// Resolved means a resolution action was decided and recorded. Terminal.
	Resolved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Reported:      "Reported",
		UnderReview:   "UnderReview",
		Resolved:      "Resolved",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid discrepancy status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ResolutionAction names how a resolved shortage was settled with the vendor.
type ResolutionAction int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown ResolutionAction = iota

	// ActionReturn means the short or faulty goods go back to the vendor.
	ActionReturn

	// ActionCreditNote means the vendor issues a credit for the missing
	// quantity.
	ActionCreditNote

	// ActionRedelivery means the vendor ships the missing quantity.
	ActionRedelivery

	// ActionWriteOff means the shortage is absorbed and closed without
	// compensation.
	ActionWriteOff
)

func getActionStrings() map[ResolutionAction]string {
	return map[ResolutionAction]string{
		ActionUnknown:    "unknown",
		ActionReturn:     "return",
		ActionCreditNote: "credit-note",
		ActionRedelivery: "redelivery",
		ActionWriteOff:   "write-off",
	}
}

// ActionFromString parses a kebab-case resolution action name. Returns a
// ValueIsInvalidError for unrecognized names.
func ActionFromString(s string) (ResolutionAction, error) {
	for action, str := range getActionStrings() {
		if action != ActionUnknown && str == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("resolutionAction",
		fmt.Errorf("%q is not a recognized resolution action", s))
}

// Validate checks if the ResolutionAction value is valid.
func (a ResolutionAction) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == ActionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("resolutionAction",
			fmt.Errorf("%d is not a valid resolution action", a))
	}
	return nil
}

// String returns the kebab-case name of the action. Implements fmt.Stringer.
func (a ResolutionAction) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}
