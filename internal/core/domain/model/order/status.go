package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the workflow state of a procurement order. It implements
// a state machine with a fixed transition table; any move not listed in the
// table fails with InvalidTransitionError.
//
// State transitions:
//
//	Draft --submit--> PendingVerification --verify-pass--> PendingApproval --approve--> Approved
//	                        |    |                            |    |
//	                        |    +-verify-reject-hard--> Rejected  +-reject--> Rejected
//	                        +-verify-reject-soft--> ForRevision <--request-revision-+
//	                                                     +-resubmit--> PendingVerification
//
//	Approved --schedule--> ScheduledForDelivery --mark-in-transit--> InTransit
//	InTransit --confirm-delivery--> Delivered --confirm-receipt--> Received
//
//	{Draft, PendingVerification, PendingApproval, Approved} --cancel--> Canceled
//
// Rejected and Canceled are terminal. Received is quasi-terminal: it accepts
// repeated asset-generation operations but no further status transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. The maker is still editing line items,
	// rates, and fees.
	Draft

	// PendingVerification means the order has been submitted and awaits the
	// verifier's check.
	PendingVerification

	// PendingApproval means verification passed and the order awaits the
	// approver's decision.
	PendingApproval

	// Approved means the approver accepted the order. Ordering fields become
	// immutable from this point on.
	Approved

	// ScheduledForDelivery means a delivery has been scheduled with the vendor.
	ScheduledForDelivery

	// InTransit means the shipment is on its way.
	InTransit

	// Delivered means the shipment physically arrived and awaits receipt
	// reconciliation.
	Delivered

	// Received means receipt was confirmed. Quasi-terminal: asset generation
	// remains available, status transitions do not.
	Received

	// ForRevision means a verifier or approver returned the order to the
	// maker for changes.
	ForRevision

	// Rejected means the order was turned down. Terminal.
	Rejected

	// Canceled means the order was withdrawn before delivery began. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Draft:                "Draft",
		PendingVerification:  "PendingVerification",
		PendingApproval:      "PendingApproval",
		Approved:             "Approved",
		ScheduledForDelivery: "ScheduledForDelivery",
		InTransit:            "InTransit",
		Delivered:            "Delivered",
		Received:             "Received",
		ForRevision:          "ForRevision",
		Rejected:             "Rejected",
		Canceled:             "Canceled",
	}
}

// transitionTable is the single source of truth for allowed status moves.
// Triggers that carry payloads (schedule, confirm-delivery, confirm-receipt)
// are still listed here; the aggregate routes them through their dedicated
// operations.
func transitionTable() map[Status]map[Trigger]Status {
	return map[Status]map[Trigger]Status{
		Draft: {
			Submit: PendingVerification,
			Cancel: Canceled,
		},
		PendingVerification: {
			VerifyPass:       PendingApproval,
			VerifyRejectSoft: ForRevision,
			VerifyRejectHard: Rejected,
			Cancel:           Canceled,
		},
		PendingApproval: {
			Approve:         Approved,
			RequestRevision: ForRevision,
			Reject:          Rejected,
			Cancel:          Canceled,
		},
		ForRevision: {
			Resubmit: PendingVerification,
		},
		Approved: {
			Schedule: ScheduledForDelivery,
			Cancel:   Canceled,
		},
		ScheduledForDelivery: {
			MarkInTransit: InTransit,
		},
		InTransit: {
			ConfirmDelivery: Delivered,
		},
		Delivered: {
			ConfirmReceipt: Received,
		},
	}
}

// StatusFromString parses a status name as produced by String. Returns an
// error for unrecognized names and for "Unknown".
func StatusFromString(str string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", str))
}

// Validate checks if the Status value is valid. Unknown (0) and out-of-range
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Apply transitions the status via the given trigger. Returns the next status
// on a valid move, or an InvalidTransitionError when the trigger is not
// allowed from the current status. Re-invoking a trigger from a state where
// it no longer applies is a no-op failure, never a silent success; this is
// what makes concurrent double-submission safe.
func (s Status) Apply(trigger Trigger) (Status, error) {
	next, ok := transitionTable()[s][trigger]
	if !ok {
		return 0, NewInvalidTransitionError(s, trigger)
	}
	return next, nil
}

// CanApply reports whether the trigger is allowed from the current status,
// without performing the transition.
func (s Status) CanApply(trigger Trigger) bool {
	_, ok := transitionTable()[s][trigger]
	return ok
}

// IsTerminal reports whether no further transition is possible. Received is
// quasi-terminal and therefore also reported as terminal here.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0 && s != Unknown
}

// IsEditable reports whether line items, rates, and fees may still change.
// Orders are editable from creation up to the approval decision; once
// Approved, ordering fields are immutable.
func (s Status) IsEditable() bool {
	switch s {
	case Draft, PendingVerification, PendingApproval, ForRevision:
		return true
	default:
		return false
	}
}
