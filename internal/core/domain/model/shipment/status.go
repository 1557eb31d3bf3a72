// Package shipment models the delivery sub-state of a procurement order:
// scheduling, transit, arrival, and quantity completeness. The sub-state
// mirrors but is distinct from the order workflow status: an order can be
// workflow-complete (Received) while its shipment remains Partial, because
// Partial reflects quantity completeness, not workflow stage.
package shipment

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the delivery sub-state of an order.
//
// State transitions:
//
//	Pending --> Scheduled --> InTransit --> Delivered --+--> Received
//	                                                    +--> Partial --> Received
//
// Received means every line item arrived in full; Partial means goods arrived
// but at least one line item is short. A Partial shipment moves to Received
// when a follow-up delivery completes the remaining quantities.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial sub-state before any delivery has been scheduled.
	Pending

	// Scheduled indicates a delivery date, method, and location have been set.
	Scheduled

	// InTransit indicates the shipment has left the vendor.
	InTransit

	// Delivered indicates the shipment physically arrived; quantities have not
	// yet been reconciled against the order.
	Delivered

	// Received indicates reconciliation completed with every line item in full.
	Received

	// Partial indicates reconciliation completed with at least one line item
	// short of its ordered quantity.
	Partial
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Scheduled: "Scheduled",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Received:  "Received",
		Partial:   "Partial",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Scheduled: "Scheduled",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Received:  "Received",
		Partial:   "Partial",
	}
}

// Validate checks if the Status value is valid. Unknown (0) and out-of-range
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s))
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

// IsConcluded reports whether the shipment arrived and, if reconciled, was
// reconciled in full. Concluded shipments are excluded from overdue
// detection; Partial shipments are not, since quantities remain outstanding.
func (s Status) IsConcluded() bool {
	return s == Delivered || s == Received
}
