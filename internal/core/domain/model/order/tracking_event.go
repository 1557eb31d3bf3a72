package order

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
)

// TrackingEvent is one append-only audit record of a status or delivery
// sub-state change. Events are never mutated or deleted; together they form
// the audit trail of the order.
type TrackingEvent struct {
	id         kernel.UUID
	occurredAt time.Time
	actor      string
	fromStatus string
	toStatus   string
	notes      string
}

// NewTrackingEvent creates an audit record for a single state change. The
// from/to values are recorded as strings because the log covers both the
// workflow status and the delivery sub-state vocabularies.
func NewTrackingEvent(at time.Time, actor, fromStatus, toStatus, notes string) TrackingEvent {
	return TrackingEvent{
		id:         kernel.NewUUID(),
		occurredAt: at,
		actor:      actor,
		fromStatus: fromStatus,
		toStatus:   toStatus,
		notes:      notes,
	}
}

// ID returns the event's unique identifier.
func (e TrackingEvent) ID() kernel.UUID {
	return e.id
}

// OccurredAt returns when the change happened.
func (e TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Actor returns who performed the change.
func (e TrackingEvent) Actor() string {
	return e.actor
}

// FromStatus returns the state before the change.
func (e TrackingEvent) FromStatus() string {
	return e.fromStatus
}

// ToStatus returns the state after the change.
func (e TrackingEvent) ToStatus() string {
	return e.toStatus
}

// Notes returns the free-form note attached to the change, if any.
func (e TrackingEvent) Notes() string {
	return e.notes
}
