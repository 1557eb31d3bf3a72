package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"GetOverdueDeliveriesQuery must be created via NewGetOverdueDeliveriesQuery constructor",
)

// GetOverdueDeliveriesQuery lists orders whose scheduled delivery date has
// passed without the shipment concluding.
type GetOverdueDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueDeliveriesQuery creates an overdue-deliveries query.
func NewGetOverdueDeliveriesQuery() GetOverdueDeliveriesQuery {
	return GetOverdueDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueDeliveriesQueryIsNotConstructed)
}

// OverdueDeliveryResponse is one overdue shipment in the listing.
type OverdueDeliveryResponse struct {
	OrderID        kernel.UUID
	VendorID       kernel.UUID
	ProjectID      kernel.UUID
	DeliveryStatus string
	ScheduledDate  time.Time
	Method         string
	Location       string
	TrackingNumber string
}
