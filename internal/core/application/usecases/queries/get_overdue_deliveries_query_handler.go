package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/shipment"
	"procurement/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueDeliveriesQueryHandler lists shipments whose scheduled date has
// passed without arriving. The overdue predicate matches
// shipment.Details.IsOverdue: a shipment stops being overdue once it is
// Delivered or Received, while a Partial shipment stays overdue because
// quantities remain outstanding.
type GetOverdueDeliveriesQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

// NewGetOverdueDeliveriesQueryHandler creates a handler for overdue-delivery
// listings. The clock supplies the reference time for the overdue cutoff.
func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB, clock ports.Clock) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Returns an empty slice when nothing is overdue.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
) ([]OverdueDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, vendor_id, project_id, delivery_status,
		       delivery_scheduled_date, delivery_method,
		       delivery_location, delivery_tracking_number
		FROM orders
		WHERE delivery_scheduled_date IS NOT NULL
		  AND delivery_scheduled_date < ?
		  AND delivery_status NOT IN (?, ?)
		ORDER BY delivery_scheduled_date
	`, h.clock.Now(), int(shipment.Delivered), int(shipment.Received)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]OverdueDeliveryResponse, 0)
	for rows.Next() {
		var (
			item             OverdueDeliveryResponse
			id, vendorID     uuid.UUID
			projectID        uuid.UUID
			deliveryStatus   int
			method, location sql.NullString
			trackingNumber   sql.NullString
		)

		if err = rows.Scan(
			&id, &vendorID, &projectID, &deliveryStatus,
			&item.ScheduledDate, &method, &location, &trackingNumber,
		); err != nil {
			return nil, err
		}

		if item.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if item.ProjectID, err = kernel.UUIDFromBytes(projectID[:]); err != nil {
			return nil, err
		}

		item.DeliveryStatus = shipment.Status(deliveryStatus).String()
		item.Method = method.String
		item.Location = location.String
		item.TrackingNumber = trackingNumber.String
		overdue = append(overdue, item)
	}

	return overdue, rows.Err()
}
