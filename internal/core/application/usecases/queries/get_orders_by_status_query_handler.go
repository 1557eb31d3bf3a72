package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler lists orders in a given workflow status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order listings. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when no order matches.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, vendor_id, project_id, status, delivery_status,
		       net_total, is_retroactive
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			summary              OrderSummaryResponse
			id, vendorID         uuid.UUID
			projectID            uuid.UUID
			status, deliveryStat int
		)

		if err = rows.Scan(
			&id, &vendorID, &projectID, &status, &deliveryStat,
			&summary.NetTotal, &summary.IsRetroactive,
		); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if summary.ProjectID, err = kernel.UUIDFromBytes(projectID[:]); err != nil {
			return nil, err
		}

		summary.Status = order.Status(status).String()
		summary.DeliveryStatus = shipment.Status(deliveryStat).String()
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
