package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenDiscrepancyQueryHandler reads the unresolved discrepancy case of an
// order. An order has at most one open case at a time.
type GetOpenDiscrepancyQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenDiscrepancyQueryHandler creates a handler for open-case queries.
// Requires a GORM database connection for query execution.
func NewGetOpenDiscrepancyQueryHandler(db *gorm.DB) GetOpenDiscrepancyQueryHandler {
	return GetOpenDiscrepancyQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// has no unresolved case.
func (h GetOpenDiscrepancyQueryHandler) Handle(
	ctx context.Context,
	query GetOpenDiscrepancyQuery,
) (OpenDiscrepancyResponse, error) {
	if err := query.Validate(); err != nil {
		return OpenDiscrepancyResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, reported_at, reported_by, version
		FROM discrepancy_cases
		WHERE order_id = ? AND status <> ?
	`, query.OrderID().Bytes(), int(discrepancy.Resolved)).Row()

	var (
		response    OpenDiscrepancyResponse
		id, orderID uuid.UUID
		status      int
	)

	err := row.Scan(&id, &orderID, &status, &response.ReportedAt, &response.ReportedBy, &response.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OpenDiscrepancyResponse{}, errs.NewObjectNotFoundError(
				"open discrepancy case for order", query.OrderID().String())
		}
		return OpenDiscrepancyResponse{}, err
	}

	if response.CaseID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OpenDiscrepancyResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return OpenDiscrepancyResponse{}, err
	}
	response.Status = discrepancy.Status(status).String()

	if response.Shortages, err = h.readShortages(ctx, response.CaseID); err != nil {
		return OpenDiscrepancyResponse{}, err
	}

	return response, nil
}

func (h GetOpenDiscrepancyQueryHandler) readShortages(ctx context.Context, caseID kernel.UUID) ([]ShortageResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT item_id, description, quantity_ordered, quantity_received
		FROM discrepancy_shortages
		WHERE case_id = ?
		ORDER BY description, item_id
	`, caseID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shortages := make([]ShortageResponse, 0)
	for rows.Next() {
		var (
			shortage ShortageResponse
			itemID   uuid.UUID
		)

		if err = rows.Scan(
			&itemID, &shortage.Description,
			&shortage.QuantityOrdered, &shortage.QuantityReceived,
		); err != nil {
			return nil, err
		}

		if shortage.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		shortage.Missing = shortage.QuantityOrdered - shortage.QuantityReceived
		shortages = append(shortages, shortage)
	}

	return shortages, rows.Err()
}
