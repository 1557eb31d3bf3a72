package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/shipment"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order in full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Items, err = h.readItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.Events, err = h.readEvents(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readHeader(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id, vendor_id, project_id, status, is_retroactive,
			vat_rate, ewt_rate, handling_fee, discount_amount, budget_allocation,
			subtotal, vat_amount, ewt_amount, net_total,
			delivery_status, delivery_scheduled_date, delivery_method,
			delivery_location, delivery_tracking_number, delivery_actual_date,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		response              GetOrderQueryResponse
		id, vendorID          uuid.UUID
		projectID             uuid.UUID
		status                int
		deliveryStatus        int
		budgetAllocation      decimal.NullDecimal
		method, location      sql.NullString
		trackingNumber        sql.NullString
		scheduledDate, actual sql.NullTime
	)

	err := row.Scan(
		&id, &vendorID, &projectID, &status, &response.IsRetroactive,
		&response.VATRate, &response.EWTRate, &response.HandlingFee,
		&response.DiscountAmount, &budgetAllocation,
		&response.Subtotal, &response.VATAmount, &response.EWTAmount, &response.NetTotal,
		&deliveryStatus, &scheduledDate, &method, &location, &trackingNumber, &actual,
		&response.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ProjectID, err = kernel.UUIDFromBytes(projectID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Status = order.Status(status).String()
	if budgetAllocation.Valid {
		response.BudgetAllocation = &budgetAllocation.Decimal
	}

	response.Delivery = DeliveryResponse{
		Status:         shipment.Status(deliveryStatus).String(),
		Method:         method.String,
		Location:       location.String,
		TrackingNumber: trackingNumber.String,
	}
	if scheduledDate.Valid {
		response.Delivery.ScheduledDate = &scheduledDate.Time
	}
	if actual.Valid {
		response.Delivery.ActualDate = &actual.Time
	}

	return response, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]LineItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, description, quantity_ordered, unit_price,
			quantity_received, generates_assets, asset_type, assets_generated
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY description, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemResponse, 0)
	for rows.Next() {
		var (
			item      LineItemResponse
			id        uuid.UUID
			assetType sql.NullString
		)

		if err = rows.Scan(
			&id, &item.Description, &item.QuantityOrdered, &item.UnitPrice,
			&item.QuantityReceived, &item.GeneratesAssets, &assetType,
			&item.AssetsGenerated,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.AssetType = assetType.String
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readEvents(ctx context.Context, orderID kernel.UUID) ([]TrackingEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, occurred_at, actor, from_status, to_status, notes
		FROM order_tracking_events
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var (
			event TrackingEventResponse
			id    uuid.UUID
			notes sql.NullString
		)

		if err = rows.Scan(
			&id, &event.OccurredAt, &event.Actor,
			&event.FromStatus, &event.ToStatus, &notes,
		); err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		event.Notes = notes.String
		events = append(events, event)
	}

	return events, rows.Err()
}
