// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between the domain model and the
// relational schema: the order header row, its line item rows, and the
// append-only tracking event rows.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/finance"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Delivery sub-state is flattened into delivery_* columns; line items and
// tracking events live in their own tables and are managed explicitly by the
// repository rather than through GORM associations.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID      uuid.UUID `gorm:"type:uuid;index"`
	ProjectID     uuid.UUID `gorm:"type:uuid;index"`
	Status        int       `gorm:"index"`
	IsRetroactive bool

	VATRate          decimal.Decimal  `gorm:"type:numeric"`
	EWTRate          decimal.Decimal  `gorm:"type:numeric"`
	HandlingFee      decimal.Decimal  `gorm:"type:numeric"`
	DiscountAmount   decimal.Decimal  `gorm:"type:numeric"`
	BudgetAllocation *decimal.Decimal `gorm:"type:numeric"`

	Subtotal  decimal.Decimal `gorm:"type:numeric"`
	VATAmount decimal.Decimal `gorm:"type:numeric"`
	EWTAmount decimal.Decimal `gorm:"type:numeric"`
	NetTotal  decimal.Decimal `gorm:"type:numeric"`

	DeliveryStatus         int `gorm:"index"`
	DeliveryScheduledDate  *time.Time
	DeliveryMethod         string
	DeliveryLocation       string
	DeliveryTrackingNumber string
	DeliveryActualDate     *time.Time

	Version int

	Items  []ItemDTO          `gorm:"-"`
	Events []TrackingEventDTO `gorm:"-"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Description      string
	QuantityOrdered  int
	UnitPrice        decimal.Decimal `gorm:"type:numeric"`
	QuantityReceived int
	GeneratesAssets  bool
	AssetType        string
	AssetsGenerated  int
}

// TableName specifies the database table name for line item rows.
func (ItemDTO) TableName() string {
	return "order_line_items"
}

// TrackingEventDTO represents one audit event row. Events are insert-only;
// the repository never updates or deletes them.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt time.Time
	Actor      string
	FromStatus string
	ToStatus   string
	Notes      string
}

// TableName specifies the database table name for tracking event rows.
func (TrackingEventDTO) TableName() string {
	return "order_tracking_events"
}

// fromDomain converts an order aggregate to its database representation.
// Only the aggregate's pending (not yet persisted) events are carried over;
// previously stored events stay untouched in their table.
func fromDomain(aggregate *order.Order) OrderDTO {
	delivery := aggregate.Delivery()
	totals := aggregate.Totals()

	dto := OrderDTO{
		ID:               aggregate.ID().Bytes(),
		VendorID:         aggregate.VendorID().Bytes(),
		ProjectID:        aggregate.ProjectID().Bytes(),
		Status:           int(aggregate.Status()),
		IsRetroactive:    aggregate.IsRetroactive(),
		VATRate:          aggregate.VATRate(),
		EWTRate:          aggregate.EWTRate(),
		HandlingFee:      aggregate.HandlingFee(),
		DiscountAmount:   aggregate.DiscountAmount(),
		BudgetAllocation: aggregate.BudgetAllocation(),
		Subtotal:         totals.Subtotal,
		VATAmount:        totals.VATAmount,
		EWTAmount:        totals.EWTAmount,
		NetTotal:         totals.NetTotal,

		DeliveryStatus:         int(delivery.Status()),
		DeliveryScheduledDate:  delivery.ScheduledDate(),
		DeliveryMethod:         delivery.Method(),
		DeliveryLocation:       delivery.Location(),
		DeliveryTrackingNumber: delivery.TrackingNumber(),
		DeliveryActualDate:     delivery.ActualDeliveryDate(),

		Version: aggregate.Version(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          dto.ID,
			Description:      item.Description(),
			QuantityOrdered:  item.QuantityOrdered(),
			UnitPrice:        item.UnitPrice(),
			QuantityReceived: item.QuantityReceived(),
			GeneratesAssets:  item.GeneratesAssets(),
			AssetType:        item.AssetType(),
			AssetsGenerated:  item.AssetsGenerated(),
		})
	}

	for _, event := range aggregate.PendingEvents() {
		dto.Events = append(dto.Events, TrackingEventDTO{
			ID:         event.ID().Bytes(),
			OrderID:    dto.ID,
			OccurredAt: event.OccurredAt(),
			Actor:      event.Actor(),
			FromStatus: event.FromStatus(),
			ToStatus:   event.ToStatus(),
			Notes:      event.Notes(),
		})
	}

	return dto
}

// toDomain converts a database DTO with its line item rows back to an order
// aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	projectID, err := kernel.UUIDFromBytes(dto.ProjectID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := shipment.RestoreDetails(
		shipment.Status(dto.DeliveryStatus),
		dto.DeliveryScheduledDate,
		dto.DeliveryMethod,
		dto.DeliveryLocation,
		dto.DeliveryTrackingNumber,
		dto.DeliveryActualDate,
	)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(
			itemID,
			itemDTO.Description,
			itemDTO.QuantityOrdered,
			itemDTO.UnitPrice,
			itemDTO.QuantityReceived,
			itemDTO.GeneratesAssets,
			itemDTO.AssetType,
			itemDTO.AssetsGenerated,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		vendorID,
		projectID,
		order.Status(dto.Status),
		delivery,
		dto.VATRate,
		dto.EWTRate,
		dto.HandlingFee,
		dto.DiscountAmount,
		dto.BudgetAllocation,
		finance.Totals{
			Subtotal:  dto.Subtotal,
			VATAmount: dto.VATAmount,
			EWTAmount: dto.EWTAmount,
			NetTotal:  dto.NetTotal,
		},
		dto.IsRetroactive,
		items,
		dto.Version,
	)
}
