// Package queries contains read-only operations for retrieving procurement
// data. Implements the Query side of the CQRS architecture: handlers read
// straight from the database with raw SQL and return flat response models,
// bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one procurement order in full detail: header,
// totals, delivery state, line items, and the audit event log.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	VendorID         kernel.UUID
	ProjectID        kernel.UUID
	Status           string
	IsRetroactive    bool
	VATRate          decimal.Decimal
	EWTRate          decimal.Decimal
	HandlingFee      decimal.Decimal
	DiscountAmount   decimal.Decimal
	BudgetAllocation *decimal.Decimal
	Subtotal         decimal.Decimal
	VATAmount        decimal.Decimal
	EWTAmount        decimal.Decimal
	NetTotal         decimal.Decimal
	Delivery         DeliveryResponse
	Items            []LineItemResponse
	Events           []TrackingEventResponse
	Version          int
}

// DeliveryResponse is the delivery sub-state portion of an order read model.
type DeliveryResponse struct {
	Status         string
	ScheduledDate  *time.Time
	Method         string
	Location       string
	TrackingNumber string
	ActualDate     *time.Time
}

// LineItemResponse is one line item in an order read model.
type LineItemResponse struct {
	ID               kernel.UUID
	Description      string
	QuantityOrdered  int
	UnitPrice        decimal.Decimal
	QuantityReceived int
	GeneratesAssets  bool
	AssetType        string
	AssetsGenerated  int
}

// TrackingEventResponse is one audit event in an order read model.
type TrackingEventResponse struct {
	ID         kernel.UUID
	OccurredAt time.Time
	Actor      string
	FromStatus string
	ToStatus   string
	Notes      string
}
