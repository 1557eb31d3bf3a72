package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetOpenDiscrepancyQueryIsNotConstructed = errors.New(
	"GetOpenDiscrepancyQuery must be created via NewGetOpenDiscrepancyQuery constructor",
)

// GetOpenDiscrepancyQuery retrieves the unresolved discrepancy case for an
// order, including its shortage lines.
type GetOpenDiscrepancyQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenDiscrepancyQuery creates a query for an order's open case.
func NewGetOpenDiscrepancyQuery(orderID kernel.UUID) (GetOpenDiscrepancyQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOpenDiscrepancyQuery{}, err
	}

	return GetOpenDiscrepancyQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenDiscrepancyQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenDiscrepancyQueryIsNotConstructed)
}

// OrderID returns the order whose open case to fetch.
func (q GetOpenDiscrepancyQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OpenDiscrepancyResponse is the read model of an unresolved discrepancy case.
type OpenDiscrepancyResponse struct {
	CaseID     kernel.UUID
	OrderID    kernel.UUID
	Status     string
	ReportedAt time.Time
	ReportedBy string
	Shortages  []ShortageResponse
	Version    int
}

// ShortageResponse is one short line item within a discrepancy case.
type ShortageResponse struct {
	ItemID           kernel.UUID
	Description      string
	QuantityOrdered  int
	QuantityReceived int
	Missing          int
}
