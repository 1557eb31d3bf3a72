package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists order summaries filtered by workflow status.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query from a status name as produced by
// order.Status.String.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the workflow status to filter on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// OrderSummaryResponse is a one-row order listing entry.
type OrderSummaryResponse struct {
	ID             kernel.UUID
	VendorID       kernel.UUID
	ProjectID      kernel.UUID
	Status         string
	DeliveryStatus string
	NetTotal       decimal.Decimal
	IsRetroactive  bool
}
