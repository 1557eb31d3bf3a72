package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for procurement order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditional on
	// the version the aggregate was loaded with. Returns a
	// VersionConflictError when the row changed underneath the caller, so
	// concurrent workflow actions never silently overwrite each other.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items and delivery sub-state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
