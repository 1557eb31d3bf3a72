package ports

import (
	"context"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
)

// DiscrepancyRepository defines the persistence contract for discrepancy
// cases.
type DiscrepancyRepository interface {
	// Add persists a new discrepancy case.
	Add(ctx context.Context, aggregate *discrepancy.Case) error

	// Update persists changes to an existing case, conditional on the
	// version the case was loaded with.
	Update(ctx context.Context, aggregate *discrepancy.Case) error

	// Get retrieves a case by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*discrepancy.Case, error)

	// GetOpenByOrder retrieves the order's open case (Reported or
	// UnderReview). At most one open case exists per order; returns an
	// ObjectNotFoundError when the order has none.
	GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*discrepancy.Case, error)
}
