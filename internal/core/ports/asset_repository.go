package ports

import (
	"context"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/kernel"
)

// AssetRepository defines the persistence contract for generated asset
// records. Assets are write-once: there is no update.
type AssetRepository interface {
	// AddBatch persists every asset produced by one generation run.
	AddBatch(ctx context.Context, assets []*asset.GeneratedAsset) error

	// GetByOrder retrieves all assets generated from the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*asset.GeneratedAsset, error)
}
