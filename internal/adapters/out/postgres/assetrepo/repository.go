package assetrepo

import (
	"context"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM.
type GormAssetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssetRepository creates a new GORM asset repository.
func NewGormAssetRepository(db *gorm.DB, tracker aggregateTracker) *GormAssetRepository {
	return &GormAssetRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch saves every asset produced by one generation run in a single
// insert. An empty batch is a no-op.
func (r *GormAssetRepository) AddBatch(ctx context.Context, assets []*asset.GeneratedAsset) error {
	if len(assets) == 0 {
		return nil
	}

	dtos := make([]AssetDTO, 0, len(assets))
	for _, a := range assets {
		if err := a.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(a))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, a := range assets {
		r.tracker.TrackAggregate(a.ID(), a)
	}
	return nil
}

// GetByOrder retrieves all assets generated from the given order.
func (r *GormAssetRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*asset.GeneratedAsset, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssetDTO
	if err := r.db.WithContext(ctx).
		Order("generated_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	assets := make([]*asset.GeneratedAsset, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	return assets, nil
}
