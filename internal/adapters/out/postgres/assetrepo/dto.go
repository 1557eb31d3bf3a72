// Package assetrepo provides data transfer objects and mapping functions for
// generated asset persistence. Asset rows are write-once: the repository
// inserts and reads, never updates.
package assetrepo

import (
	"time"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetDTO represents one generated asset row.
type AssetDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	LineItemID  uuid.UUID `gorm:"type:uuid;index"`
	AssetType   string
	UnitCost    decimal.Decimal `gorm:"type:numeric"`
	GeneratedBy string
	GeneratedAt time.Time
}

// TableName specifies the database table name for generated assets.
func (AssetDTO) TableName() string {
	return "generated_assets"
}

// fromDomain converts an asset record to its database representation.
func fromDomain(aggregate *asset.GeneratedAsset) AssetDTO {
	return AssetDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		LineItemID:  aggregate.LineItemID().Bytes(),
		AssetType:   aggregate.AssetType(),
		UnitCost:    aggregate.UnitCost(),
		GeneratedBy: aggregate.GeneratedBy(),
		GeneratedAt: aggregate.GeneratedAt(),
	}
}

// toDomain converts a database DTO back to an asset record.
func toDomain(dto AssetDTO) (*asset.GeneratedAsset, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return nil, err
	}

	return asset.RestoreGeneratedAsset(
		id,
		orderID,
		lineItemID,
		dto.AssetType,
		dto.UnitCost,
		dto.GeneratedBy,
		dto.GeneratedAt,
	)
}
