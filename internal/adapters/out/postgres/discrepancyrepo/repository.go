package discrepancyrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDiscrepancyRepository implements DiscrepancyRepository using GORM.
type GormDiscrepancyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDiscrepancyRepository creates a new GORM discrepancy repository.
func NewGormDiscrepancyRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscrepancyRepository {
	return &GormDiscrepancyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new discrepancy case with its shortage rows.
func (r *GormDiscrepancyRepository) Add(ctx context.Context, aggregate *discrepancy.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(dto.Shortages) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Shortages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing case conditional on the version it was loaded
// with. Shortage rows are replaced wholesale.
func (r *GormDiscrepancyRepository) Update(ctx context.Context, aggregate *discrepancy.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&CaseDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&CaseDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("discrepancy case", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("discrepancy case", aggregate.ID().String(), loadedVersion)
	}

	if err := r.db.WithContext(ctx).
		Where("case_id = ?", dto.ID).
		Delete(&ShortageDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Shortages) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Shortages).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a case by ID, including its shortage rows.
func (r *GormDiscrepancyRepository) Get(ctx context.Context, id kernel.UUID) (*discrepancy.Case, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discrepancy case", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetOpenByOrder retrieves the order's unresolved case. At most one open
// case exists per order; returns an ObjectNotFoundError when none is open.
func (r *GormDiscrepancyRepository) GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*discrepancy.Case, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CaseDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND status <> ?", orderID.Bytes(), int(discrepancy.Resolved)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open discrepancy case for order", orderID.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

func (r *GormDiscrepancyRepository) load(ctx context.Context, dto CaseDTO) (*discrepancy.Case, error) {
	if err := r.db.WithContext(ctx).
		Order("description, item_id").
		Find(&dto.Shortages, "case_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
