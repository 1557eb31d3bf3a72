// Package discrepancyrepo provides data transfer objects and mapping
// functions for discrepancy case persistence: the case header row plus one
// shortage row per short line item.
package discrepancyrepo

import (
	"time"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CaseDTO represents the database structure for persisting discrepancy cases.
type CaseDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Status     int       `gorm:"index"`
	ReportedAt time.Time
	ReportedBy string

	ResolutionAction int
	ResolutionNotes  string
	ResolvedBy       string
	ResolvedAt       *time.Time

	Version int

	Shortages []ShortageDTO `gorm:"-"`
}

// TableName specifies the database table name for discrepancy cases.
func (CaseDTO) TableName() string {
	return "discrepancy_cases"
}

// ShortageDTO represents one short line item within a case.
type ShortageDTO struct {
	CaseID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description      string
	QuantityOrdered  int
	QuantityReceived int
}

// TableName specifies the database table name for shortage rows.
func (ShortageDTO) TableName() string {
	return "discrepancy_shortages"
}

// fromDomain converts a case aggregate to its database representation.
func fromDomain(aggregate *discrepancy.Case) CaseDTO {
	dto := CaseDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Status:           int(aggregate.Status()),
		ReportedAt:       aggregate.ReportedAt(),
		ReportedBy:       aggregate.ReportedBy(),
		ResolutionAction: int(aggregate.ResolutionAction()),
		ResolutionNotes:  aggregate.ResolutionNotes(),
		ResolvedBy:       aggregate.ResolvedBy(),
		ResolvedAt:       aggregate.ResolvedAt(),
		Version:          aggregate.Version(),
	}

	for _, shortage := range aggregate.Shortages() {
		dto.Shortages = append(dto.Shortages, ShortageDTO{
			CaseID:           dto.ID,
			ItemID:           shortage.ItemID.Bytes(),
			Description:      shortage.Description,
			QuantityOrdered:  shortage.QuantityOrdered,
			QuantityReceived: shortage.QuantityReceived,
		})
	}

	return dto
}

// toDomain converts a database DTO with its shortage rows back to a case
// aggregate using RestoreCase.
func toDomain(dto CaseDTO) (*discrepancy.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shortages := make([]discrepancy.Shortage, 0, len(dto.Shortages))
	for _, shortageDTO := range dto.Shortages {
		itemID, itemErr := kernel.UUIDFromBytes(shortageDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		shortages = append(shortages, discrepancy.Shortage{
			ItemID:           itemID,
			Description:      shortageDTO.Description,
			QuantityOrdered:  shortageDTO.QuantityOrdered,
			QuantityReceived: shortageDTO.QuantityReceived,
		})
	}

	return discrepancy.RestoreCase(
		id,
		orderID,
		discrepancy.Status(dto.Status),
		shortages,
		dto.ReportedBy,
		dto.ReportedAt,
		discrepancy.ResolutionAction(dto.ResolutionAction),
		dto.ResolutionNotes,
		dto.ResolvedBy,
		dto.ResolvedAt,
		dto.Version,
	)
}
