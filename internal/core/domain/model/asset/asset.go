package asset

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAssetIsNotConstructed indicates that a GeneratedAsset was not created
// through NewGeneratedAsset or RestoreGeneratedAsset.
var ErrAssetIsNotConstructed = errors.New("GeneratedAsset must be created via NewGeneratedAsset or RestoreGeneratedAsset constructor")

// GeneratedAsset is one traceable asset record produced from a received line
// item. The unit cost is copied from the line item at generation time so the
// asset's book value stays fixed even if the order is later amended.
//
// Assets are write-once: they are created by the generation flow and never
// mutated afterwards.
type GeneratedAsset struct {
	id          kernel.UUID
	orderID     kernel.UUID
	lineItemID  kernel.UUID
	assetType   string
	unitCost    decimal.Decimal
	generatedBy string
	generatedAt time.Time

	guard guard.ConstructorGuard
}

// NewGeneratedAsset creates an asset record for one received unit.
func NewGeneratedAsset(
	id kernel.UUID,
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	assetType string,
	unitCost decimal.Decimal,
	generatedBy string,
	generatedAt time.Time,
) (*GeneratedAsset, error) {
	a := &GeneratedAsset{
		generatedBy: generatedBy,
		generatedAt: generatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setLineItemID(lineItemID),
		a.setAssetType(assetType),
		a.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreGeneratedAsset reconstructs an asset record from persistence.
func RestoreGeneratedAsset(
	id kernel.UUID,
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	assetType string,
	unitCost decimal.Decimal,
	generatedBy string,
	generatedAt time.Time,
) (*GeneratedAsset, error) {
	return NewGeneratedAsset(id, orderID, lineItemID, assetType, unitCost, generatedBy, generatedAt)
}

// Validate ensures the GeneratedAsset was properly constructed.
func (a *GeneratedAsset) Validate() error {
	if a == nil {
		return ErrAssetIsNotConstructed
	}
	return a.guard.Validate(ErrAssetIsNotConstructed)
}

// ID returns the asset's unique identifier.
func (a *GeneratedAsset) ID() kernel.UUID {
	return a.id
}

// OrderID returns the procurement order the asset came from.
func (a *GeneratedAsset) OrderID() kernel.UUID {
	return a.orderID
}

// LineItemID returns the line item the asset was generated from.
func (a *GeneratedAsset) LineItemID() kernel.UUID {
	return a.lineItemID
}

// AssetType returns the asset classification copied from the line item.
func (a *GeneratedAsset) AssetType() string {
	return a.assetType
}

// UnitCost returns the per-unit cost captured at generation time.
func (a *GeneratedAsset) UnitCost() decimal.Decimal {
	return a.unitCost
}

// GeneratedBy returns who ran the generation.
func (a *GeneratedAsset) GeneratedBy() string {
	return a.generatedBy
}

// GeneratedAt returns when the asset was generated.
func (a *GeneratedAsset) GeneratedAt() time.Time {
	return a.generatedAt
}

func (a *GeneratedAsset) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *GeneratedAsset) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	a.orderID = id
	return nil
}

func (a *GeneratedAsset) setLineItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lineItemId", err)
	}
	a.lineItemID = id
	return nil
}

func (a *GeneratedAsset) setAssetType(assetType string) error {
	if assetType == "" {
		return errs.NewValueIsRequiredError("assetType")
	}
	a.assetType = assetType
	return nil
}

func (a *GeneratedAsset) setUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("unitCost")
	}
	a.unitCost = cost
	return nil
}
