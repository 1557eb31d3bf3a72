package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed indicates that a LineItem was not created
	// through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem constructor")

	// ErrOverGeneration is the sentinel for asset-generation requests that
	// exceed the item's available (received minus already generated) quantity.
	ErrOverGeneration = errors.New("over generation")

	// ErrItemNotEligible is the sentinel for asset-generation requests against
	// line items that do not generate assets.
	ErrItemNotEligible = errors.New("line item not eligible for asset generation")
)

// OverGenerationError reports an asset-generation request that would push
// assets_generated_count past quantity_received. Carries the requested and
// available quantities so the calling layer can render a specific message.
type OverGenerationError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

// NewOverGenerationError creates an OverGenerationError for the given item.
func NewOverGenerationError(itemID kernel.UUID, requested, available int) *OverGenerationError {
	return &OverGenerationError{ItemID: itemID, Requested: requested, Available: available}
}

func (e *OverGenerationError) Error() string {
	return fmt.Sprintf("%s: item %s, requested %d, available %d",
		ErrOverGeneration, e.ItemID, e.Requested, e.Available)
}

func (e *OverGenerationError) Unwrap() error {
	return ErrOverGeneration
}

// NotEligibleError reports an asset-generation request against an item whose
// generates-assets flag is off.
type NotEligibleError struct {
	ItemID kernel.UUID
}

// NewNotEligibleError creates a NotEligibleError for the given item.
func NewNotEligibleError(itemID kernel.UUID) *NotEligibleError {
	return &NotEligibleError{ItemID: itemID}
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: item %s", ErrItemNotEligible, e.ItemID)
}

func (e *NotEligibleError) Unwrap() error {
	return ErrItemNotEligible
}

// ReceiptStatus is the per-item delivery completeness derived from received
// versus ordered quantities. It is always derived, never stored.
type ReceiptStatus int

const (
	// ReceiptPending means nothing has been received yet.
	ReceiptPending ReceiptStatus = iota

	// ReceiptPartial means some but not all of the ordered quantity arrived.
	ReceiptPartial

	// ReceiptComplete means the full ordered quantity arrived.
	ReceiptComplete
)

// String returns the human-readable name of the receipt status.
func (s ReceiptStatus) String() string {
	switch s {
	case ReceiptPartial:
		return "Partial"
	case ReceiptComplete:
		return "Complete"
	default:
		return "Pending"
	}
}

// LineItem is one ordered good or service within a procurement order.
//
// Invariants, enforced at every mutation:
//   - quantityOrdered > 0 and unitPrice >= 0, fixed after construction
//   - 0 <= quantityReceived <= quantityOrdered
//   - 0 <= assetsGenerated <= quantityReceived
//   - assetType is set exactly when generatesAssets is true
//
// Ordering fields (description, quantity, price, asset eligibility) become
// immutable once the owning order is approved; quantityReceived and
// assetsGenerated continue to change after delivery.
type LineItem struct {
	id               kernel.UUID
	description      string
	quantityOrdered  int
	unitPrice        decimal.Decimal
	quantityReceived int
	generatesAssets  bool
	assetType        string
	assetsGenerated  int

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for a new or edited order. Received and
// generated counters start at zero.
func NewLineItem(
	id kernel.UUID,
	description string,
	quantityOrdered int,
	unitPrice decimal.Decimal,
	generatesAssets bool,
	assetType string,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setDescription(description),
		item.setQuantityOrdered(quantityOrdered),
		item.setUnitPrice(unitPrice),
		item.setAssetEligibility(generatesAssets, assetType),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistence, including its
// post-delivery counters. The counter invariants are re-checked so corrupted
// rows surface on load rather than on the next mutation.
func RestoreLineItem(
	id kernel.UUID,
	description string,
	quantityOrdered int,
	unitPrice decimal.Decimal,
	quantityReceived int,
	generatesAssets bool,
	assetType string,
	assetsGenerated int,
) (*LineItem, error) {
	item, err := NewLineItem(id, description, quantityOrdered, unitPrice, generatesAssets, assetType)
	if err != nil {
		return nil, err
	}

	if quantityReceived < 0 || quantityReceived > quantityOrdered {
		return nil, errs.NewValueIsOutOfRangeError("quantityReceived", quantityReceived, 0, quantityOrdered)
	}
	if assetsGenerated < 0 || assetsGenerated > quantityReceived {
		return nil, errs.NewValueIsOutOfRangeError("assetsGenerated", assetsGenerated, 0, quantityReceived)
	}

	item.quantityReceived = quantityReceived
	item.assetsGenerated = assetsGenerated
	return item, nil
}

// Validate ensures the LineItem was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// IsEqual compares two line items by identity.
func (li *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && li.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// Description returns the human-readable description of the good or service.
func (li *LineItem) Description() string {
	return li.description
}

// QuantityOrdered returns the ordered quantity.
func (li *LineItem) QuantityOrdered() int {
	return li.quantityOrdered
}

// UnitPrice returns the agreed price per unit.
func (li *LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// QuantityReceived returns the quantity received so far.
func (li *LineItem) QuantityReceived() int {
	return li.quantityReceived
}

// GeneratesAssets reports whether received units of this item become
// individual asset records.
func (li *LineItem) GeneratesAssets() bool {
	return li.generatesAssets
}

// AssetType returns the asset classification used when generating assets
// from this item. Empty when GeneratesAssets is false.
func (li *LineItem) AssetType() string {
	return li.assetType
}

// AssetsGenerated returns how many asset records have been generated from
// this item so far.
func (li *LineItem) AssetsGenerated() int {
	return li.assetsGenerated
}

// Subtotal returns quantity * unit price, rounded to 2 decimal places.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantityOrdered))).Round(2)
}

// ReceiptStatus derives the per-item completeness: Complete when received
// equals ordered, Partial when something but not everything arrived, Pending
// when nothing has.
func (li *LineItem) ReceiptStatus() ReceiptStatus {
	switch {
	case li.quantityReceived == li.quantityOrdered:
		return ReceiptComplete
	case li.quantityReceived > 0:
		return ReceiptPartial
	default:
		return ReceiptPending
	}
}

// HasShortage reports whether fewer units were received than ordered.
func (li *LineItem) HasShortage() bool {
	return li.quantityReceived < li.quantityOrdered
}

// SetQuantityReceived records the received quantity from a reconciliation
// pass. Values outside [0, quantityOrdered] are a validation error, not
// silently clamped. The quantity may not drop below what has already been
// converted into assets.
func (li *LineItem) SetQuantityReceived(quantity int) error {
	if err := li.Validate(); err != nil {
		return err
	}

	if quantity < 0 || quantity > li.quantityOrdered {
		return errs.NewValueIsOutOfRangeError("quantityReceived", quantity, 0, li.quantityOrdered)
	}
	if quantity < li.assetsGenerated {
		return errs.NewValueIsOutOfRangeError("quantityReceived", quantity, li.assetsGenerated, li.quantityOrdered)
	}

	li.quantityReceived = quantity
	return nil
}

// AvailableForGeneration returns how many received units have not yet been
// converted into asset records.
func (li *LineItem) AvailableForGeneration() int {
	return li.quantityReceived - li.assetsGenerated
}

// RecordGenerated withdraws quantity units from the item's available balance.
// Fails with NotEligibleError when the item does not generate assets, and
// with OverGenerationError when the requested quantity is not in
// (0, available]. Generation is incremental: later calls succeed as long as
// the balance allows.
func (li *LineItem) RecordGenerated(quantity int) error {
	if err := li.Validate(); err != nil {
		return err
	}

	if !li.generatesAssets {
		return NewNotEligibleError(li.id)
	}

	available := li.AvailableForGeneration()
	if quantity <= 0 || quantity > available {
		return NewOverGenerationError(li.id, quantity, available)
	}

	li.assetsGenerated += quantity
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	li.description = description
	return nil
}

func (li *LineItem) setQuantityOrdered(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityOrdered",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantityOrdered = quantity
	return nil
}

func (li *LineItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", price))
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setAssetEligibility(generatesAssets bool, assetType string) error {
	if generatesAssets && assetType == "" {
		return errs.NewValueIsRequiredError("assetType")
	}
	if !generatesAssets && assetType != "" {
		return errs.NewValueIsInvalidErrorWithCause("assetType",
			errors.New("asset type set on an item that does not generate assets"))
	}
	li.generatesAssets = generatesAssets
	li.assetType = assetType
	return nil
}
