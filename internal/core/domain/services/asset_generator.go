package services

import (
	"fmt"
	"time"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// GenerationSelection names a line item and how many asset records to
// generate from it.
type GenerationSelection struct {
	ItemID   kernel.UUID
	Quantity int
}

// AssetGenerator is a domain service that turns received line item units
// into individual asset records.
//
// Key responsibilities:
//   - Validating every selection before generating anything
//   - Withdrawing generated quantities from each item's available balance
//   - Producing one asset record per generated unit, with the unit cost
//     copied from the line item at generation time
//
// Business rules:
//   - Generation requires the order to be Received
//   - Only items flagged as asset-generating are eligible
//   - A selection never exceeds an item's available balance (received minus
//     already generated); partial receipts cap generation at the received
//     quantity
//   - Generation is incremental: later runs draw from whatever balance
//     remains
//   - Validation is all-or-nothing: one bad selection rejects the whole run
//     and generates nothing
type AssetGenerator struct{}

// NewAssetGenerator creates a new AssetGenerator instance.
func NewAssetGenerator() AssetGenerator {
	return AssetGenerator{}
}

// Generate withdraws the selected quantities from the order's line items and
// returns one asset record per generated unit.
func (g AssetGenerator) Generate(
	o *order.Order,
	selections []GenerationSelection,
	actor string,
	now time.Time,
) ([]*asset.GeneratedAsset, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if len(selections) == 0 {
		return nil, errs.NewValueIsRequiredError("selections")
	}

	if err := g.validate(o, selections); err != nil {
		return nil, err
	}

	var assets []*asset.GeneratedAsset
	for _, selection := range selections {
		if err := o.GenerateFromItem(selection.ItemID, selection.Quantity); err != nil {
			return nil, err
		}

		item, _ := o.Item(selection.ItemID)
		for i := 0; i < selection.Quantity; i++ {
			a, err := asset.NewGeneratedAsset(
				kernel.NewUUID(), o.ID(), item.ID(),
				item.AssetType(), item.UnitPrice(), actor, now)
			if err != nil {
				return nil, err
			}
			assets = append(assets, a)
		}
	}

	return assets, nil
}

// validate checks every selection against its line item without mutating
// anything, so a failing run leaves the order exactly as loaded.
func (g AssetGenerator) validate(o *order.Order, selections []GenerationSelection) error {
	if o.Status() != order.Received {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("assets can only be generated from a received order, status is %s", o.Status()))
	}

	seen := make(map[kernel.UUID]bool, len(selections))
	for _, selection := range selections {
		if seen[selection.ItemID] {
			return errs.NewValueIsInvalidErrorWithCause("selections",
				fmt.Errorf("item %s selected more than once", selection.ItemID))
		}
		seen[selection.ItemID] = true

		item, ok := o.Item(selection.ItemID)
		if !ok {
			return errs.NewObjectNotFoundError("lineItem", selection.ItemID.String())
		}
		if !item.GeneratesAssets() {
			return order.NewNotEligibleError(item.ID())
		}

		available := item.AvailableForGeneration()
		if selection.Quantity <= 0 || selection.Quantity > available {
			return order.NewOverGenerationError(item.ID(), selection.Quantity, available)
		}
	}

	return nil
}
