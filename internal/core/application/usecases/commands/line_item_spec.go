package commands

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// LineItemSpec describes one requested line item as it arrives from the
// caller. Handlers turn specs into domain line items, which is where the
// real validation lives; identifiers are minted at that point.
type LineItemSpec struct {
	Description     string
	Quantity        int
	UnitPrice       decimal.Decimal
	GeneratesAssets bool
	AssetType       string
}

// buildLineItems converts specs into freshly identified domain line items.
func buildLineItems(specs []LineItemSpec) ([]*order.LineItem, error) {
	items := make([]*order.LineItem, 0, len(specs))
	for _, spec := range specs {
		item, err := order.NewLineItem(
			kernel.NewUUID(),
			spec.Description,
			spec.Quantity,
			spec.UnitPrice,
			spec.GeneratesAssets,
			spec.AssetType,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
