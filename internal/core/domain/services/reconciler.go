package services

import (
	"time"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/shipment"
	"procurement/internal/pkg/errs"
)

// ItemReconciliation is one line item's outcome from a reconciliation pass.
type ItemReconciliation struct {
	ItemID           kernel.UUID
	Description      string
	QuantityOrdered  int
	QuantityReceived int
	Status           order.ReceiptStatus
}

// ReconciliationResult summarizes a reconciliation pass: the concluded
// delivery sub-state, every item's receipt outcome, and the shortages that
// need a discrepancy case.
type ReconciliationResult struct {
	OrderID        kernel.UUID
	DeliveryStatus shipment.Status
	Items          []ItemReconciliation
	Shortages      []discrepancy.Shortage
}

// HasShortages reports whether the pass found any item short.
func (r ReconciliationResult) HasShortages() bool {
	return len(r.Shortages) > 0
}

// ReceiptReconciler is a domain service that applies a receipt count against
// an order and derives the delivery conclusion.
//
// Key responsibilities:
//   - Validating every reported quantity before applying any of them
//   - Recording received quantities on the order's line items
//   - Concluding the order's delivery sub-state (Received or Partial)
//   - Reporting shortages for discrepancy-case handling
//
// Business rules:
//   - Reconciliation runs once the order is Delivered, and again while
//     Received to absorb follow-up partial deliveries
//   - Quantities above the ordered amount fail, they are never clamped
//   - Items omitted from the count keep their previously recorded quantity
//   - Validation is all-or-nothing: one bad quantity rejects the whole pass
//     and leaves the order untouched
type ReceiptReconciler struct{}

// NewReceiptReconciler creates a new ReceiptReconciler instance.
func NewReceiptReconciler() ReceiptReconciler {
	return ReceiptReconciler{}
}

// Reconcile applies the reported quantities to the order, concludes the
// delivery sub-state, and returns the per-item outcome with any shortages.
// The map is keyed by line item ID; omitted items are left as previously
// recorded.
func (r ReceiptReconciler) Reconcile(
	o *order.Order,
	quantities map[kernel.UUID]int,
	actor, notes string,
	now time.Time,
) (ReconciliationResult, error) {
	if err := o.Validate(); err != nil {
		return ReconciliationResult{}, err
	}
	if o.Status() != order.Delivered && o.Status() != order.Received {
		err := order.NewInvalidTransitionError(o.Status(), order.ConfirmReceipt)
		err.OrderID = o.ID().String()
		return ReconciliationResult{}, err
	}
	if len(quantities) == 0 {
		return ReconciliationResult{}, errs.NewValueIsRequiredError("quantities")
	}

	if err := r.validate(o, quantities); err != nil {
		return ReconciliationResult{}, err
	}

	for itemID, quantity := range quantities {
		if err := o.SetItemReceived(itemID, quantity); err != nil {
			return ReconciliationResult{}, err
		}
	}

	complete := !o.HasShortage()
	if err := o.ConcludeReceipt(complete, actor, notes, now); err != nil {
		return ReconciliationResult{}, err
	}

	return r.buildResult(o), nil
}

// validate checks every reported quantity against its line item without
// mutating anything, so a failing pass leaves the order exactly as loaded.
func (r ReceiptReconciler) validate(o *order.Order, quantities map[kernel.UUID]int) error {
	for itemID, quantity := range quantities {
		item, ok := o.Item(itemID)
		if !ok {
			return errs.NewObjectNotFoundError("lineItem", itemID.String())
		}
		if quantity < 0 || quantity > item.QuantityOrdered() {
			return errs.NewValueIsOutOfRangeError("quantityReceived",
				quantity, 0, item.QuantityOrdered())
		}
		if quantity < item.AssetsGenerated() {
			return errs.NewValueIsOutOfRangeError("quantityReceived",
				quantity, item.AssetsGenerated(), item.QuantityOrdered())
		}
	}
	return nil
}

func (r ReceiptReconciler) buildResult(o *order.Order) ReconciliationResult {
	result := ReconciliationResult{
		OrderID:        o.ID(),
		DeliveryStatus: o.Delivery().Status(),
	}

	for _, item := range o.Items() {
		result.Items = append(result.Items, ItemReconciliation{
			ItemID:           item.ID(),
			Description:      item.Description(),
			QuantityOrdered:  item.QuantityOrdered(),
			QuantityReceived: item.QuantityReceived(),
			Status:           item.ReceiptStatus(),
		})

		if item.HasShortage() {
			result.Shortages = append(result.Shortages, discrepancy.Shortage{
				ItemID:           item.ID(),
				Description:      item.Description(),
				QuantityOrdered:  item.QuantityOrdered(),
				QuantityReceived: item.QuantityReceived(),
			})
		}
	}

	return result
}
