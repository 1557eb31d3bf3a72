package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/finance"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/shipment"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the procurement order aggregate root. It owns the workflow status,
// the delivery sub-state, the line items, and the computed financial totals,
// and it is the only place where any of them change.
//
// Order maintains these invariants:
//   - Status changes only through the transition table (see Status)
//   - Totals are recomputed, never hand-edited, whenever line items or rates
//     change pre-approval, and again at each approval-seeking transition
//   - Line items' ordering fields are immutable once the order is Approved;
//     received and generated counters keep changing after delivery
//   - Every executed transition appends an audit event
//
// The version field supports optimistic concurrency: repositories persist
// updates conditional on the version read at load time and report a version
// conflict when the row moved underneath the caller.
type Order struct {
	id        kernel.UUID
	vendorID  kernel.UUID
	projectID kernel.UUID

	status   Status
	delivery shipment.Details
	items    []*LineItem

	vatRate          decimal.Decimal
	ewtRate          decimal.Decimal
	handlingFee      decimal.Decimal
	discountAmount   decimal.Decimal
	budgetAllocation *decimal.Decimal
	totals           finance.Totals

	isRetroactive bool
	version       int

	pendingEvents []TrackingEvent

	guard guard.ConstructorGuard
}

// NewOrder creates a procurement order in Draft status with its delivery
// sub-state Pending. Totals are computed immediately from the given line
// items, rates, and fees.
//
// Rates are percentages (12 means 12%). Fees and rates must be non-negative;
// at least one line item is required.
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	projectID kernel.UUID,
	vatRate decimal.Decimal,
	ewtRate decimal.Decimal,
	handlingFee decimal.Decimal,
	discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
	isRetroactive bool,
	items []*LineItem,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		delivery:      shipment.NewDetails(),
		isRetroactive: isRetroactive,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setProjectID(projectID),
		o.setRates(vatRate, ewtRate, handlingFee, discountAmount, budgetAllocation),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recomputeTotals()
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, including
// its version for optimistic concurrency. Totals are restored as stored, not
// recomputed, so the loaded snapshot mirrors the database row.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	projectID kernel.UUID,
	status Status,
	delivery shipment.Details,
	vatRate decimal.Decimal,
	ewtRate decimal.Decimal,
	handlingFee decimal.Decimal,
	discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
	totals finance.Totals,
	isRetroactive bool,
	items []*LineItem,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}

	o := &Order{
		status:        status,
		delivery:      delivery,
		totals:        totals,
		isRetroactive: isRetroactive,
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVendorID(vendorID),
		o.setProjectID(projectID),
		o.setRates(vatRate, ewtRate, handlingFee, discountAmount, budgetAllocation),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one
// of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the vendor reference.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// ProjectID returns the project reference.
func (o *Order) ProjectID() kernel.UUID {
	return o.projectID
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Delivery returns the current delivery sub-state and scheduling facts.
func (o *Order) Delivery() shipment.Details {
	return o.delivery
}

// Items returns the order's line items. The slice must be treated as
// read-only; mutations go through the aggregate's operations.
func (o *Order) Items() []*LineItem {
	return o.items
}

// Item looks up a line item by ID.
func (o *Order) Item(id kernel.UUID) (*LineItem, bool) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// VATRate returns the VAT percentage.
func (o *Order) VATRate() decimal.Decimal {
	return o.vatRate
}

// EWTRate returns the expanded withholding tax percentage.
func (o *Order) EWTRate() decimal.Decimal {
	return o.ewtRate
}

// HandlingFee returns the flat handling fee.
func (o *Order) HandlingFee() decimal.Decimal {
	return o.handlingFee
}

// DiscountAmount returns the flat discount.
func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

// BudgetAllocation returns the optional budget allocation, nil if unset.
func (o *Order) BudgetAllocation() *decimal.Decimal {
	return o.budgetAllocation
}

// Totals returns the current financial snapshot.
func (o *Order) Totals() finance.Totals {
	return o.totals
}

// IsRetroactive reports whether the order documents a purchase that already
// happened.
func (o *Order) IsRetroactive() bool {
	return o.isRetroactive
}

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// PendingEvents returns audit events recorded since the aggregate was loaded.
// Repositories persist and then clear them on save.
func (o *Order) PendingEvents() []TrackingEvent {
	return o.pendingEvents
}

// ClearPendingEvents drops recorded events after they have been persisted.
func (o *Order) ClearPendingEvents() {
	o.pendingEvents = nil
}

// Transition applies a payload-free trigger: submit, the verification and
// approval decisions, resubmit, mark-in-transit, and cancel. Triggers that
// carry payloads (schedule, confirm-delivery, confirm-receipt) must go
// through their dedicated operations; firing one here fails once the
// transition table has confirmed it would otherwise apply.
//
// Entering PendingApproval, or re-entering PendingVerification, recomputes
// totals so they always reflect the latest line items at the point of
// approval-seeking.
func (o *Order) Transition(trigger Trigger, actor, notes string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := trigger.Validate(); err != nil {
		return err
	}

	next, err := o.applyStatus(trigger)
	if err != nil {
		return err
	}

	// The table decides applicability before routing: a payload trigger fired
	// from a status where it is not legal reports an invalid transition, not
	// a routing error.
	if trigger.RequiresPayload() {
		return errs.NewValueIsInvalidErrorWithCause("trigger",
			fmt.Errorf("%s carries a payload and must use its dedicated operation", trigger))
	}

	if trigger == MarkInTransit {
		delivery, deliveryErr := o.delivery.MarkInTransit()
		if deliveryErr != nil {
			return deliveryErr
		}
		o.delivery = delivery
	}

	o.recordTransition(next, actor, notes, now)

	if next == PendingApproval || next == PendingVerification {
		o.recomputeTotals()
	}

	return nil
}

// ScheduleDelivery books a delivery for an approved order: the order moves to
// ScheduledForDelivery and the delivery sub-state to Scheduled. The date must
// be strictly in the future (no earlier than tomorrow relative to now);
// method and location are required, the tracking number optional.
func (o *Order) ScheduleDelivery(date time.Time, method, location, trackingNumber, actor string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.CanApply(Schedule) {
		return o.invalidTransition(Schedule)
	}

	delivery, err := o.delivery.Schedule(date, method, location, trackingNumber, now)
	if err != nil {
		return err
	}

	next, err := o.applyStatus(Schedule)
	if err != nil {
		return err
	}

	o.delivery = delivery
	o.recordTransition(next, actor, "", now)
	return nil
}

// ConfirmDelivery records physical arrival: InTransit becomes Delivered on
// both axes, and the actual delivery date is captured.
func (o *Order) ConfirmDelivery(actualDate time.Time, actor string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.CanApply(ConfirmDelivery) {
		return o.invalidTransition(ConfirmDelivery)
	}

	delivery, err := o.delivery.ConfirmDelivery(actualDate)
	if err != nil {
		return err
	}

	next, err := o.applyStatus(ConfirmDelivery)
	if err != nil {
		return err
	}

	o.delivery = delivery
	o.recordTransition(next, actor, "", now)
	return nil
}

// SetItemReceived records the received quantity for one line item during a
// reconciliation pass. Allowed once the order is Delivered, and again while
// Received to absorb follow-up partial deliveries.
func (o *Order) SetItemReceived(itemID kernel.UUID, quantity int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Delivered && o.status != Received {
		return o.invalidTransition(ConfirmReceipt)
	}

	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("lineItem", itemID.String())
	}

	return item.SetQuantityReceived(quantity)
}

// ConcludeReceipt finishes a reconciliation pass. On the first pass the order
// moves Delivered -> Received; later passes leave the workflow status alone.
// The delivery sub-state concludes as Received when complete is true and
// Partial otherwise, and the change is recorded in the audit trail.
func (o *Order) ConcludeReceipt(complete bool, actor, notes string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch o.status {
	case Delivered:
		delivery, err := o.delivery.ConcludeReceipt(complete)
		if err != nil {
			return err
		}
		next, err := o.applyStatus(ConfirmReceipt)
		if err != nil {
			return err
		}
		o.delivery = delivery
		o.recordTransition(next, actor, notes, now)
	case Received:
		from := o.delivery.Status()
		delivery, err := o.delivery.ConcludeReceipt(complete)
		if err != nil {
			return err
		}
		o.delivery = delivery
		if delivery.Status() != from {
			o.pendingEvents = append(o.pendingEvents,
				NewTrackingEvent(now, actor, from.String(), delivery.Status().String(), notes))
		}
	default:
		return o.invalidTransition(ConfirmReceipt)
	}

	return nil
}

// GenerateFromItem withdraws quantity units from a line item's available
// balance for asset generation. Only valid once the order is Received.
func (o *Order) GenerateFromItem(itemID kernel.UUID, quantity int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Received {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("assets can only be generated from a received order, status is %s", o.status))
	}

	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("lineItem", itemID.String())
	}

	return item.RecordGenerated(quantity)
}

// UpdateItems replaces the order's line items. Only allowed while the order
// is editable (pre-approval); totals are recomputed immediately.
func (o *Order) UpdateItems(items []*LineItem) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.IsEditable() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("line items are immutable once the order is %s", o.status))
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.recomputeTotals()
	return nil
}

// UpdateRates replaces rates, fees, and the budget allocation. Only allowed
// while the order is editable; totals are recomputed immediately.
func (o *Order) UpdateRates(
	vatRate, ewtRate, handlingFee, discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.status.IsEditable() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("rates are immutable once the order is %s", o.status))
	}

	if err := o.setRates(vatRate, ewtRate, handlingFee, discountAmount, budgetAllocation); err != nil {
		return err
	}

	o.recomputeTotals()
	return nil
}

// IsDeliveryOverdue reports whether the scheduled delivery date has passed
// without the shipment concluding. Derived, never persisted.
func (o *Order) IsDeliveryOverdue(now time.Time) bool {
	return o.delivery.IsOverdue(now)
}

// HasShortage reports whether any line item received fewer units than
// ordered.
func (o *Order) HasShortage() bool {
	for _, item := range o.items {
		if item.HasShortage() {
			return true
		}
	}
	return false
}

func (o *Order) applyStatus(trigger Trigger) (Status, error) {
	next, err := o.status.Apply(trigger)
	if err != nil {
		var transitionErr *InvalidTransitionError
		if errors.As(err, &transitionErr) {
			transitionErr.OrderID = o.id.String()
		}
		return 0, err
	}
	return next, nil
}

func (o *Order) invalidTransition(trigger Trigger) error {
	err := NewInvalidTransitionError(o.status, trigger)
	err.OrderID = o.id.String()
	return err
}

func (o *Order) recordTransition(next Status, actor, notes string, now time.Time) {
	o.pendingEvents = append(o.pendingEvents,
		NewTrackingEvent(now, actor, o.status.String(), next.String(), notes))
	o.status = next
}

func (o *Order) recomputeTotals() {
	lines := make([]finance.Line, 0, len(o.items))
	for _, item := range o.items {
		lines = append(lines, finance.Line{
			Quantity:  item.QuantityOrdered(),
			UnitPrice: item.UnitPrice(),
		})
	}
	o.totals = finance.Calculate(lines, o.vatRate, o.ewtRate, o.handlingFee, o.discountAmount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	o.vendorID = id
	return nil
}

func (o *Order) setProjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("projectId", err)
	}
	o.projectID = id
	return nil
}

func (o *Order) setRates(
	vatRate, ewtRate, handlingFee, discountAmount decimal.Decimal,
	budgetAllocation *decimal.Decimal,
) error {
	for name, value := range map[string]decimal.Decimal{
		"vatRate":        vatRate,
		"ewtRate":        ewtRate,
		"handlingFee":    handlingFee,
		"discountAmount": discountAmount,
	} {
		if value.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%s is negative", value))
		}
	}
	if budgetAllocation != nil && budgetAllocation.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("budgetAllocation",
			fmt.Errorf("%s is negative", budgetAllocation))
	}

	o.vatRate = vatRate
	o.ewtRate = ewtRate
	o.handlingFee = handlingFee
	o.discountAmount = discountAmount
	o.budgetAllocation = budgetAllocation
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
