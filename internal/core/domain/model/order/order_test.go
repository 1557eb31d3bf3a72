package order_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/finance"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestItems(t *testing.T) []*order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), "office chairs", 10, decimal.NewFromInt(100), true, "furniture")
	require.NoError(t, err)
	return []*order.LineItem{item}
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(12), decimal.NewFromInt(2),
		decimal.Zero, decimal.Zero, nil, false,
		newTestItems(t))
	require.NoError(t, err)
	return o
}

// advanceTo walks the order through the happy path up to the target status.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	steps := []struct {
		status  order.Status
		advance func() error
	}{
		{order.PendingVerification, func() error { return o.Transition(order.Submit, "maker", "", testNow) }},
		{order.PendingApproval, func() error { return o.Transition(order.VerifyPass, "verifier", "", testNow) }},
		{order.Approved, func() error { return o.Transition(order.Approve, "approver", "", testNow) }},
		{order.ScheduledForDelivery, func() error {
			return o.ScheduleDelivery(testNow.AddDate(0, 0, 3), "courier", "HQ warehouse", "TRK-1", "officer", testNow)
		}},
		{order.InTransit, func() error { return o.Transition(order.MarkInTransit, "officer", "", testNow) }},
		{order.Delivered, func() error { return o.ConfirmDelivery(testNow.AddDate(0, 0, 3), "officer", testNow) }},
	}

	for _, step := range steps {
		if o.Status() == target {
			return
		}
		require.NoError(t, step.advance())
	}
	require.Equal(t, target, o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create draft order with computed totals", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, shipment.Pending, o.Delivery().Status())
		assert.Equal(t, 0, o.Version())
		assert.Empty(t, o.PendingEvents())

		// 10 * 100 at 12% VAT and 2% EWT
		assert.True(t, o.Totals().Subtotal.Equal(decimal.NewFromInt(1000)))
		assert.True(t, o.Totals().VATAmount.Equal(decimal.NewFromInt(120)))
		assert.True(t, o.Totals().EWTAmount.Equal(decimal.NewFromInt(20)))
		assert.True(t, o.Totals().NetTotal.Equal(decimal.NewFromInt(1100)))
	})

	t.Run("should fail without line items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "lineItems")
	})

	t.Run("should fail with invalid vendor", func(t *testing.T) {
		var invalidVendor kernel.UUID

		o, err := order.NewOrder(
			kernel.NewUUID(), invalidVendor, kernel.NewUUID(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false, newTestItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "vendorId")
	})

	t.Run("should fail with negative rate", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(-1), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false, newTestItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with version and stored totals", func(t *testing.T) {
		storedTotals := finance.Totals{
			Subtotal:  decimal.NewFromInt(1000),
			VATAmount: decimal.NewFromInt(120),
			EWTAmount: decimal.NewFromInt(20),
			NetTotal:  decimal.NewFromInt(1100),
		}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Approved, shipment.NewDetails(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, storedTotals, false,
			newTestItems(t), 4)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.Totals().NetTotal.Equal(decimal.NewFromInt(1100)))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Unknown, shipment.NewDetails(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, finance.Totals{}, false,
			newTestItems(t), 0)

		require.Error(t, err)
	})

	t.Run("should fail with negative version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Draft, shipment.NewDetails(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, finance.Totals{}, false,
			newTestItems(t), -1)

		require.Error(t, err)
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("should walk the review path and record events", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.Transition(order.Submit, "maker", "Q1 batch", testNow))
		require.NoError(t, o.Transition(order.VerifyPass, "verifier", "", testNow))
		require.NoError(t, o.Transition(order.Approve, "approver", "within budget", testNow))

		assert.Equal(t, order.Approved, o.Status())

		events := o.PendingEvents()
		require.Len(t, events, 3)
		assert.Equal(t, "Draft", events[0].FromStatus())
		assert.Equal(t, "PendingVerification", events[0].ToStatus())
		assert.Equal(t, "maker", events[0].Actor())
		assert.Equal(t, "Q1 batch", events[0].Notes())
		assert.Equal(t, "PendingApproval", events[2].FromStatus())
		assert.Equal(t, "Approved", events[2].ToStatus())
	})

	t.Run("should route applicable payload triggers to their dedicated operations", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Approved)

		err := o.Transition(order.Schedule, "officer", "", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dedicated operation")
		assert.Equal(t, order.Approved, o.Status())
	})

	t.Run("should report invalid transition for payload triggers fired from the wrong status", func(t *testing.T) {
		o := newDraftOrder(t)

		for _, trigger := range []order.Trigger{order.Schedule, order.ConfirmDelivery, order.ConfirmReceipt} {
			err := o.Transition(trigger, "officer", "", testNow)

			require.Error(t, err, "%s is not legal from Draft", trigger)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Contains(t, err.Error(), o.ID().String())
		}
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should reject invalid move and leave order untouched", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.Transition(order.Approve, "approver", "", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), o.ID().String())
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should advance delivery sub-state on mark-in-transit", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.ScheduledForDelivery)

		require.NoError(t, o.Transition(order.MarkInTransit, "officer", "", testNow))

		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, shipment.InTransit, o.Delivery().Status())
	})

	t.Run("should recompute totals when revised items reach approval again", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Transition(order.Submit, "maker", "", testNow))
		require.NoError(t, o.Transition(order.VerifyRejectSoft, "verifier", "wrong quantity", testNow))

		item, err := order.NewLineItem(
			kernel.NewUUID(), "office chairs", 5, decimal.NewFromInt(100), true, "furniture")
		require.NoError(t, err)
		require.NoError(t, o.UpdateItems([]*order.LineItem{item}))

		require.NoError(t, o.Transition(order.Resubmit, "maker", "", testNow))
		require.NoError(t, o.Transition(order.VerifyPass, "verifier", "", testNow))

		assert.True(t, o.Totals().Subtotal.Equal(decimal.NewFromInt(500)))
		assert.True(t, o.Totals().NetTotal.Equal(decimal.NewFromInt(550)))
	})
}

func TestOrder_ScheduleDelivery(t *testing.T) {
	t.Run("should schedule approved order", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Approved)
		date := testNow.AddDate(0, 0, 5)

		require.NoError(t, o.ScheduleDelivery(date, "courier", "HQ warehouse", "TRK-9", "officer", testNow))

		assert.Equal(t, order.ScheduledForDelivery, o.Status())
		assert.Equal(t, shipment.Scheduled, o.Delivery().Status())
		require.NotNil(t, o.Delivery().ScheduledDate())
		assert.True(t, o.Delivery().ScheduledDate().Equal(date))
		assert.Equal(t, "TRK-9", o.Delivery().TrackingNumber())
	})

	t.Run("should fail before approval", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.ScheduleDelivery(testNow.AddDate(0, 0, 5), "courier", "HQ", "", "officer", testNow)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("should fail with same-day date and not move the status", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Approved)

		err := o.ScheduleDelivery(testNow, "courier", "HQ", "", "officer", testNow)

		require.Error(t, err)
		assert.Equal(t, order.Approved, o.Status())
		assert.Equal(t, shipment.Pending, o.Delivery().Status())
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	o := newDraftOrder(t)
	advanceTo(t, o, order.InTransit)
	actual := testNow.AddDate(0, 0, 4)

	require.NoError(t, o.ConfirmDelivery(actual, "officer", testNow))

	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, shipment.Delivered, o.Delivery().Status())
	require.NotNil(t, o.Delivery().ActualDeliveryDate())
	assert.True(t, o.Delivery().ActualDeliveryDate().Equal(actual))
}

func TestOrder_Receipt(t *testing.T) {
	t.Run("should record quantities and conclude complete receipt", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Delivered)
		itemID := o.Items()[0].ID()

		require.NoError(t, o.SetItemReceived(itemID, 10))
		require.NoError(t, o.ConcludeReceipt(true, "officer", "all present", testNow))

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, shipment.Received, o.Delivery().Status())
		assert.False(t, o.HasShortage())
	})

	t.Run("should conclude partial receipt and absorb follow-up delivery", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Delivered)
		itemID := o.Items()[0].ID()

		require.NoError(t, o.SetItemReceived(itemID, 6))
		require.NoError(t, o.ConcludeReceipt(false, "officer", "4 short", testNow))

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, shipment.Partial, o.Delivery().Status())
		assert.True(t, o.HasShortage())

		// follow-up delivery closes the gap without another workflow transition
		require.NoError(t, o.SetItemReceived(itemID, 10))
		require.NoError(t, o.ConcludeReceipt(true, "officer", "redelivered", testNow.AddDate(0, 0, 2)))

		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, shipment.Received, o.Delivery().Status())
		assert.False(t, o.HasShortage())
	})

	t.Run("should reject receipt before delivery", func(t *testing.T) {
		o := newDraftOrder(t)
		itemID := o.Items()[0].ID()

		err := o.SetItemReceived(itemID, 5)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)

		err = o.ConcludeReceipt(true, "officer", "", testNow)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)

		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, 0, o.Items()[0].QuantityReceived())
		assert.Empty(t, o.PendingEvents())
	})

	t.Run("should reject unknown line item", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Delivered)

		err := o.SetItemReceived(kernel.NewUUID(), 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "object not found")
	})
}

func TestOrder_GenerateFromItem(t *testing.T) {
	receivedOrder := func(t *testing.T) (*order.Order, kernel.UUID) {
		t.Helper()
		o := newDraftOrder(t)
		advanceTo(t, o, order.Delivered)
		itemID := o.Items()[0].ID()
		require.NoError(t, o.SetItemReceived(itemID, 8))
		require.NoError(t, o.ConcludeReceipt(false, "officer", "", testNow))
		return o, itemID
	}

	t.Run("should generate within the received balance", func(t *testing.T) {
		o, itemID := receivedOrder(t)

		require.NoError(t, o.GenerateFromItem(itemID, 5))
		assert.Equal(t, 5, o.Items()[0].AssetsGenerated())

		require.NoError(t, o.GenerateFromItem(itemID, 3))
		assert.Equal(t, 0, o.Items()[0].AvailableForGeneration())
	})

	t.Run("should fail past the balance", func(t *testing.T) {
		o, itemID := receivedOrder(t)
		require.NoError(t, o.GenerateFromItem(itemID, 5))

		err := o.GenerateFromItem(itemID, 4)

		assert.ErrorIs(t, err, order.ErrOverGeneration)
	})

	t.Run("should fail before receipt", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Delivered)

		err := o.GenerateFromItem(o.Items()[0].ID(), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "received order")
	})
}

func TestOrder_UpdateItems(t *testing.T) {
	t.Run("should replace items and recompute totals while editable", func(t *testing.T) {
		o := newDraftOrder(t)
		item, err := order.NewLineItem(
			kernel.NewUUID(), "standing desks", 2, decimal.NewFromInt(400), true, "furniture")
		require.NoError(t, err)

		require.NoError(t, o.UpdateItems([]*order.LineItem{item}))

		assert.True(t, o.Totals().Subtotal.Equal(decimal.NewFromInt(800)))
	})

	t.Run("should fail once approved", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Approved)

		err := o.UpdateItems(newTestItems(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "immutable")
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		o := newDraftOrder(t)

		require.Error(t, o.UpdateItems(nil))
	})
}

func TestOrder_UpdateRates(t *testing.T) {
	t.Run("should recompute totals with new rates", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.UpdateRates(
			decimal.Zero, decimal.Zero,
			decimal.NewFromInt(50), decimal.NewFromInt(30), nil))

		assert.True(t, o.Totals().NetTotal.Equal(decimal.NewFromInt(1020)))
	})

	t.Run("should fail once approved", func(t *testing.T) {
		o := newDraftOrder(t)
		advanceTo(t, o, order.Approved)

		err := o.UpdateRates(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, nil)

		require.Error(t, err)
	})
}

func TestOrder_IsDeliveryOverdue(t *testing.T) {
	o := newDraftOrder(t)
	advanceTo(t, o, order.ScheduledForDelivery)

	assert.False(t, o.IsDeliveryOverdue(testNow))
	assert.True(t, o.IsDeliveryOverdue(testNow.AddDate(0, 0, 10)))

	require.NoError(t, o.Transition(order.MarkInTransit, "officer", "", testNow))
	require.NoError(t, o.ConfirmDelivery(testNow.AddDate(0, 0, 4), "officer", testNow))

	assert.False(t, o.IsDeliveryOverdue(testNow.AddDate(0, 0, 10)))
}

func TestOrder_PendingEvents(t *testing.T) {
	o := newDraftOrder(t)
	require.NoError(t, o.Transition(order.Submit, "maker", "", testNow))
	require.Len(t, o.PendingEvents(), 1)

	o.ClearPendingEvents()

	assert.Empty(t, o.PendingEvents())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero-value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
