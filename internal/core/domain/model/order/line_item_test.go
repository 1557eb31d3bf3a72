package order_test

import (
	"errors"
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice := decimal.NewFromInt(100)

	t.Run("should create valid line item", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "office chairs", 10, validPrice, true, "furniture")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "office chairs", item.Description())
		assert.Equal(t, 10, item.QuantityOrdered())
		assert.True(t, item.UnitPrice().Equal(validPrice))
		assert.Equal(t, 0, item.QuantityReceived())
		assert.Equal(t, 0, item.AssetsGenerated())
		assert.True(t, item.GeneratesAssets())
		assert.Equal(t, "furniture", item.AssetType())
		assert.Equal(t, order.ReceiptPending, item.ReceiptStatus())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewLineItem(invalidID, "chairs", 10, validPrice, false, "")

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "", 10, validPrice, false, "")

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -5} {
			item, err := order.NewLineItem(validID, "chairs", quantity, validPrice, false, "")

			require.Error(t, err, "quantity %d", quantity)
			assert.Nil(t, item)
		}
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "chairs", 10, decimal.NewFromInt(-1), false, "")

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "free samples", 10, decimal.Zero, false, "")

		require.NoError(t, err)
		assert.True(t, item.Subtotal().Equal(decimal.Zero))
	})

	t.Run("should require asset type when item generates assets", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "laptops", 5, validPrice, true, "")

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "assetType")
	})

	t.Run("should reject asset type on non-generating item", func(t *testing.T) {
		item, err := order.NewLineItem(validID, "consulting", 5, validPrice, false, "service")

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestRestoreLineItem(t *testing.T) {
	validID := kernel.NewUUID()
	price := decimal.NewFromInt(50)

	t.Run("should restore counters", func(t *testing.T) {
		item, err := order.RestoreLineItem(validID, "laptops", 10, price, 7, true, "it-equipment", 3)

		require.NoError(t, err)
		assert.Equal(t, 7, item.QuantityReceived())
		assert.Equal(t, 3, item.AssetsGenerated())
		assert.Equal(t, 4, item.AvailableForGeneration())
		assert.Equal(t, order.ReceiptPartial, item.ReceiptStatus())
	})

	t.Run("should reject received above ordered", func(t *testing.T) {
		_, err := order.RestoreLineItem(validID, "laptops", 10, price, 11, false, "", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantityReceived")
	})

	t.Run("should reject generated above received", func(t *testing.T) {
		_, err := order.RestoreLineItem(validID, "laptops", 10, price, 5, true, "it-equipment", 6)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "assetsGenerated")
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	item, err := order.NewLineItem(kernel.NewUUID(), "cables", 3, decimal.RequireFromString("19.99"), false, "")
	require.NoError(t, err)

	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("59.97")))
}

func TestLineItem_SetQuantityReceived(t *testing.T) {
	newItem := func(t *testing.T) *order.LineItem {
		t.Helper()
		item, err := order.NewLineItem(kernel.NewUUID(), "monitors", 10, decimal.NewFromInt(200), true, "it-equipment")
		require.NoError(t, err)
		return item
	}

	t.Run("should record full receipt", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.SetQuantityReceived(10))
		assert.Equal(t, order.ReceiptComplete, item.ReceiptStatus())
		assert.False(t, item.HasShortage())
	})

	t.Run("should record partial receipt", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.SetQuantityReceived(4))
		assert.Equal(t, order.ReceiptPartial, item.ReceiptStatus())
		assert.True(t, item.HasShortage())
	})

	t.Run("should fail above ordered quantity rather than clamp", func(t *testing.T) {
		item := newItem(t)

		err := item.SetQuantityReceived(11)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantityReceived")
		assert.Equal(t, 0, item.QuantityReceived())
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item := newItem(t)

		require.Error(t, item.SetQuantityReceived(-1))
	})

	t.Run("should allow corrections across passes", func(t *testing.T) {
		item := newItem(t)

		require.NoError(t, item.SetQuantityReceived(4))
		require.NoError(t, item.SetQuantityReceived(10))
		assert.Equal(t, 10, item.QuantityReceived())
	})

	t.Run("should not drop below already generated assets", func(t *testing.T) {
		item := newItem(t)
		require.NoError(t, item.SetQuantityReceived(8))
		require.NoError(t, item.RecordGenerated(5))

		err := item.SetQuantityReceived(3)

		require.Error(t, err)
		assert.Equal(t, 8, item.QuantityReceived())
	})
}

func TestLineItem_RecordGenerated(t *testing.T) {
	newReceivedItem := func(t *testing.T, generates bool) *order.LineItem {
		t.Helper()
		assetType := ""
		if generates {
			assetType = "it-equipment"
		}
		item, err := order.NewLineItem(kernel.NewUUID(), "laptops", 10, decimal.NewFromInt(1500), generates, assetType)
		require.NoError(t, err)
		require.NoError(t, item.SetQuantityReceived(8))
		return item
	}

	t.Run("should generate incrementally up to received", func(t *testing.T) {
		item := newReceivedItem(t, true)

		require.NoError(t, item.RecordGenerated(5))
		assert.Equal(t, 5, item.AssetsGenerated())
		assert.Equal(t, 3, item.AvailableForGeneration())

		require.NoError(t, item.RecordGenerated(3))
		assert.Equal(t, 8, item.AssetsGenerated())
		assert.Equal(t, 0, item.AvailableForGeneration())
	})

	t.Run("should fail when request exceeds available", func(t *testing.T) {
		item := newReceivedItem(t, true)
		require.NoError(t, item.RecordGenerated(5))

		err := item.RecordGenerated(4)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOverGeneration)

		var overErr *order.OverGenerationError
		require.True(t, errors.As(err, &overErr))
		assert.Equal(t, 4, overErr.Requested)
		assert.Equal(t, 3, overErr.Available)
		assert.Equal(t, 5, item.AssetsGenerated(), "failed request must not change the counter")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		item := newReceivedItem(t, true)

		assert.ErrorIs(t, item.RecordGenerated(0), order.ErrOverGeneration)
		assert.ErrorIs(t, item.RecordGenerated(-2), order.ErrOverGeneration)
	})

	t.Run("should fail on non-generating item", func(t *testing.T) {
		item := newReceivedItem(t, false)

		err := item.RecordGenerated(1)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemNotEligible)
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("should fail for zero-value line item", func(t *testing.T) {
		var item order.LineItem

		assert.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})

	t.Run("should fail for nil line item", func(t *testing.T) {
		var item *order.LineItem

		assert.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
