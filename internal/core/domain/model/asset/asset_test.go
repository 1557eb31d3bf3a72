package asset_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/asset"
	"procurement/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratedAsset(t *testing.T) {
	generatedAt := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should create valid asset record", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		itemID := kernel.NewUUID()
		cost := decimal.RequireFromString("1500.00")

		a, err := asset.NewGeneratedAsset(id, orderID, itemID, "it-equipment", cost, "officer", generatedAt)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.LineItemID().IsEqual(itemID))
		assert.Equal(t, "it-equipment", a.AssetType())
		assert.True(t, a.UnitCost().Equal(cost))
		assert.Equal(t, "officer", a.GeneratedBy())
		assert.Equal(t, generatedAt, a.GeneratedAt())
	})

	t.Run("should fail without asset type", func(t *testing.T) {
		a, err := asset.NewGeneratedAsset(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", decimal.NewFromInt(100), "officer", generatedAt)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "assetType")
	})

	t.Run("should fail with negative unit cost", func(t *testing.T) {
		a, err := asset.NewGeneratedAsset(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"furniture", decimal.NewFromInt(-1), "officer", generatedAt)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with invalid references", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := asset.NewGeneratedAsset(
			kernel.NewUUID(), invalidID, invalidID,
			"furniture", decimal.NewFromInt(100), "officer", generatedAt)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "lineItemId")
	})
}

func TestGeneratedAsset_Validate(t *testing.T) {
	var zeroValue asset.GeneratedAsset
	assert.ErrorIs(t, zeroValue.Validate(), asset.ErrAssetIsNotConstructed)

	var nilAsset *asset.GeneratedAsset
	assert.ErrorIs(t, nilAsset.Validate(), asset.ErrAssetIsNotConstructed)
}
