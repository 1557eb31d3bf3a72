package services_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReceivedOrder builds a delivered order and reconciles it with 8 of 10
// chairs and all 5 laptops received. Chairs do not generate assets, laptops
// do.
func newReceivedOrder(t *testing.T) (*order.Order, kernel.UUID, kernel.UUID) {
	t.Helper()
	o, chairsID, laptopsID := newDeliveredOrder(t)

	_, err := services.NewReceiptReconciler().Reconcile(o,
		map[kernel.UUID]int{chairsID: 8, laptopsID: 5}, "officer", "", testNow)
	require.NoError(t, err)

	return o, chairsID, laptopsID
}

func TestAssetGenerator_Generate(t *testing.T) {
	generator := services.NewAssetGenerator()

	t.Run("should generate one record per received unit", func(t *testing.T) {
		o, _, laptopsID := newReceivedOrder(t)

		assets, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 3}},
			"officer", testNow)

		require.NoError(t, err)
		require.Len(t, assets, 3)
		for _, a := range assets {
			assert.True(t, a.OrderID().IsEqual(o.ID()))
			assert.True(t, a.LineItemID().IsEqual(laptopsID))
			assert.Equal(t, "it-equipment", a.AssetType())
			assert.True(t, a.UnitCost().Equal(decimal.NewFromInt(1500)))
			assert.Equal(t, "officer", a.GeneratedBy())
			assert.Equal(t, testNow, a.GeneratedAt())
		}

		laptops, _ := o.Item(laptopsID)
		assert.Equal(t, 3, laptops.AssetsGenerated())
		assert.Equal(t, 2, laptops.AvailableForGeneration())
	})

	t.Run("should generate incrementally across runs", func(t *testing.T) {
		o, _, laptopsID := newReceivedOrder(t)

		_, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 3}}, "officer", testNow)
		require.NoError(t, err)

		assets, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 2}}, "officer", testNow)

		require.NoError(t, err)
		assert.Len(t, assets, 2)

		laptops, _ := o.Item(laptopsID)
		assert.Equal(t, 0, laptops.AvailableForGeneration())
	})

	t.Run("should fail past the available balance", func(t *testing.T) {
		o, _, laptopsID := newReceivedOrder(t)

		_, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 3}}, "officer", testNow)
		require.NoError(t, err)

		assets, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 3}}, "officer", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOverGeneration)
		assert.Nil(t, assets)

		laptops, _ := o.Item(laptopsID)
		assert.Equal(t, 3, laptops.AssetsGenerated(), "failed run must not change the counter")
	})

	t.Run("should cap generation at the received quantity on partial receipt", func(t *testing.T) {
		o, chairsID, laptopsID := newDeliveredOrder(t)
		_, err := services.NewReceiptReconciler().Reconcile(o,
			map[kernel.UUID]int{chairsID: 10, laptopsID: 3}, "officer", "", testNow)
		require.NoError(t, err)

		_, err = generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 5}}, "officer", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOverGeneration)
	})

	t.Run("should fail on non-generating item", func(t *testing.T) {
		o, chairsID, _ := newReceivedOrder(t)

		_, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: chairsID, Quantity: 1}}, "officer", testNow)

		assert.ErrorIs(t, err, order.ErrItemNotEligible)
	})

	t.Run("should reject duplicate selections", func(t *testing.T) {
		o, _, laptopsID := newReceivedOrder(t)

		_, err := generator.Generate(o,
			[]services.GenerationSelection{
				{ItemID: laptopsID, Quantity: 2},
				{ItemID: laptopsID, Quantity: 2},
			}, "officer", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "selected more than once")

		laptops, _ := o.Item(laptopsID)
		assert.Equal(t, 0, laptops.AssetsGenerated())
	})

	t.Run("should reject a run against an undelivered order", func(t *testing.T) {
		o, _, laptopsID := newDeliveredOrder(t)

		_, err := generator.Generate(o,
			[]services.GenerationSelection{{ItemID: laptopsID, Quantity: 1}}, "officer", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "received order")
	})

	t.Run("should reject empty selections", func(t *testing.T) {
		o, _, _ := newReceivedOrder(t)

		_, err := generator.Generate(o, nil, "officer", testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "selections")
	})
}
