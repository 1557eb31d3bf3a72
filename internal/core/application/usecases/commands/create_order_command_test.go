package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemSpecs() []commands.LineItemSpec {
	return []commands.LineItemSpec{
		{
			Description:     "office chairs",
			Quantity:        10,
			UnitPrice:       decimal.NewFromInt(100),
			GeneratesAssets: false,
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(
			orderID, kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false,
			validItemSpecs(), "maker")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "maker", cmd.Actor())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false,
			nil, "maker")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail without actor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false,
			validItemSpecs(), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor")
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCreateOrderCommand(
			invalidID, invalidID, invalidID,
			decimal.NewFromInt(12), decimal.NewFromInt(2),
			decimal.Zero, decimal.Zero, nil, false,
			validItemSpecs(), "maker")

		require.Error(t, err)
	})

	t.Run("should reject non-constructed command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
