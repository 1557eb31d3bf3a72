package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(orderID, order.Submit, "maker", "Q1 batch")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Submit, cmd.Trigger())
		assert.Equal(t, "maker", cmd.Actor())
		assert.Equal(t, "Q1 batch", cmd.Notes())
	})

	t.Run("should leave payload-trigger routing to the domain", func(t *testing.T) {
		payloadTriggers := []order.Trigger{order.Schedule, order.ConfirmDelivery, order.ConfirmReceipt}

		for _, trigger := range payloadTriggers {
			cmd, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), trigger, "officer", "")

			require.NoError(t, err, "%s should construct", trigger)
			assert.Equal(t, trigger, cmd.Trigger())
		}
	})

	t.Run("should reject unknown trigger", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.TriggerUnknown, "maker", "")

		require.Error(t, err)
	})

	t.Run("should fail without actor", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Submit, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor")
	})
}
