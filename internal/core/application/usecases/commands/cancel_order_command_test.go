package commands_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actorID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(orderID, actorID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.ActorID().IsEqual(actorID))
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewCancelOrderCommand(zero, zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
