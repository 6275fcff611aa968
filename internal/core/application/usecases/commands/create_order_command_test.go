package commands_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		ownerID := kernel.NewUUID()
		period := testPeriod(t)

		cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, "Madrid", period)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Madrid", cmd.Destination())
	})

	t.Run("rejects a missing order id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewCreateOrderCommand(zero, kernel.NewUUID(), "Madrid", testPeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a missing owner id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), zero, "Madrid", testPeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects an empty destination", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", testPeriod(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects an unconstructed period", func(t *testing.T) {
		var zero kernel.TravelPeriod

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Madrid", zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
