package commands_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("creates a valid command", func(t *testing.T) {
		userID := kernel.NewUUID()

		cmd, err := commands.NewRegisterUserCommand(userID, "Alex", "alex@example.com", "correct horse")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.UserID().IsEqual(userID))
		assert.Equal(t, "Alex", cmd.Name())
		assert.Equal(t, "alex@example.com", cmd.Email())
		assert.Equal(t, "correct horse", cmd.Password())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", "alex@example.com", "correct horse")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Alex", "not-an-email", "correct horse")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Alex", "alex@example.com", "short")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Alex", "alex@example.com", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RegisterUserCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
