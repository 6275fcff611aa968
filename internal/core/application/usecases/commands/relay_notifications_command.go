package commands

import (
	"errors"

	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrRelayNotificationsCommandIsNotConstructed = errors.New(
		"RelayNotificationsCommand must be created via NewRelayNotificationsCommand constructor",
	)
)

// RelayNotificationsCommand represents one relay pass over the notification
// outbox: pick up pending notifications, hand them to the transport, mark
// them dispatched.
type RelayNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayNotificationsCommand creates a command for one relay pass.
// Batch size bounds how many pending notifications a single pass picks up.
func NewRelayNotificationsCommand(batchSize int) (RelayNotificationsCommand, error) {
	cmd := RelayNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRelayNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of notifications one pass handles.
func (c RelayNotificationsCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidError("batch size")
	}

	c.batchSize = batchSize
	return nil
}
