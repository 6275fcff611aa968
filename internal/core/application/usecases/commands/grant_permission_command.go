package commands

import (
	"errors"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"
	"travelorders/internal/pkg/guard"
)

var (
	ErrGrantPermissionCommandIsNotConstructed = errors.New(
		"GrantPermissionCommand must be created via NewGrantPermissionCommand constructor",
	)
)

// GrantPermissionCommand represents an administrative request to grant a
// capability to a user.
type GrantPermissionCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	permission user.Permission

	guard guard.ConstructorGuard
}

// NewGrantPermissionCommand creates a command to grant a permission.
func NewGrantPermissionCommand(userID kernel.UUID, permission user.Permission) (GrantPermissionCommand, error) {
	cmd := GrantPermissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPermission(permission),
	); err != nil {
		return GrantPermissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantPermissionCommand) Validate() error {
	return c.guard.Validate(ErrGrantPermissionCommandIsNotConstructed)
}

// UserID returns the identifier of the user receiving the permission.
func (c GrantPermissionCommand) UserID() kernel.UUID {
	return c.userID
}

// Permission returns the capability being granted.
func (c GrantPermissionCommand) Permission() user.Permission {
	return c.permission
}

func (c *GrantPermissionCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	c.userID = userID
	return nil
}

func (c *GrantPermissionCommand) setPermission(permission user.Permission) error {
	if err := permission.Validate(); err != nil {
		return err
	}

	c.permission = permission
	return nil
}
