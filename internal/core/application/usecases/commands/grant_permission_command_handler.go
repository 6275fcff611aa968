package commands

import (
	"context"
)

// GrantPermissionCommandHandler handles administrative permission grants.
// Granting a permission the user already holds is a no-op.
type GrantPermissionCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewGrantPermissionCommandHandler creates a handler for permission grants.
func NewGrantPermissionCommandHandler(uowFactory UserUoWFactory) GrantPermissionCommandHandler {
	return GrantPermissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grant command.
func (h *GrantPermissionCommandHandler) Handle(ctx context.Context, cmd GrantPermissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.Grant(cmd.Permission()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
