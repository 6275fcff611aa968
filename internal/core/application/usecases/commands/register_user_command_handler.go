package commands

import (
	"context"
	"errors"

	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/auth"
	"travelorders/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when registration reuses an email
// address that already belongs to an account.
var ErrEmailAlreadyRegistered = errs.NewBusinessRuleError("email is already registered")

// RegisterUserCommandHandler handles account creation. New accounts start
// with no permissions; capabilities are granted separately.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     auth.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher auth.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Hashes the password, refuses duplicate email addresses, and persists the
// new account in one transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.UserRepository().GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), passwordHash)
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
