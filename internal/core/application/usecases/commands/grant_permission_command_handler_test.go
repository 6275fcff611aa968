package commands_test

import (
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGrantPermissionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	grantee := testUser(t)
	cmd, err := commands.NewGrantPermissionCommand(grantee.ID(), user.PermissionUpdateOrder)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, grantee.ID()).Return(grantee, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Update", ctx, grantee).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGrantPermissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, grantee.Can(user.PermissionUpdateOrder))
	uow.AssertExpectations(t)
}

func TestGrantPermissionCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	cmd, err := commands.NewGrantPermissionCommand(userID, user.PermissionViewOrders)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("user", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGrantPermissionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
