package commands_test

import (
	"errors"
	"testing"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/notification"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pendingNotification(t *testing.T) *notification.Notification {
	t.Helper()

	aggregate := testOrderOwnedBy(t, kernel.NewUUID())
	_, err := aggregate.Cancel()
	require.NoError(t, err)

	n, err := notification.NewNotification(kernel.NewUUID(), aggregate)
	require.NoError(t, err)
	return n
}

func TestRelayNotificationsCommandHandler_Handle_DispatchesBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayNotificationsCommand(10)
	require.NoError(t, err)

	first := pendingNotification(t)
	second := pendingNotification(t)

	notificationRepo := new(MockNotificationRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetPending", ctx, 10).Return([]*notification.Notification{first, second}, nil).Once(),
		notifier.On("Notify", ctx, first).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Update", ctx, first).Return(nil).Once(),
		notifier.On("Notify", ctx, second).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayNotificationsCommandHandler(factory, notifier, zap.NewNop())
	dispatched, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, dispatched)
	require.True(t, first.Dispatched())
	require.True(t, second.Dispatched())
	uow.AssertExpectations(t)
}

func TestRelayNotificationsCommandHandler_Handle_DeliveryFailureStillMarksDispatched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayNotificationsCommand(10)
	require.NoError(t, err)

	pending := pendingNotification(t)

	notificationRepo := new(MockNotificationRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetPending", ctx, 10).Return([]*notification.Notification{pending}, nil).Once(),
		notifier.On("Notify", ctx, pending).Return(errors.New("broker unavailable")).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Update", ctx, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayNotificationsCommandHandler(factory, notifier, zap.NewNop())
	dispatched, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, dispatched)
	require.True(t, pending.Dispatched())
}

func TestRelayNotificationsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayNotificationsCommand(10)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetPending", ctx, 10).Return([]*notification.Notification{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayNotificationsCommandHandler(factory, notifier, zap.NewNop())
	dispatched, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Zero(t, dispatched)
	notifier.AssertNotCalled(t, "Notify", ctx, mock.Anything)
}
