package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func principalFixture(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func broadcastFixture(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), "Maintenance",
		"Scheduled downtime tonight", notification.TypeSystem, notification.TargetAll, nil)
	require.NoError(t, err)
	return n
}

func TestSendNotificationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("emits the built notification", func(t *testing.T) {
		cmd, err := commands.NewSendNotificationCommand("Sale", "Everything half price",
			notification.TypePromo, notification.TargetCustomer, nil)
		require.NoError(t, err)

		emitter := new(MockNotificationEmitter)
		emitter.On("Emit", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Title() == "Sale" && n.Target() == notification.TargetCustomer
		})).Return(nil).Once()

		h := commands.NewSendNotificationCommandHandler(emitter)
		require.NoError(t, h.Handle(ctx, cmd))
		emitter.AssertExpectations(t)
	})

	t.Run("defaults type and target", func(t *testing.T) {
		cmd, err := commands.NewSendNotificationCommand("Hello", "world",
			notification.TypeUnknown, notification.TargetUnknown, nil)
		require.NoError(t, err)
		require.Equal(t, notification.TypeInfo, cmd.Type())
		require.Equal(t, notification.TargetAll, cmd.Target())
	})

	t.Run("specific target requires recipient", func(t *testing.T) {
		_, err := commands.NewSendNotificationCommand("Hello", "world",
			notification.TypeInfo, notification.TargetSpecific, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("marks a visible notification read", func(t *testing.T) {
		reader := principalFixture(t, kernel.RoleCustomer)
		target := broadcastFixture(t)
		cmd, err := commands.NewMarkNotificationReadCommand(target.ID(), reader)
		require.NoError(t, err)

		notificationRepo := new(MockNotificationRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("NotificationRepository").Return(notificationRepo).Once(),
			notificationRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
			notificationRepo.On("Update", mock.Anything, target).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockNotificationUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewMarkNotificationReadCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.True(t, target.IsReadBy(reader.ID()))
		notificationRepo.AssertExpectations(t)
	})

	t.Run("hides notifications addressed at other audiences", func(t *testing.T) {
		reader := principalFixture(t, kernel.RoleCustomer)
		adminOnly, err := notification.NewNotification(kernel.NewUUID(), "Low stock",
			"Monstera is running low", notification.TypeInfo, notification.TargetAdmin, nil)
		require.NoError(t, err)
		cmd, err := commands.NewMarkNotificationReadCommand(adminOnly.ID(), reader)
		require.NoError(t, err)

		notificationRepo := new(MockNotificationRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("NotificationRepository").Return(notificationRepo).Once(),
			notificationRepo.On("Get", ctx, adminOnly.ID()).Return(adminOnly, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockNotificationUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewMarkNotificationReadCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.False(t, adminOnly.IsReadBy(reader.ID()))
	})
}

func TestMarkAllNotificationsReadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reader := principalFixture(t, kernel.RoleCustomer)

	unread := broadcastFixture(t)
	alreadyRead := broadcastFixture(t)
	require.NoError(t, alreadyRead.MarkReadBy(reader.ID()))

	cmd, err := commands.NewMarkAllNotificationsReadCommand(reader)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllFor", ctx, reader).
			Return([]*notification.Notification{unread, alreadyRead}, nil).Once(),
		notificationRepo.On("Update", mock.Anything, unread).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAllNotificationsReadCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, unread.IsReadBy(reader.ID()))
	notificationRepo.AssertExpectations(t)
	notificationRepo.AssertNotCalled(t, "Update", mock.Anything, alreadyRead)
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Monstera",
		"Big green leaves", 24.90, "img/monstera.jpg", 10)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
