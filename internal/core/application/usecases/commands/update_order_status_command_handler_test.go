package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := pendingOrderFixture(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateOrderStatusCommand(target.ID(), order.Processing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	emitter := new(MockNotificationEmitter)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	emitter.On("Emit", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockInventoryLedger), emitter)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Processing, target.Status())
	require.Len(t, target.History(), 2)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	emitter.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelReleasesStock(t *testing.T) {
	ctx := t.Context()
	target := reservedOrderFixture(t, kernel.NewUUID())
	items := target.LineItems()
	cmd, err := commands.NewUpdateOrderStatusCommand(target.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	ledger := new(MockInventoryLedger)
	emitter := new(MockNotificationEmitter)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),

		ledger.On("Release", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once(),
		ledger.On("Release", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once(),
	)
	emitter.On("Emit", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, ledger, emitter)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Cancelled, target.Status())
	ledger.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelSkipsUnreservedItems(t *testing.T) {
	ctx := t.Context()
	// Only the first item's reservation committed.
	target := pendingOrderFixture(t, kernel.NewUUID())
	require.NoError(t, target.MarkItemReserved(0))
	items := target.LineItems()
	cmd, err := commands.NewUpdateOrderStatusCommand(target.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	ledger := new(MockInventoryLedger)
	emitter := new(MockNotificationEmitter)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),

		ledger.On("Release", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once(),
	)
	emitter.On("Emit", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, ledger, emitter)
	require.NoError(t, h.Handle(ctx, cmd))
	ledger.AssertExpectations(t)
	ledger.AssertNotCalled(t, "Release", ctx, items[1].ProductID(), items[1].Quantity())
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredRejectsUpdate(t *testing.T) {
	ctx := t.Context()
	target, code := shippedOrderFixture(t, kernel.NewUUID())
	require.NoError(t, target.VerifyDelivery(code))
	cmd, err := commands.NewUpdateOrderStatusCommand(target.ID(), order.Processing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockInventoryLedger), new(MockNotificationEmitter))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CancelledRejectsUpdate(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	target := pendingOrderFixture(t, owner)
	require.NoError(t, target.CancelByCustomer(owner))
	cmd, err := commands.NewUpdateOrderStatusCommand(target.ID(), order.Processing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockInventoryLedger), new(MockNotificationEmitter))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Processing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockInventoryLedger), new(MockNotificationEmitter))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
