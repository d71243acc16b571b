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

func TestRetryReservationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := pendingOrderFixture(t, kernel.NewUUID())
	items := target.LineItems()
	cmd := commands.NewRetryReservationsCommand()

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{target}, nil).Once()

	ledger := new(MockInventoryLedger)
	ledger.On("Reserve", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once()
	ledger.On("Reserve", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once()

	recordRepo := new(MockOrderRepository)
	recordUow := new(MockUoW)
	mock.InOrder(
		recordUow.On("Begin", ctx).Return(nil).Once(),
		recordUow.On("OrderRepository").Return(recordRepo).Once(),
		recordRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		recordRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		recordUow.On("Commit", ctx).Return(nil).Once(),
		recordUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(recordUow).Once()

	h := commands.NewRetryReservationsCommandHandler(factory, ledger)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.FullyReserved, target.ReservationOutcome())
	ledger.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
	recordUow.AssertExpectations(t)
}

func TestRetryReservationsCommandHandler_Handle_LedgerStillFailing(t *testing.T) {
	ctx := t.Context()
	target := pendingOrderFixture(t, kernel.NewUUID())
	items := target.LineItems()
	cmd := commands.NewRetryReservationsCommand()

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{target}, nil).Once()

	ledger := new(MockInventoryLedger)
	ledger.On("Reserve", ctx, items[0].ProductID(), items[0].Quantity()).
		Return(errs.NewDependencyFailureError("inventory ledger")).Once()
	ledger.On("Reserve", ctx, items[1].ProductID(), items[1].Quantity()).
		Return(errs.NewDependencyFailureError("inventory ledger")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()

	// Nothing committed, so no recording transaction runs and the sweep
	// finishes clean for the next tick.
	h := commands.NewRetryReservationsCommandHandler(factory, ledger)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Unreserved, target.ReservationOutcome())
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestRetryReservationsCommandHandler_Handle_PartialProgress(t *testing.T) {
	ctx := t.Context()
	target := pendingOrderFixture(t, kernel.NewUUID())
	items := target.LineItems()
	cmd := commands.NewRetryReservationsCommand()

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{target}, nil).Once()

	ledger := new(MockInventoryLedger)
	ledger.On("Reserve", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once()
	ledger.On("Reserve", ctx, items[1].ProductID(), items[1].Quantity()).
		Return(errs.NewDependencyFailureError("inventory ledger")).Once()

	recordRepo := new(MockOrderRepository)
	recordUow := new(MockUoW)
	mock.InOrder(
		recordUow.On("Begin", ctx).Return(nil).Once(),
		recordUow.On("OrderRepository").Return(recordRepo).Once(),
		recordRepo.On("GetForUpdate", ctx, target.ID()).Return(target, nil).Once(),
		recordRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		recordUow.On("Commit", ctx).Return(nil).Once(),
		recordUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(recordUow).Once()

	h := commands.NewRetryReservationsCommandHandler(factory, ledger)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.PartiallyReserved, target.ReservationOutcome())
	require.Equal(t, []int{1}, target.UnreservedItems())
}

func TestRetryReservationsCommandHandler_Handle_ReleasesWhenOrderLeftPending(t *testing.T) {
	ctx := t.Context()
	stale := pendingOrderFixture(t, kernel.NewUUID())
	items := stale.LineItems()
	cmd := commands.NewRetryReservationsCommand()

	// The fresh copy read under lock was cancelled between the sweep's list
	// and its recording transaction. That cancel released nothing for these
	// items (they were still unmarked), so the sweep must return its own
	// decrements to the ledger instead of recording them.
	owner := stale.OwnerID()
	current := pendingOrderFixture(t, owner)
	require.NoError(t, current.CancelByCustomer(owner))

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{stale}, nil).Once()

	ledger := new(MockInventoryLedger)
	ledger.On("Reserve", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once()
	ledger.On("Reserve", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once()

	recordRepo := new(MockOrderRepository)
	recordUow := new(MockUoW)
	mock.InOrder(
		recordUow.On("Begin", ctx).Return(nil).Once(),
		recordUow.On("OrderRepository").Return(recordRepo).Once(),
		recordRepo.On("GetForUpdate", ctx, stale.ID()).Return(current, nil).Once(),
		recordUow.On("Commit", ctx).Return(nil).Once(),

		ledger.On("Release", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once(),
		ledger.On("Release", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once(),

		recordUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(recordUow).Once()

	h := commands.NewRetryReservationsCommandHandler(factory, ledger)
	require.NoError(t, h.Handle(ctx, cmd))

	recordRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
}

func TestRetryReservationsCommandHandler_Handle_ReleaseFailureSurfaces(t *testing.T) {
	ctx := t.Context()
	stale := pendingOrderFixture(t, kernel.NewUUID())
	items := stale.LineItems()
	cmd := commands.NewRetryReservationsCommand()

	owner := stale.OwnerID()
	current := pendingOrderFixture(t, owner)
	require.NoError(t, current.CancelByCustomer(owner))

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{stale}, nil).Once()

	ledger := new(MockInventoryLedger)
	ledger.On("Reserve", ctx, items[0].ProductID(), items[0].Quantity()).Return(nil).Once()
	ledger.On("Reserve", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once()
	ledger.On("Release", ctx, items[0].ProductID(), items[0].Quantity()).
		Return(errs.NewDependencyFailureError("inventory ledger")).Once()
	ledger.On("Release", ctx, items[1].ProductID(), items[1].Quantity()).Return(nil).Once()

	recordRepo := new(MockOrderRepository)
	recordUow := new(MockUoW)
	mock.InOrder(
		recordUow.On("Begin", ctx).Return(nil).Once(),
		recordUow.On("OrderRepository").Return(recordRepo).Once(),
		recordRepo.On("GetForUpdate", ctx, stale.ID()).Return(current, nil).Once(),
		recordUow.On("Commit", ctx).Return(nil).Once(),
		recordUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(recordUow).Once()

	h := commands.NewRetryReservationsCommandHandler(factory, ledger)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDependencyFailure)

	// The remaining item was still released.
	ledger.AssertExpectations(t)
}

func TestRetryReservationsCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRetryReservationsCommand()

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllPendingUnreserved", ctx).Return([]*order.Order{}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUow).Once()

	h := commands.NewRetryReservationsCommandHandler(factory, new(MockInventoryLedger))
	require.NoError(t, h.Handle(ctx, cmd))
}
