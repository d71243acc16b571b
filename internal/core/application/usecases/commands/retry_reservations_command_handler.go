package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RetryReservationsCommandHandler handles the reservation sweep. Orders placed
// while a product row was missing or the ledger was unavailable stay Pending
// with unreserved items; the sweep retries those reservations until they
// commit or the order leaves Pending.
type RetryReservationsCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     ports.InventoryLedger
}

// NewRetryReservationsCommandHandler creates a handler for the reservation sweep.
func NewRetryReservationsCommandHandler(
	uowFactory OrderUoWFactory,
	ledger ports.InventoryLedger,
) RetryReservationsCommandHandler {
	return RetryReservationsCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle retries reservations for every Pending order that is not fully
// reserved. Each order is settled in its own transaction, so one stuck order
// never blocks the rest of the sweep. Ledger failures are skipped; the next
// sweep picks them up again.
func (h *RetryReservationsCommandHandler) Handle(ctx context.Context, cmd RetryReservationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.uowFactory.Create().OrderRepository().GetAllPendingUnreserved(ctx)
	if err != nil {
		return err
	}

	for _, candidate := range pending {
		reserved := h.reserveOutstanding(ctx, candidate)
		if len(reserved) == 0 {
			continue
		}

		if err := h.recordReservations(ctx, candidate, reserved); err != nil {
			return err
		}
	}

	return nil
}

// reserveOutstanding retries the ledger for every unreserved item and returns
// the indices that committed.
func (h *RetryReservationsCommandHandler) reserveOutstanding(ctx context.Context, candidate *order.Order) []int {
	var reserved []int
	items := candidate.LineItems()
	for _, index := range candidate.UnreservedItems() {
		item := items[index]
		if err := h.ledger.Reserve(ctx, item.ProductID(), item.Quantity()); err != nil {
			continue
		}
		reserved = append(reserved, index)
	}
	return reserved
}

// recordReservations re-reads the order under lock and marks the committed
// reservations. The lock guards against a concurrent transition having moved
// the order on in the meantime: such a transition released only the items
// already marked reserved, so this pass's decrements must be returned to the
// ledger instead of recorded.
func (h *RetryReservationsCommandHandler) recordReservations(ctx context.Context, candidate *order.Order, reserved []int) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.GetForUpdate(ctx, candidate.ID())
	if err != nil {
		return err
	}

	if current.Status() != order.Pending {
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		if releaseReservedIndices(ctx, h.ledger, candidate, reserved) {
			return errs.NewDependencyFailureError("inventory ledger")
		}
		return nil
	}

	for _, index := range reserved {
		if err = current.MarkItemReserved(index); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseReservedIndices returns the decrements applied for the given line
// item indices back to the ledger. Reports whether any release failed.
func releaseReservedIndices(ctx context.Context, ledger ports.InventoryLedger, o *order.Order, reserved []int) bool {
	failed := false
	items := o.LineItems()
	for _, index := range reserved {
		item := items[index]
		if err := ledger.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
			failed = true
		}
	}
	return failed
}
