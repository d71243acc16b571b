package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles administrative status updates.
// Cancelling through this path releases the reserved stock of every line
// item whose reservation had committed, exactly once.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     ports.InventoryLedger
	emitter    ports.NotificationEmitter
}

// NewUpdateOrderStatusCommandHandler creates a handler for administrative
// status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	ledger ports.InventoryLedger,
	emitter ports.NotificationEmitter,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		emitter:    emitter,
	}
}

// Handle processes the status update command.
// The order row is locked for the transaction, so concurrent transitions on
// the same order serialize. Terminal orders reject the update as an invalid
// transition.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.SetStatusByAdmin(cmd.Target()); err != nil {
		return err
	}

	reservedItems := reservedLineItems(target)

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	releaseFailed := false
	if cmd.Target() == order.Cancelled {
		releaseFailed = h.releaseStock(ctx, reservedItems)
	}

	h.notifyStatusChanged(ctx, target)

	if releaseFailed {
		return errs.NewDependencyFailureError("inventory ledger")
	}

	return nil
}

// releaseStock returns the reserved stock of the given items to the ledger.
// Reports whether any release failed.
func (h *UpdateOrderStatusCommandHandler) releaseStock(ctx context.Context, items []order.LineItem) bool {
	failed := false
	for _, item := range items {
		if err := h.ledger.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
			failed = true
		}
	}
	return failed
}

func (h *UpdateOrderStatusCommandHandler) notifyStatusChanged(ctx context.Context, updated *order.Order) {
	ownerID := updated.OwnerID()
	message := fmt.Sprintf("Your order %s is now %s", updated.ID(), updated.Status())

	if owned, err := notification.NewNotification(kernel.NewUUID(), "Order status updated", message,
		notification.TypeOrder, notification.TargetSpecific, &ownerID); err == nil {
		_ = h.emitter.Emit(ctx, owned)
	}
}

// reservedLineItems returns the line items whose reservation had committed.
func reservedLineItems(o *order.Order) []order.LineItem {
	var reserved []order.LineItem
	for _, item := range o.LineItems() {
		if item.Reserved() {
			reserved = append(reserved, item)
		}
	}
	return reserved
}
