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

// CancelOrderCommandHandler handles customer-initiated cancellations.
// Only the order owner may cancel, and only before shipment; the cancelled
// order's committed reservations are released back to the ledger.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ledger     ports.InventoryLedger
	emitter    ports.NotificationEmitter
}

// NewCancelOrderCommandHandler creates a handler for customer cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ledger ports.InventoryLedger,
	emitter ports.NotificationEmitter,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		emitter:    emitter,
	}
}

// Handle processes the cancellation command. The aggregate enforces ownership
// and the pre-shipment rule; stock release and notifications follow the
// commit so a rolled-back cancellation releases nothing.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = target.CancelByCustomer(cmd.RequestedBy()); err != nil {
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
	for _, item := range reservedItems {
		if err = h.ledger.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
			releaseFailed = true
		}
	}

	h.notifyCancelled(ctx, target)

	if releaseFailed {
		return errs.NewDependencyFailureError("inventory ledger")
	}

	return nil
}

func (h *CancelOrderCommandHandler) notifyCancelled(ctx context.Context, cancelled *order.Order) {
	ownerID := cancelled.OwnerID()
	message := fmt.Sprintf("Your order %s has been cancelled", cancelled.ID())

	if owned, err := notification.NewNotification(kernel.NewUUID(), "Order cancelled", message,
		notification.TypeOrder, notification.TargetSpecific, &ownerID); err == nil {
		_ = h.emitter.Emit(ctx, owned)
	}

	adminMessage := fmt.Sprintf("Order %s was cancelled by the customer", cancelled.ID())
	if forAdmins, err := notification.NewNotification(kernel.NewUUID(), "Order cancelled", adminMessage,
		notification.TypeOrder, notification.TargetAdmin, nil); err == nil {
		_ = h.emitter.Emit(ctx, forAdmins)
	}
}
