package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// VerifyDeliveryCommandHandler handles the delivery-code handshake that
// completes an order. A successful verification is one-time: the aggregate
// clears the code, so a replay reports completion instead of matching again.
type VerifyDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	emitter    ports.NotificationEmitter
}

// NewVerifyDeliveryCommandHandler creates a handler for delivery verification.
func NewVerifyDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	emitter ports.NotificationEmitter,
) VerifyDeliveryCommandHandler {
	return VerifyDeliveryCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

// Handle processes the verification command. The row lock taken by
// GetForUpdate serializes concurrent verification attempts on the same order,
// so exactly one of two racing attempts with the correct code succeeds.
func (h *VerifyDeliveryCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryCommand) error {
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

	if err = target.VerifyDelivery(cmd.PresentedCode()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyDelivered(ctx, target)
	return nil
}

func (h *VerifyDeliveryCommandHandler) notifyDelivered(ctx context.Context, delivered *order.Order) {
	ownerID := delivered.OwnerID()
	message := fmt.Sprintf("Your order %s has been delivered", delivered.ID())

	if owned, err := notification.NewNotification(kernel.NewUUID(), "Order delivered", message,
		notification.TypeOrder, notification.TargetSpecific, &ownerID); err == nil {
		_ = h.emitter.Emit(ctx, owned)
	}
}
