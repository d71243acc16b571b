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

// CreateOrderCommandHandler handles the business logic for order placement.
//
// Placement is deliberately persist-then-reserve: the order commits first in
// Pending status, then stock is reserved per line item through the inventory
// ledger. A reservation that fails leaves the order in place with its items
// tagged unreserved; the reservation sweep retries them later, and the caller
// sees a dependency failure instead of a silently inconsistent order.
type CreateOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	ledger     ports.InventoryLedger
	emitter    ports.NotificationEmitter
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a unit of work factory for transactional persistence, the
// inventory ledger for stock reservation, and the notification emitter.
func NewCreateOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	ledger ports.InventoryLedger,
	emitter ports.NotificationEmitter,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		emitter:    emitter,
	}
}

// Handle processes the order placement command.
//
// Steps, in order:
//  1. snapshot name/price/image for every position from the catalog and
//     persist the order in Pending status (one transaction);
//  2. reserve stock per line item through the ledger;
//  3. record which reservations committed (second transaction);
//  4. notify the owner and the admins.
//
// A partial reservation returns a DependencyFailureError after the
// notifications; the order itself stays placed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.placeOrder(ctx, cmd); err != nil {
		return err
	}

	reserved, reserveFailed := h.reserveStock(ctx, cmd)
	if len(reserved) > 0 {
		if err := h.recordReservations(ctx, cmd.OrderID(), reserved); err != nil {
			return err
		}
	}

	h.notifyPlaced(ctx, cmd)

	if reserveFailed {
		return errs.NewDependencyFailureError("inventory ledger")
	}

	return nil
}

// placeOrder snapshots catalog data into line items and commits the order.
func (h *CreateOrderCommandHandler) placeOrder(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		product, err := productRepo.Get(ctx, item.ProductID)
		if err != nil {
			return err
		}

		lineItem, err := order.NewLineItem(product.ID(), item.Quantity, product.Price(), product.Name(), product.ImageRef())
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.OwnerID(), lineItems,
		cmd.ShippingInfo(), cmd.PaymentInfo(), cmd.TotalAmount())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reserveStock reserves every position and returns the indices that
// committed plus whether any reservation failed.
func (h *CreateOrderCommandHandler) reserveStock(ctx context.Context, cmd CreateOrderCommand) ([]int, bool) {
	var reserved []int
	failed := false
	for i, item := range cmd.Items() {
		if err := h.ledger.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
			failed = true
			continue
		}
		reserved = append(reserved, i)
	}
	return reserved, failed
}

// recordReservations marks the committed reservations on the persisted order.
// A cancel that slipped in between reservation and this lock released nothing
// for these items (they were still unmarked), so the decrements are returned
// to the ledger here instead of recorded.
func (h *CreateOrderCommandHandler) recordReservations(ctx context.Context, orderID kernel.UUID, reserved []int) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	placed, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	if placed.Status() == order.Cancelled {
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		if releaseReservedIndices(ctx, h.ledger, placed, reserved) {
			return errs.NewDependencyFailureError("inventory ledger")
		}
		return nil
	}

	for _, index := range reserved {
		if err = placed.MarkItemReserved(index); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) notifyPlaced(ctx context.Context, cmd CreateOrderCommand) {
	ownerID := cmd.OwnerID()
	message := fmt.Sprintf("Your order %s has been placed", cmd.OrderID())

	if owned, err := notification.NewNotification(kernel.NewUUID(), "Order placed", message,
		notification.TypeOrder, notification.TargetSpecific, &ownerID); err == nil {
		_ = h.emitter.Emit(ctx, owned)
	}

	adminMessage := fmt.Sprintf("New order %s awaits processing", cmd.OrderID())
	if forAdmins, err := notification.NewNotification(kernel.NewUUID(), "New order", adminMessage,
		notification.TypeOrder, notification.TargetAdmin, nil); err == nil {
		_ = h.emitter.Emit(ctx, forAdmins)
	}
}
