package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrTotalAmountIsInvalid  = errors.New("totalAmount must be greater than 0")
)

// OrderItem is a requested order position: which product and how many units.
// Name, price and image are not part of the request; they are snapshotted
// from the catalog when the order is created.
type OrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// Validate checks the position references a product and has a positive quantity.
func (i OrderItem) Validate() error {
	if err := i.ProductID.Validate(); err != nil {
		return err
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the requested positions, shipping and payment metadata, and
// the declared total, on behalf of the owning customer.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	ownerID      kernel.UUID
	items        []OrderItem
	shippingInfo order.ShippingInfo
	paymentInfo  order.PaymentInfo
	totalAmount  float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates ids, every position, the shipping metadata, and the total.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	items []OrderItem,
	shippingInfo order.ShippingInfo,
	paymentInfo order.PaymentInfo,
	totalAmount float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setItems(items),
		orderCommand.setShippingInfo(shippingInfo),
		orderCommand.setPaymentInfo(paymentInfo),
		orderCommand.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the id of the customer placing the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Items returns the requested order positions.
func (c CreateOrderCommand) Items() []OrderItem {
	return append([]OrderItem(nil), c.items...)
}

// ShippingInfo returns the shipping metadata.
func (c CreateOrderCommand) ShippingInfo() order.ShippingInfo {
	return c.shippingInfo
}

// PaymentInfo returns the payment metadata.
func (c CreateOrderCommand) PaymentInfo() order.PaymentInfo {
	return c.paymentInfo
}

// TotalAmount returns the declared order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setShippingInfo(shippingInfo order.ShippingInfo) error {
	if err := shippingInfo.Validate(); err != nil {
		return err
	}

	c.shippingInfo = shippingInfo
	return nil
}

func (c *CreateOrderCommand) setPaymentInfo(paymentInfo order.PaymentInfo) error {
	if err := paymentInfo.Validate(); err != nil {
		return err
	}

	c.paymentInfo = paymentInfo
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount <= 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}
