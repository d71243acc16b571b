package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrVerifyDeliveryCommandIsNotConstructed = errors.New(
	"VerifyDeliveryCommand must be created via NewVerifyDeliveryCommand constructor",
)

// VerifyDeliveryCommand represents a request to confirm physical handoff of a
// shipped order with the presented delivery code.
type VerifyDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	presentedCode string

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryCommand creates a command to verify delivery.
// Only presence of the code is validated here; matching happens inside the
// aggregate, in constant time.
func NewVerifyDeliveryCommand(orderID kernel.UUID, presentedCode string) (VerifyDeliveryCommand, error) {
	verifyCommand := VerifyDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setOrderID(orderID),
		verifyCommand.setPresentedCode(presentedCode),
	); err != nil {
		return VerifyDeliveryCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to verify.
func (c VerifyDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PresentedCode returns the code presented at handoff.
func (c VerifyDeliveryCommand) PresentedCode() string {
	return c.presentedCode
}

func (c *VerifyDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyDeliveryCommand) setPresentedCode(presentedCode string) error {
	if presentedCode == "" {
		return errs.NewValueIsRequiredError("deliveryCode")
	}

	c.presentedCode = presentedCode
	return nil
}
