package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSendNotificationCommandIsNotConstructed = errors.New(
	"SendNotificationCommand must be created via NewSendNotificationCommand constructor",
)

// SendNotificationCommand represents an administrative request to send a
// notification to an audience or a specific principal.
type SendNotificationCommand struct { //nolint:recvcheck //using for validation
	title            string
	message          string
	notificationType notification.Type
	target           notification.Target
	recipientID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendNotificationCommand creates a command to send a notification.
// Type defaults to info and target to all when the zero values are passed,
// matching the admin tooling that mostly sends broadcasts.
func NewSendNotificationCommand(
	title string,
	message string,
	notificationType notification.Type,
	target notification.Target,
	recipientID *kernel.UUID,
) (SendNotificationCommand, error) {
	if notificationType == notification.TypeUnknown {
		notificationType = notification.TypeInfo
	}
	if target == notification.TargetUnknown {
		target = notification.TargetAll
	}

	sendCommand := SendNotificationCommand{
		notificationType: notificationType,
		target:           target,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sendCommand.setTitle(title),
		sendCommand.setMessage(message),
		notificationType.Validate(),
		target.Validate(),
	); err != nil {
		return SendNotificationCommand{}, err
	}

	if err := sendCommand.setRecipientID(recipientID); err != nil {
		return SendNotificationCommand{}, err
	}

	return sendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SendNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendNotificationCommandIsNotConstructed)
}

// Title returns the notification title.
func (c SendNotificationCommand) Title() string {
	return c.title
}

// Message returns the notification body.
func (c SendNotificationCommand) Message() string {
	return c.message
}

// Type returns the notification type.
func (c SendNotificationCommand) Type() notification.Type {
	return c.notificationType
}

// Target returns the notification audience.
func (c SendNotificationCommand) Target() notification.Target {
	return c.target
}

// RecipientID returns the addressee for specific notifications, nil otherwise.
func (c SendNotificationCommand) RecipientID() *kernel.UUID {
	if c.recipientID == nil {
		return nil
	}
	id := *c.recipientID
	return &id
}

func (c *SendNotificationCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *SendNotificationCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}

func (c *SendNotificationCommand) setRecipientID(recipientID *kernel.UUID) error {
	if c.target == notification.TargetSpecific {
		if recipientID == nil {
			return errs.NewValueIsRequiredError("recipientId")
		}
		if err := recipientID.Validate(); err != nil {
			return err
		}
		id := *recipientID
		c.recipientID = &id
		return nil
	}

	if recipientID != nil {
		return errs.NewValueIsInvalidError("recipientId")
	}
	return nil
}
