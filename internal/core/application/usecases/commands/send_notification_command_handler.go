package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

// SendNotificationCommandHandler handles admin-authored notifications.
// Delivery goes through the emitter like every system-produced notification.
type SendNotificationCommandHandler struct {
	emitter ports.NotificationEmitter
}

// NewSendNotificationCommandHandler creates a handler for sending notifications.
func NewSendNotificationCommandHandler(emitter ports.NotificationEmitter) SendNotificationCommandHandler {
	return SendNotificationCommandHandler{
		emitter: emitter,
	}
}

// Handle builds the notification and hands it to the emitter.
func (h *SendNotificationCommandHandler) Handle(ctx context.Context, cmd SendNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	toSend, err := notification.NewNotification(kernel.NewUUID(), cmd.Title(), cmd.Message(),
		cmd.Type(), cmd.Target(), cmd.RecipientID())
	if err != nil {
		return err
	}

	return h.emitter.Emit(ctx, toSend)
}
