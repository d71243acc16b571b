package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler handles per-principal read marks.
// A notification not addressed at the reader is treated as not found, so the
// endpoint does not leak which notification ids exist.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking a
// notification read.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read-mark command. Marking twice is a no-op.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	notificationRepo := uow.NotificationRepository()
	target, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !target.VisibleTo(cmd.Reader()) {
		return errs.NewObjectNotFoundError("notificationId", cmd.NotificationID())
	}

	if err = target.MarkReadBy(cmd.Reader().ID()); err != nil {
		return err
	}

	if err = notificationRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
