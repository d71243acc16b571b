package commands

import (
	"context"
)

// MarkAllNotificationsReadCommandHandler marks every notification addressed
// at the reader as read in a single transaction.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for bulk
// read marks.
func NewMarkAllNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk read-mark command. Already-read notifications are
// skipped so the transaction only touches rows that change.
func (h *MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkAllNotificationsReadCommand) error {
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
	visible, err := notificationRepo.GetAllFor(ctx, cmd.Reader())
	if err != nil {
		return err
	}

	readerID := cmd.Reader().ID()
	for _, target := range visible {
		if target.IsReadBy(readerID) {
			continue
		}

		if err = target.MarkReadBy(readerID); err != nil {
			return err
		}

		if err = notificationRepo.Update(ctx, target); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
