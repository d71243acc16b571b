package queries

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler lists a principal's notifications from the
// database.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification listings.
// Requires a GORM database connection for query execution.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query. A notification is visible when it is a
// broadcast, addressed at the reader's role audience, or specific to the
// reader. IsRead is derived from the stored per-principal read set.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roleTarget := notification.TargetCustomer
	if query.Reader().Role().IsAdmin() {
		roleTarget = notification.TargetAdmin
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, title, message, type, target, read_by, created_at
		FROM notifications
		WHERE target = ?
		   OR target = ?
		   OR (target = ? AND recipient_id = ?)
		ORDER BY created_at DESC
	`,
		int(notification.TargetAll),
		int(roleTarget),
		int(notification.TargetSpecific),
		query.Reader().ID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readerID := query.Reader().ID().String()
	notifications := make([]NotificationResponse, 0)
	for rows.Next() {
		var (
			id              uuid.UUID
			title, message  string
			typeRaw, tgtRaw int
			readByRaw       []byte
			createdAt       time.Time
		)
		if err = rows.Scan(&id, &title, &message, &typeRaw, &tgtRaw, &readByRaw, &createdAt); err != nil {
			return nil, err
		}

		notificationID, idErr := kernelUUID(id)
		if idErr != nil {
			return nil, idErr
		}

		var readBy []string
		if len(readByRaw) > 0 {
			if err = json.Unmarshal(readByRaw, &readBy); err != nil {
				return nil, err
			}
		}
		isRead := false
		for _, reader := range readBy {
			if reader == readerID {
				isRead = true
				break
			}
		}

		notifications = append(notifications, NotificationResponse{
			ID:        notificationID,
			Title:     title,
			Message:   message,
			Type:      notification.Type(typeRaw).String(),
			Target:    notification.Target(tgtRaw).String(),
			IsRead:    isRead,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
