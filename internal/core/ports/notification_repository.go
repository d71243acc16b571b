package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read-state marks).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllFor retrieves the notifications addressed at the given principal,
	// newest first: broadcasts, the principal's role audience, and specific
	// notifications naming them.
	GetAllFor(ctx context.Context, principal kernel.Principal) ([]*notification.Notification, error)
}
