package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationEmitter delivers notifications on a best-effort basis. Emission
// is decoupled from the state transition that produced the notification: a
// failed or dropped emission is logged by the adapter and never surfaces to
// the caller as an error of the transition itself.
type NotificationEmitter interface {
	// Emit hands the notification over for asynchronous delivery. The only
	// errors returned are validation errors on the notification itself.
	Emit(ctx context.Context, n *notification.Notification) error
}
