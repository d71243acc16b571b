package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryLedger applies stock deltas as single atomic database updates, so
// concurrent reservations on the same product serialize at the row level and
// never lose an update.
//
// Neither operation gates on availability: stock may go observably negative.
// Calls are not idempotent; calling exactly once per line-item transition is
// the state machine's responsibility.
type InventoryLedger interface {
	// Reserve atomically decrements the product's stock by quantity. When the
	// committed stock falls below the low-stock threshold, the adapter raises
	// the low-stock admin signal through the notification emitter.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) error

	// Release atomically increments the product's stock by quantity. It is
	// unconditional and raises no signal.
	Release(ctx context.Context, productID kernel.UUID, quantity int) error
}
