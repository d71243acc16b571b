package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read projections (listings, reports) bypass this contract and query the
// database directly; the repository serves the command side only.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction. Every status transition loads the order
	// through this method so concurrent transitions on the same order
	// serialize instead of interleaving.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingUnreserved retrieves Pending orders whose stock
	// reservation has not fully committed. The reservation sweep retries
	// exactly these.
	GetAllPendingUnreserved(ctx context.Context) ([]*order.Order, error)
}
