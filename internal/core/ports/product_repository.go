package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries.
// Stock changes never go through this contract; they belong to the
// InventoryLedger.
type ProductRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a catalog entry by its unique identifier.
	// Order creation reads price/name/image snapshots through this method.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
