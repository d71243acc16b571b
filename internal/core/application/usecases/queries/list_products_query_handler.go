package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProductsQueryHandler lists the catalog from the database.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog listings.
// Requires a GORM database connection for query execution.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query, sorted by name for stable output.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, price, image_ref, stock
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var (
			id                          uuid.UUID
			name, description, imageRef string
			price                       float64
			stock                       int
		)
		if err = rows.Scan(&id, &name, &description, &price, &imageRef, &stock); err != nil {
			return nil, err
		}

		productID, idErr := kernelUUID(id)
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, ProductResponse{
			ID:          productID,
			Name:        name,
			Description: description,
			Price:       price,
			ImageRef:    imageRef,
			Stock:       stock,
			IsLowStock:  product.IsLowStock(stock),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
