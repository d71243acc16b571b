package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalog with current stock levels.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query listing the catalog.
// This is a parameterless query.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductResponse is the read-side shape of a catalog entry. Stock reflects
// the ledger as of the query and may be negative.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	ImageRef    string
	Stock       int
	IsLowStock  bool
}
