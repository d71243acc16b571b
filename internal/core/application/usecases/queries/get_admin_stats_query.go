package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// GetAdminStatsQuery computes the admin dashboard aggregates. Numbers are
// recomputed from the store on every call; there is no caching layer, so the
// answer is as fresh as the last committed transaction.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminStatsQuery creates a query computing the dashboard aggregates.
// This is a parameterless query.
func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse carries the dashboard aggregates.
//
// TotalSales sums the totals of every non-cancelled order. StatusCounts maps
// status names to order counts over all orders. LowStockCount counts catalog
// entries currently below the low-stock threshold.
type GetAdminStatsQueryResponse struct {
	TotalOrders   int
	TotalSales    float64
	StatusCounts  map[string]int
	LowStockCount int
}
