package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery lists every order for the admin dashboard, optionally
// filtered by status, together with the revenue over non-cancelled orders.
type ListAllOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery creates a query listing all orders. A nil status
// lists everything.
func NewListAllOrdersQuery(status *order.Status) (ListAllOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListAllOrdersQuery{}, err
		}
	}

	query := ListAllOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		query.status = &s
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListAllOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// ListAllOrdersQueryResponse is the admin listing with the revenue total.
// TotalRevenue always covers all non-cancelled orders, independent of the
// status filter.
type ListAllOrdersQueryResponse struct {
	Orders       []OrderResponse
	TotalRevenue float64
}
