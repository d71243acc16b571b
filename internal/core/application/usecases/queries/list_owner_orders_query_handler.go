package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOwnerOrdersQueryHandler lists a customer's orders from the database.
type ListOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOwnerOrdersQueryHandler creates a handler for owner order listings.
// Requires a GORM database connection for query execution.
func NewListOwnerOrdersQueryHandler(db *gorm.DB) ListOwnerOrdersQueryHandler {
	return ListOwnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first; the delivery code is
// attached to Shipped orders since the listing is owner-scoped already.
func (h ListOwnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOwnerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := scopeStatuses(query.Scope())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE owner_id = ? AND status IN ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}

		resp, respErr := row.toResponse(true)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scopeStatuses maps a scope onto the status values it covers.
func scopeStatuses(scope OrderScope) []int {
	switch scope {
	case ScopeActive:
		return []int{int(order.Pending), int(order.Processing), int(order.Shipped)}
	case ScopeHistory:
		return []int{int(order.Delivered), int(order.Cancelled)}
	default:
		return []int{
			int(order.Pending), int(order.Processing), int(order.Shipped),
			int(order.Delivered), int(order.Cancelled),
		}
	}
}
