package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListAllOrdersQueryHandler lists orders for the admin dashboard.
type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAllOrdersQueryHandler creates a handler for the admin order listing.
// Requires a GORM database connection for query execution.
func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

// Handle executes the query, newest first. Delivery codes are never part of
// the admin listing; the only read path exposing a code is the owner's.
func (h ListAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAllOrdersQuery,
) (ListAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAllOrdersQueryResponse{}, err
	}

	sql := `
		SELECT ` + selectOrderColumns + `
		FROM orders
	`
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		sql += ` WHERE status = ?`
		args = append(args, int(*status))
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListAllOrdersQueryResponse{}, err
	}
	defer rows.Close()

	resp := ListAllOrdersQueryResponse{Orders: make([]OrderResponse, 0)}
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return ListAllOrdersQueryResponse{}, err
		}

		orderResp, respErr := row.toResponse(false)
		if respErr != nil {
			return ListAllOrdersQueryResponse{}, respErr
		}
		resp.Orders = append(resp.Orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return ListAllOrdersQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status != ?
	`, int(order.Cancelled)).Row().Scan(&resp.TotalRevenue)
	if err != nil {
		return ListAllOrdersQueryResponse{}, err
	}

	return resp, nil
}
