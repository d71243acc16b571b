package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GetAdminStatsQueryHandler computes dashboard aggregates from the database.
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for the stats query.
// Requires a GORM database connection for query execution.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

// Handle executes the aggregation. Cancelled orders count towards TotalOrders
// and StatusCounts but never towards TotalSales.
func (h GetAdminStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatsQuery,
) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	resp := GetAdminStatsQueryResponse{
		StatusCounts: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetAdminStatsQueryResponse{}, err
		}
		resp.StatusCounts[order.Status(status).String()] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status != ?
	`, int(order.Cancelled)).Row().Scan(&resp.TotalSales)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM products
		WHERE stock < ?
	`, product.LowStockThreshold).Row().Scan(&resp.LowStockCount)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	return resp, nil
}
