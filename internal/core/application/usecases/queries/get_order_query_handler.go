package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Orders owned by someone else are reported as not
// found to customers, so order ids cannot be probed; admins may read any
// order but never receive the delivery code through this projection.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectOrderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(row.scanTargets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderResponse{}, err
	}

	ownerID, err := kernelUUID(row.ownerID)
	if err != nil {
		return OrderResponse{}, err
	}

	requester := query.Requester()
	isOwner := ownerID.IsEqual(requester.ID())
	if !isOwner && !requester.Role().IsAdmin() {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return row.toResponse(isOwner)
}
