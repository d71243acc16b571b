package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryCodeQueryHandler retrieves delivery codes from the database.
type GetDeliveryCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryCodeQueryHandler creates a handler for delivery code queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryCodeQueryHandler(db *gorm.DB) GetDeliveryCodeQueryHandler {
	return GetDeliveryCodeQueryHandler{db: db}
}

// Handle executes the query.
//
// Access rules, checked in order:
//   - unknown order ids are not found
//   - non-owners are forbidden, admins included
//   - anything but Shipped reports an invalid state for the code
func (h GetDeliveryCodeQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryCodeQuery,
) (GetDeliveryCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryCodeQueryResponse{}, err
	}

	var (
		ownerID      uuid.UUID
		status       int
		deliveryCode *string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT owner_id, status, delivery_code
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&ownerID, &status, &deliveryCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryCodeQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetDeliveryCodeQueryResponse{}, err
	}

	owner, err := kernelUUID(ownerID)
	if err != nil {
		return GetDeliveryCodeQueryResponse{}, err
	}
	if !owner.IsEqual(query.Requester()) {
		return GetDeliveryCodeQueryResponse{}, errs.NewForbiddenError("read delivery code")
	}

	if order.Status(status) != order.Shipped || deliveryCode == nil {
		return GetDeliveryCodeQueryResponse{}, errs.NewInvalidTransitionError(
			order.Status(status).String(), order.Shipped.String())
	}

	return GetDeliveryCodeQueryResponse{
		OrderID:      query.OrderID(),
		DeliveryCode: *deliveryCode,
	}, nil
}
