package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveryCodeQueryIsNotConstructed = errors.New(
	"GetDeliveryCodeQuery must be created via NewGetDeliveryCodeQuery constructor",
)

// GetDeliveryCodeQuery retrieves the delivery code of a shipped order for its
// owner. This is the dedicated code read path; no other projection returns a
// code to anyone but the owner.
type GetDeliveryCodeQuery struct {
	orderID   kernel.UUID
	requester kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryCodeQuery creates a query retrieving the order's delivery code.
func NewGetDeliveryCodeQuery(orderID kernel.UUID, requester kernel.UUID) (GetDeliveryCodeQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryCodeQuery{}, err
	}
	if err := requester.Validate(); err != nil {
		return GetDeliveryCodeQuery{}, err
	}

	return GetDeliveryCodeQuery{
		orderID:   orderID,
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryCodeQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order.
func (q GetDeliveryCodeQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Requester returns the id of the principal asking for the code.
func (q GetDeliveryCodeQuery) Requester() kernel.UUID {
	return q.requester
}

// GetDeliveryCodeQueryResponse carries the code of a shipped order.
type GetDeliveryCodeQueryResponse struct {
	OrderID      kernel.UUID
	DeliveryCode string
}
