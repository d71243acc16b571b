package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListOwnerOrdersQueryIsNotConstructed = errors.New(
	"ListOwnerOrdersQuery must be created via NewListOwnerOrdersQuery constructor",
)

// OrderScope selects which slice of a customer's orders to list.
type OrderScope string

const (
	// ScopeActive lists Pending, Processing and Shipped orders.
	ScopeActive OrderScope = "active"

	// ScopeHistory lists Delivered and Cancelled orders.
	ScopeHistory OrderScope = "history"

	// ScopeAll lists everything.
	ScopeAll OrderScope = "all"
)

// Validate checks the scope is one of the declared values.
func (s OrderScope) Validate() error {
	switch s {
	case ScopeActive, ScopeHistory, ScopeAll:
		return nil
	default:
		return errs.NewValueIsInvalidError("scope")
	}
}

// ListOwnerOrdersQuery lists a customer's own orders, newest first.
type ListOwnerOrdersQuery struct {
	ownerID kernel.UUID
	scope   OrderScope

	guard guard.ConstructorGuard
}

// NewListOwnerOrdersQuery creates a query listing the owner's orders in the
// given scope.
func NewListOwnerOrdersQuery(ownerID kernel.UUID, scope OrderScope) (ListOwnerOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListOwnerOrdersQuery{}, err
	}
	if err := scope.Validate(); err != nil {
		return ListOwnerOrdersQuery{}, err
	}

	return ListOwnerOrdersQuery{
		ownerID: ownerID,
		scope:   scope,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOwnerOrdersQueryIsNotConstructed)
}

// OwnerID returns the id of the customer whose orders are listed.
func (q ListOwnerOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Scope returns the requested order scope.
func (q ListOwnerOrdersQuery) Scope() OrderScope {
	return q.scope
}
