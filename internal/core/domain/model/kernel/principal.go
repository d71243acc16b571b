package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role classifies an authenticated principal. The identity provider resolves
// it before a request reaches this core; the core only consumes it.
type Role int

const (
	// RoleUnknown is the invalid zero value.
	RoleUnknown Role = iota

	// RoleCustomer places, reads, and cancels their own orders.
	RoleCustomer

	// RoleAdmin manages order statuses and reads aggregated reports.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString maps the identity provider's role string onto a Role.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the lowercase role name, "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects any value outside the declared role set.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Principal is the authenticated actor behind a request, as resolved by the
// external identity provider. It is a value object: immutable and comparable.
type Principal struct {
	id   UUID
	role Role
}

// NewPrincipal creates a validated principal from its id and role.
func NewPrincipal(id UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{id: id, role: role}, nil
}

// ID returns the principal's unique identifier.
func (p Principal) ID() UUID {
	return p.id
}

// Role returns the principal's resolved role.
func (p Principal) Role() Role {
	return p.role
}

// Validate ensures the principal was created via NewPrincipal.
func (p Principal) Validate() error {
	if err := p.id.Validate(); err != nil {
		return err
	}
	return p.role.Validate()
}
