package notification

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Type categorizes what a notification is about.
type Type int

const (
	// TypeUnknown is the zero value, representing an invalid type
	TypeUnknown Type = iota

	// TypeOrder marks order lifecycle notifications
	TypeOrder

	// TypePromo marks promotional notifications
	TypePromo

	// TypeSystem marks platform notifications
	TypeSystem

	// TypeInfo marks informational notifications such as the low-stock signal
	TypeInfo
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		TypeOrder:   "order",
		TypePromo:   "promo",
		TypeSystem:  "system",
		TypeInfo:    "info",
	}
}

func getValidTypeStrings() map[string]Type {
	return map[string]Type{
		"order":  TypeOrder,
		"promo":  TypePromo,
		"system": TypeSystem,
		"info":   TypeInfo,
	}
}

// TypeFromString converts the wire representation into a Type.
func TypeFromString(s string) (Type, error) {
	if t, ok := getValidTypeStrings()[s]; ok {
		return t, nil
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid notification type", s))
}

// String returns the wire representation of the type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return getTypeStrings()[TypeUnknown]
}

// Validate checks that the type is one of the defined values.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t.String()]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}
