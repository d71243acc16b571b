package notification

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Target defines the audience of a notification.
type Target int

const (
	// TargetUnknown is the zero value, representing an invalid target
	TargetUnknown Target = iota

	// TargetAll addresses every principal
	TargetAll

	// TargetCustomer addresses every customer
	TargetCustomer

	// TargetAdmin addresses every administrator
	TargetAdmin

	// TargetSpecific addresses a single principal named by the recipient id
	TargetSpecific
)

func getTargetStrings() map[Target]string {
	return map[Target]string{
		TargetUnknown:  "unknown",
		TargetAll:      "all",
		TargetCustomer: "customer",
		TargetAdmin:    "admin",
		TargetSpecific: "specific",
	}
}

func getValidTargetStrings() map[string]Target {
	return map[string]Target{
		"all":      TargetAll,
		"customer": TargetCustomer,
		"admin":    TargetAdmin,
		"specific": TargetSpecific,
	}
}

// TargetFromString converts the wire representation into a Target.
func TargetFromString(s string) (Target, error) {
	if t, ok := getValidTargetStrings()[s]; ok {
		return t, nil
	}
	return TargetUnknown, errs.NewValueIsInvalidErrorWithCause("target",
		fmt.Errorf("%q is not a valid notification target", s))
}

// String returns the wire representation of the target.
func (t Target) String() string {
	if s, ok := getTargetStrings()[t]; ok {
		return s
	}
	return getTargetStrings()[TargetUnknown]
}

// Validate checks that the target is one of the defined values.
func (t Target) Validate() error {
	if _, ok := getValidTargetStrings()[t.String()]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("target", fmt.Errorf("%d is not a valid notification target", t))
	}
	return nil
}
