package order

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// deliveryCodeBytes is the number of random bytes behind a delivery code:
// 3 bytes give 24 bits of entropy, rendered as 6 hex characters.
const deliveryCodeBytes = 3

// DeliveryCode is the one-time secret proving physical handoff of an order.
// It is generated from a cryptographically secure random source at order
// creation, so it is never derivable from the order id, creation time, or any
// other order field. The code is case-normalized to uppercase hex.
//
// DeliveryCode is a value object; the zero value is invalid.
type DeliveryCode struct {
	value string
}

// GenerateDeliveryCode produces a fresh code from crypto/rand.
func GenerateDeliveryCode() (DeliveryCode, error) {
	buf := make([]byte, deliveryCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return DeliveryCode{}, errs.NewDependencyFailureErrorWithCause("random source", err)
	}

	return DeliveryCode{value: strings.ToUpper(hex.EncodeToString(buf))}, nil
}

// DeliveryCodeFromString reconstructs a code from its persisted or scanned
// representation, normalizing case and validating the alphabet and length.
func DeliveryCodeFromString(s string) (DeliveryCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	if len(normalized) != deliveryCodeBytes*2 {
		return DeliveryCode{}, errs.NewValueIsInvalidErrorWithCause("deliveryCode",
			fmt.Errorf("code must be %d characters", deliveryCodeBytes*2))
	}
	if _, err := hex.DecodeString(normalized); err != nil {
		return DeliveryCode{}, errs.NewValueIsInvalidErrorWithCause("deliveryCode", err)
	}

	return DeliveryCode{value: normalized}, nil
}

// String returns the uppercase hex representation.
func (c DeliveryCode) String() string {
	return c.value
}

// Matches compares the stored code against a presented one in constant time,
// so verification leaks no timing information about the stored secret.
func (c DeliveryCode) Matches(presented string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(presented))
	return subtle.ConstantTimeCompare([]byte(c.value), []byte(normalized)) == 1
}

// Validate rejects the zero value.
func (c DeliveryCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("deliveryCode must be created via GenerateDeliveryCode or DeliveryCodeFromString")
	}
	return nil
}
