package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// Delivered and Cancelled are terminal: no outgoing transitions exist.
// The administrative path is deliberately permissive and may set any valid
// status from any non-terminal state (including re-setting the current one);
// the customer cancellation path is restricted to pre-shipment states.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Stock for its line items is reserved while the order is in this status.
	Pending

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order is in transit. The delivery code is
	// exposed to the owner only while the order is in this status.
	Shipped

	// Delivered indicates the physical handoff was confirmed by a
	// successful delivery-code verification. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and all reserved stock
	// was restored. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getTransitionTable returns the explicit (current, requested) -> allowed table
// for administrative status updates. Non-terminal states accept every valid
// status, terminal states accept none.
func getTransitionTable() map[Status]map[Status]bool {
	anyValid := func() map[Status]bool {
		allowed := make(map[Status]bool, len(getValidStatusStrings()))
		for s := range getValidStatusStrings() {
			allowed[s] = true
		}
		return allowed
	}

	return map[Status]map[Status]bool{
		Pending:    anyValid(),
		Processing: anyValid(),
		Shipped:    anyValid(),
		Delivered:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the persisted/user-facing status name.
// The match is exact; an unrecognized name yields an invalid-value error,
// keeping the status set closed against arbitrary strings.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the declared enum.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value, including
// invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is still moving through the happy path.
// Active statuses are Pending, Processing, and Shipped.
func (s Status) IsActive() bool {
	return s == Pending || s == Processing || s == Shipped
}

// CanTransitionTo consults the explicit transition table for the
// administrative update path.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := getTransitionTable()[s]
	if !ok {
		return false
	}
	return allowed[target]
}

// AdminSet transitions to target via the administrative path.
//
// Valid transitions: any valid target from any non-terminal state, including
// re-setting the current status (the update still appends history and
// notifies the owner).
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) when target is not a declared status or the current status
//     is terminal
func (s Status) AdminSet(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// CustomerCancel transitions to Cancelled via the customer path.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Cancellation after shipment is impossible: Shipped, Delivered, and
// Cancelled all reject the transition.
func (s Status) CustomerCancel() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// Deliver transitions Shipped -> Delivered. Delivery can only be confirmed
// from the shipped state, never jumped into from Pending or Processing.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}

	return Delivered, nil
}
