// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full failure taxonomy of the order lifecycle core:
//   - ObjectNotFoundError: an entity is absent
//   - ForbiddenError: principal/ownership mismatch
//   - InvalidTransitionError: an order status precondition was violated
//   - AlreadyCompleteError: re-entry into a delivered order
//   - CodeMismatchError: delivery verification failed
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - DependencyFailureError: catalog/ledger unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Public operations surface exactly one of these types; no operation is allowed
// to leak an unstructured fault across the application boundary.
package errs
