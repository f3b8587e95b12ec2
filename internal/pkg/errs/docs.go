// Package errs provides standardized error types for the storefront backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure taxonomy of the order and
// catalog core:
//   - ValueIsRequiredError: a mandatory value is missing (rejected input)
//   - ValueIsInvalidError: a value is present but invalid (rejected input)
//   - ValueIsOutOfRangeError: a numeric value falls outside its interval
//   - ObjectNotFoundError: the target entity does not exist
//   - ObjectAlreadyExistsError: a uniqueness conflict (duplicate category)
//   - InvalidTransitionError: an order status change the transition table forbids
//   - SequenceExhaustedError: no order identifiers left for the current day
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, enabling errors.Is classification
//
// Transport adapters rely on the sentinels to translate core failures into
// response codes without importing concrete error types.
package errs
