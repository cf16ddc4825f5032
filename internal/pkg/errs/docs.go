// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups its error types into a few kinds:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError and
//     VersionIsInvalidError. They are raised by value objects and aggregates when a
//     structural invariant does not hold. IsValidation reports membership in this kind.
//   - BusinessRuleViolationError: raised by use cases when an operation presupposes a
//     state that does not hold, e.g. acting on an order that does not exist.
//   - ObjectNotFoundError: raised by adapters when a lookup by identity finds nothing.
//   - PersistenceError: a classified storage driver failure.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on every kind
package errs
