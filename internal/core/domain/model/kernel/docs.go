// Package kernel provides the shared domain primitives of the ordering system.
//
// The package includes:
//   - UUID: identity of aggregates and opaque references to external entities
//   - Quantity: a non-negative count of units
//   - Price: a non-negative amount in a currency, "mxn" unless stated otherwise
//   - Coordinates: a GPS latitude/longitude pair
//
// Every primitive validates its invariant at construction and returns a validation
// error from internal/pkg/errs when the invariant does not hold. Values are immutable:
// operations return new values instead of mutating the receiver. The zero value of each
// type is invalid and fails Validate.
package kernel
