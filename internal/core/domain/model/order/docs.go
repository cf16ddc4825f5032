// Package order provides the Order aggregate of the ordering service and the value
// objects it is composed of.
//
// The package includes:
//   - Order: the aggregate root, a consistency boundary around one customer order
//   - Item: a line of the order, owned exclusively by its Order
//   - Status: the closed set of lifecycle states and the optional transition table
//   - DeliveryAddress and SpecialInstructions: self-validating value objects
//
// Key business rules:
//   - Every value object validates its invariant at construction and fails with a
//     validation error from internal/pkg/errs; invalid instances cannot exist
//   - id, restaurant and creation time of an order never change after construction
//   - Items have no identity outside their order; they are replaced wholesale on save
//   - ChangeStatus accepts any valid status; TransitionTo enforces the transition table
//
// Persisted orders are rebuilt with RestoreOrder and RestoreItem, which re-run every
// check the constructors perform so corrupted rows fail fast on load.
package order
