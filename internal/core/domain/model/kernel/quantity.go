package kernel

import (
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when a Quantity was not created via NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a non-negative count of units of a product. Zero is allowed.
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewQuantity returns a Quantity holding value.
// It fails with errs.ValueIsOutOfRangeError when value is negative.
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, 0, "unbounded")
	}
	return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Value returns the count.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate returns ErrQuantityIsNotConstructed for a zero-value Quantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
