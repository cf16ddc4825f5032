package order

import (
	"fmt"
	"unicode/utf8"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// MaxSpecialInstructionsLength is the maximum number of characters of an item note.
const MaxSpecialInstructionsLength = 500

// ErrSpecialInstructionsAreNotConstructed is returned for a zero-value SpecialInstructions.
var ErrSpecialInstructionsAreNotConstructed = errs.NewValueIsRequiredError(
	"special instructions must be created via NewSpecialInstructions")

// SpecialInstructions is a free-text note attached to an item, e.g. "no onions".
type SpecialInstructions struct {
	text  string
	guard guard.ConstructorGuard
}

// NewSpecialInstructions fails with errs.ValueIsOutOfRangeError when text is
// longer than MaxSpecialInstructionsLength characters.
func NewSpecialInstructions(text string) (SpecialInstructions, error) {
	if n := utf8.RuneCountInString(text); n > MaxSpecialInstructionsLength {
		return SpecialInstructions{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"instructions", n, 0, MaxSpecialInstructionsLength,
			fmt.Errorf("instructions must be at most %d characters", MaxSpecialInstructionsLength),
		)
	}
	return SpecialInstructions{text: text, guard: guard.NewConstructorGuard()}, nil
}

// Value returns the note.
func (s SpecialInstructions) Value() string {
	return s.text
}

// IsEmpty reports whether the note has no text.
func (s SpecialInstructions) IsEmpty() bool {
	return s.text == ""
}

func (s SpecialInstructions) IsEqual(other SpecialInstructions) bool {
	return s.text == other.text
}

// Validate returns ErrSpecialInstructionsAreNotConstructed for a zero value.
func (s SpecialInstructions) Validate() error {
	return s.guard.Validate(ErrSpecialInstructionsAreNotConstructed)
}
