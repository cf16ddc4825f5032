package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// DefaultCurrency is applied when a price is built without a currency code.
const DefaultCurrency = "mxn"

var (
	// ErrPriceIsNotConstructed is returned when a Price was not created via NewPrice.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

	// ErrCurrencyMismatch is returned when prices in different currencies are combined.
	ErrCurrencyMismatch = errors.New("currencies do not match")
)

// Price is a non-negative amount of money in a currency.
//
// Example:
//
//	unit, _ := kernel.NewPrice(10, "")    // 10 mxn
//	qty, _ := kernel.NewQuantity(2)
//	total, _ := unit.Multiply(qty)         // 20 mxn
type Price struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string
	guard    guard.ConstructorGuard
}

// NewPrice returns a Price of amount in currency. An empty currency becomes
// DefaultCurrency. It fails when amount is negative or not a finite number.
func NewPrice(amount float64, currency string) (Price, error) {
	p := Price{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setAmount(amount), p.setCurrency(currency)); err != nil {
		return Price{}, err
	}

	return p, nil
}

// Amount returns the amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Currency returns the currency code.
func (p Price) Currency() string {
	return p.currency
}

// Multiply returns a new Price of amount × quantity in the same currency.
func (p Price) Multiply(q Quantity) (Price, error) {
	if err := errors.Join(p.Validate(), q.Validate()); err != nil {
		return Price{}, err
	}
	return NewPrice(p.amount*float64(q.Value()), p.currency)
}

// Add returns the sum of two prices. Both must share the currency.
func (p Price) Add(other Price) (Price, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return Price{}, err
	}
	if p.currency != other.currency {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, p.currency, other.currency),
		)
	}
	return NewPrice(p.amount+other.amount, p.currency)
}

// IsEqual compares amount and currency.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount && p.currency == other.currency
}

// String renders the price as "<amount> <currency>".
func (p Price) String() string {
	return fmt.Sprintf("%.2f %s", p.amount, p.currency)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p *Price) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, "unbounded")
	}
	p.amount = amount
	return nil
}

func (p *Price) setCurrency(currency string) error {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	p.currency = currency
	return nil
}
