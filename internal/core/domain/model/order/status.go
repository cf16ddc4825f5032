package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Values are persisted and transported with their Spanish wire names
// ("Recibido", "Confirmado", ...). The enumeration is closed: Unknown (0)
// is never a valid status and helps catch uninitialized values.
//
// Transition table (enforced only by Order.TransitionTo):
//
//	Received ──> Confirmed ──> Preparing ──> Ready ──> OnTheWay ──> Delivered
//	    │            │             │           │
//	    └────────────┴─────────────┴───────────┴──────> Canceled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Received is set when the restaurant has got the order but not accepted it yet.
	Received

	// Confirmed is the status every newly created order starts with.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order waits for pickup.
	Ready

	// OnTheWay indicates a courier is carrying the order.
	OnTheWay

	// Delivered is a final state.
	Delivered

	// Canceled is a final state.
	Canceled
)

func getStatusWireValues() map[Status]string {
	//nolint:exhaustive // Unknown has no wire value
	return map[Status]string{
		Received:  "Recibido",
		Confirmed: "Confirmado",
		Preparing: "EnPreparación",
		Ready:     "Listo",
		OnTheWay:  "EnCamino",
		Delivered: "Entregado",
		Canceled:  "Cancelado",
	}
}

func getStatusNames() map[Status]string {
	//nolint:exhaustive // Unknown has no name
	return map[Status]string{
		Received:  "RECEIVED",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Ready:     "READY",
		OnTheWay:  "ON_THE_WAY",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no successors
	return map[Status][]Status{
		Received:  {Confirmed, Canceled},
		Confirmed: {Preparing, Canceled},
		Preparing: {Ready, Canceled},
		Ready:     {OnTheWay, Canceled},
		OnTheWay:  {Delivered},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Received, Confirmed, Preparing, Ready, OnTheWay, Delivered, Canceled}
}

// ParseStatus converts a wire value ("Entregado") or a constant name ("DELIVERED")
// into a Status. Anything else fails with errs.ValueIsInvalidError.
//
// Example:
//
//	s, err := order.ParseStatus("Entregado") // order.Delivered
func ParseStatus(value string) (Status, error) {
	trimmed := strings.TrimSpace(value)

	for s, wire := range getStatusWireValues() {
		if wire == trimmed {
			return s, nil
		}
	}
	for s, name := range getStatusNames() {
		if name == trimmed {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of %s", value, strings.Join(wireValues(), ", ")),
	)
}

// Validate checks that the status is a member of the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusWireValues()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire value, or "Unknown" for values outside the enumeration.
func (s Status) String() string {
	if wire, ok := getStatusWireValues()[s]; ok {
		return wire
	}
	return "Unknown"
}

// Name returns the constant name, e.g. "ON_THE_WAY".
func (s Status) Name() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns an errs.ValueIsInvalidError when next is not
// reachable from s.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}
	return nil
}

func wireValues() []string {
	values := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		values = append(values, s.String())
	}
	return values
}
