package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering service. It groups the delivery
// address, the item lines and the lifecycle status of one customer order and is
// saved and loaded as a single unit.
//
// Order follows these invariants:
//   - id, restaurant and customer are valid identifiers
//   - id, restaurant and creation time never change
//   - address and every item were built by their constructors
//   - status is a member of the Status enumeration
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// restaurantID references the restaurant preparing the order
	restaurantID kernel.UUID

	// customerID references the customer; reassignable
	customerID kernel.UUID

	// address is the delivery destination
	address DeliveryAddress

	// items are the order lines in order of entry
	items []*Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at construction
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an Order stamped with the current UTC time, truncated to
// microseconds. It accepts any valid status; the create use case is the one
// that forces new orders to Confirmed.
//
// Example:
//
//	gps, _ := kernel.NewCoordinates(19.43, -99.13)
//	address, _ := order.NewDeliveryAddress("Reforma", "CDMX", 10, "06600", gps)
//	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, customerID, address, items, order.Confirmed)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, restaurantID, customerID kernel.UUID,
	address DeliveryAddress,
	items []*Item,
	status Status,
) (*Order, error) {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	return RestoreOrder(id, restaurantID, customerID, address, items, status, createdAt)
}

// RestoreOrder rebuilds an Order from persistence, keeping the stored creation time.
// It performs the same checks as NewOrder, so a corrupted record fails to load.
func RestoreOrder(
	id, restaurantID, customerID kernel.UUID,
	address DeliveryAddress,
	items []*Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setCustomerID(customerID),
		order.setAddress(address),
		order.setItems(items),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery address.
func (o *Order) Address() DeliveryAddress {
	return o.address
}

// Items returns the order lines in order of entry. The slice is a copy; the
// items are shared so that item level updates apply to the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Confirm sets the status to Confirmed regardless of the current status.
func (o *Order) Confirm() {
	o.status = Confirmed
}

// ChangeStatus replaces the status with any valid status. No transition rule
// is applied; use TransitionTo for that.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// TransitionTo moves the order to next if the transition table allows it.
//
// Example:
//
//	if err := o.TransitionTo(order.Preparing); err != nil {
//	    // Confirmed -> Preparing is allowed, Delivered -> Preparing is not
//	}
func (o *Order) TransitionTo(next Status) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}
	o.status = next
	return nil
}

// ReassignCustomer moves the order to another customer.
func (o *Order) ReassignCustomer(customerID kernel.UUID) error {
	return o.setCustomerID(customerID)
}

// Total returns the sum of all line totals. An order without items totals zero in
// kernel.DefaultCurrency. Lines in different currencies cannot be summed and fail
// with a validation error.
func (o *Order) Total() (kernel.Price, error) {
	total, err := kernel.NewPrice(0, "")
	if err != nil {
		return kernel.Price{}, err
	}

	for idx, item := range o.items {
		line, err := item.Total()
		if err != nil {
			return kernel.Price{}, err
		}
		if idx == 0 {
			total = line
			continue
		}
		if total, err = total.Add(line); err != nil {
			return kernel.Price{}, err
		}
	}

	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddress(address DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
