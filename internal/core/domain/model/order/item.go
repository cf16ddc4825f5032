package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product, how many units and the unit price.
// Items have no identity of their own; an Order owns them exclusively.
type Item struct {
	productID    kernel.UUID
	quantity     kernel.Quantity
	unitPrice    kernel.Price
	instructions *SpecialInstructions

	isConstructed bool
}

// NewItem creates an order line. instructions may be nil; an empty note is
// normalized to nil so that absent and blank notes are the same thing.
//
// Example:
//
//	qty, _ := kernel.NewQuantity(2)
//	price, _ := kernel.NewPrice(10, "mxn")
//	item, err := order.NewItem(productID, qty, price, nil)
//	total, _ := item.Total() // 20 mxn
func NewItem(
	productID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Price,
	instructions *SpecialInstructions,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setInstructions(instructions),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item from persisted primitives, running every value
// object constructor again. instructions is nil when no note was stored.
func RestoreItem(
	productID kernel.UUID,
	quantity int,
	amount float64,
	currency string,
	instructions *string,
) (*Item, error) {
	qty, qtyErr := kernel.NewQuantity(quantity)
	price, priceErr := kernel.NewPrice(amount, currency)

	var note *SpecialInstructions
	var noteErr error
	if instructions != nil {
		var si SpecialInstructions
		si, noteErr = NewSpecialInstructions(*instructions)
		note = &si
	}

	if err := errors.Join(qtyErr, priceErr, noteErr); err != nil {
		return nil, err
	}

	return NewItem(productID, qty, price, note)
}

// Validate ensures the item was created via NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the opaque reference to the product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units.
func (i *Item) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Price {
	return i.unitPrice
}

// Instructions returns the note, or nil when there is none.
func (i *Item) Instructions() *SpecialInstructions {
	if i.instructions == nil {
		return nil
	}
	note := *i.instructions
	return &note
}

// Total returns unit price × quantity in the unit price currency.
func (i *Item) Total() (kernel.Price, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// UpdateQuantity replaces the quantity. The item is unchanged on failure.
func (i *Item) UpdateQuantity(value int) error {
	qty, err := kernel.NewQuantity(value)
	if err != nil {
		return err
	}
	i.quantity = qty
	return nil
}

// UpdateInstructions replaces the note. An empty text removes it.
func (i *Item) UpdateInstructions(text string) error {
	note, err := NewSpecialInstructions(text)
	if err != nil {
		return err
	}
	return i.setInstructions(&note)
}

// ClearInstructions removes the note.
func (i *Item) ClearInstructions() {
	i.instructions = nil
}

// IsEqual compares every field of two items.
func (i *Item) IsEqual(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}

	sameNote := (i.instructions == nil && other.instructions == nil) ||
		(i.instructions != nil && other.instructions != nil && i.instructions.IsEqual(*other.instructions))

	return sameNote &&
		i.productID.IsEqual(other.productID) &&
		i.quantity.IsEqual(other.quantity) &&
		i.unitPrice.IsEqual(other.unitPrice)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setInstructions(instructions *SpecialInstructions) error {
	if instructions == nil {
		i.instructions = nil
		return nil
	}
	if err := instructions.Validate(); err != nil {
		return err
	}
	if instructions.IsEmpty() {
		i.instructions = nil
		return nil
	}
	note := *instructions
	i.instructions = &note
	return nil
}
