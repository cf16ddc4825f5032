// Package orderrepo persists the Order aggregate with GORM. It owns the versioned
// record shape (OrderDTO, OrderItemDTO) and the mapping between records and
// domain objects.
package orderrepo

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the shape version written with every order row.
// Rows carrying another version are refused on load.
const CurrentSchemaVersion = 1

// OrderDTO represents the database structure of the order aggregate root.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID      `gorm:"type:uuid;not null"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status        string         `gorm:"type:varchar(32);not null;index"`
	Address       AddressDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	SchemaVersion int            `gorm:"not null;default:1"`
	CreatedAt     time.Time      `gorm:"not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded in the orders table.
type AddressDTO struct {
	Street     string  `gorm:"not null"`
	City       string  `gorm:"not null"`
	Number     int     `gorm:"not null"`
	PostalCode string  `gorm:"not null"`
	Latitude   float64 `gorm:"type:double precision;not null"`
	Longitude  float64 `gorm:"type:double precision;not null"`
}

// OrderItemDTO is one order line. Lines have no identity of their own; the key is
// the owning order plus the position of the line within it.
type OrderItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	Quantity     int       `gorm:"not null"`
	PriceAmount  float64   `gorm:"type:numeric;not null"`
	Currency     string    `gorm:"type:varchar(8);not null"`
	Instructions *string   `gorm:"type:varchar(500)"`
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AutoMigrate creates or updates the orders and order_items tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &OrderItemDTO{})
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()
	items := aggregate.Items()

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Status:       aggregate.Status().String(),
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			Number:     address.Number(),
			PostalCode: address.PostalCode(),
			Latitude:   address.GPS().Latitude(),
			Longitude:  address.GPS().Longitude(),
		},
		SchemaVersion: CurrentSchemaVersion,
		CreatedAt:     aggregate.CreatedAt(),
		Items:         make([]OrderItemDTO, 0, len(items)),
	}

	for position, item := range items {
		var instructions *string
		if note := item.Instructions(); note != nil {
			text := note.Value()
			instructions = &text
		}

		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:      dto.ID,
			Position:     position,
			ProductID:    item.ProductID().Bytes(),
			Quantity:     item.Quantity().Value(),
			PriceAmount:  item.UnitPrice().Amount(),
			Currency:     item.UnitPrice().Currency(),
			Instructions: instructions,
		})
	}

	return dto
}

// toDomain validates a stored record and rebuilds the aggregate through the
// domain constructors. Any violation is reported as a validation error.
func toDomain(dto OrderDTO) (*order.Order, error) {
	if dto.SchemaVersion != CurrentSchemaVersion {
		return nil, errs.NewVersionIsInvalidError("schema_version", dto.SchemaVersion, CurrentSchemaVersion)
	}

	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	restaurantID, restaurantErr := kernel.UUIDFromBytes(dto.RestaurantID[:])
	customerID, customerErr := kernel.UUIDFromBytes(dto.CustomerID[:])
	status, statusErr := order.ParseStatus(dto.Status)
	address, addressErr := addressToDomain(dto.Address)
	items, itemsErr := itemsToDomain(dto.Items)

	if err := errors.Join(idErr, restaurantErr, customerErr, statusErr, addressErr, itemsErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, restaurantID, customerID, address, items, status, dto.CreatedAt)
}

func addressToDomain(dto AddressDTO) (order.DeliveryAddress, error) {
	gps, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return order.DeliveryAddress{}, err
	}
	return order.NewDeliveryAddress(dto.Street, dto.City, dto.Number, dto.PostalCode, gps)
}

func itemsToDomain(dtos []OrderItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}

		item, err := order.RestoreItem(productID, dto.Quantity, dto.PriceAmount, dto.Currency, dto.Instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
