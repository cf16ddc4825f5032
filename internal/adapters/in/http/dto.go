package http

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

type CreateOrderRequest struct {
	CustomerID      string             `json:"customerId"`
	RestaurantID    string             `json:"restaurantId"`
	DeliveryAddress DeliveryAddressDTO `json:"deliveryAddress"`
	Items           []OrderItemRequest `json:"items"`
}

type DeliveryAddressDTO struct {
	Street     string  `json:"street"`
	Number     int     `json:"number"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type OrderItemRequest struct {
	ProductID           string   `json:"productId"`
	Quantity            int      `json:"quantity"`
	Price               PriceDTO `json:"price"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
}

type PriceDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	RestaurantID    string              `json:"restaurantId"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	DeliveryAddress DeliveryAddressDTO  `json:"deliveryAddress"`
	Items           []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ProductID           string  `json:"productId"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	Currency            string  `json:"currency"`
	SpecialInstructions *string `json:"specialInstructions"`
}

// toCommand converts the request into a CreateOrderCommand. Field failures are
// collected and reported together.
func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	customerID, customerErr := kernel.UUIDFromString(r.CustomerID)
	if customerErr != nil {
		customerErr = errs.NewValueIsInvalidErrorWithCause("customerId", customerErr)
	}
	restaurantID, restaurantErr := kernel.UUIDFromString(r.RestaurantID)
	if restaurantErr != nil {
		restaurantErr = errs.NewValueIsInvalidErrorWithCause("restaurantId", restaurantErr)
	}
	address, addressErr := r.DeliveryAddress.toDomain()
	items, itemsErr := r.itemsToCommand()

	if err := errors.Join(customerErr, restaurantErr, addressErr, itemsErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(customerID, restaurantID, address, items)
}

func (r CreateOrderRequest) itemsToCommand() ([]commands.CreateOrderItem, error) {
	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	var itemErrs []error

	for i, raw := range r.Items {
		item, err := raw.toCommand()
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}

	return items, errors.Join(itemErrs...)
}

func (r OrderItemRequest) toCommand() (commands.CreateOrderItem, error) {
	productID, productErr := kernel.UUIDFromString(r.ProductID)
	quantity, quantityErr := kernel.NewQuantity(r.Quantity)
	price, priceErr := kernel.NewPrice(r.Price.Amount, r.Price.Currency)

	var (
		instructions    *order.SpecialInstructions
		instructionsErr error
	)
	if r.SpecialInstructions != nil {
		parsed, err := order.NewSpecialInstructions(*r.SpecialInstructions)
		instructions, instructionsErr = &parsed, err
	}

	if err := errors.Join(productErr, quantityErr, priceErr, instructionsErr); err != nil {
		return commands.CreateOrderItem{}, err
	}

	return commands.CreateOrderItem{
		ProductID:    productID,
		Quantity:     quantity,
		UnitPrice:    price,
		Instructions: instructions,
	}, nil
}

func (d DeliveryAddressDTO) toDomain() (order.DeliveryAddress, error) {
	gps, err := kernel.NewCoordinates(d.Latitude, d.Longitude)
	if err != nil {
		return order.DeliveryAddress{}, err
	}
	return order.NewDeliveryAddress(d.Street, d.City, d.Number, d.PostalCode, gps)
}

func toOrderResponse(o *order.Order) OrderResponse {
	address := o.Address()

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		var instructions *string
		if si := item.Instructions(); si != nil {
			text := si.Value()
			instructions = &text
		}

		items = append(items, OrderItemResponse{
			ProductID:           item.ProductID().String(),
			Quantity:            item.Quantity().Value(),
			Price:               item.UnitPrice().Amount(),
			Currency:            item.UnitPrice().Currency(),
			SpecialInstructions: instructions,
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		DeliveryAddress: DeliveryAddressDTO{
			Street:     address.Street(),
			Number:     address.Number(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Latitude:   address.GPS().Latitude(),
			Longitude:  address.GPS().Longitude(),
		},
		Items: items,
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}
