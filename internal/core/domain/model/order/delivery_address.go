package order

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned for a zero-value DeliveryAddress.
var ErrDeliveryAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress")

// DeliveryAddress is where an order is delivered to.
//
// Invariants:
//   - street, city and postal code are not blank
//   - gps holds constructed Coordinates
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	number     int
	postalCode string
	gps        kernel.Coordinates
	guard      guard.ConstructorGuard
}

// NewDeliveryAddress builds an address and reports every violated invariant at once.
//
// Example:
//
//	gps, _ := kernel.NewCoordinates(19.4326, -99.1332)
//	addr, err := order.NewDeliveryAddress("Av. Reforma", "CDMX", 222, "06600", gps)
func NewDeliveryAddress(
	street, city string,
	number int,
	postalCode string,
	gps kernel.Coordinates,
) (DeliveryAddress, error) {
	a := DeliveryAddress{number: number, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setStreet(street),
		a.setCity(city),
		a.setPostalCode(postalCode),
		a.setGPS(gps),
	); err != nil {
		return DeliveryAddress{}, err
	}

	return a, nil
}

func (a DeliveryAddress) Street() string {
	return a.street
}

func (a DeliveryAddress) City() string {
	return a.city
}

// Number returns the house number.
func (a DeliveryAddress) Number() int {
	return a.number
}

func (a DeliveryAddress) PostalCode() string {
	return a.postalCode
}

// GPS returns the coordinates of the address.
func (a DeliveryAddress) GPS() kernel.Coordinates {
	return a.gps
}

// IsEqual compares all fields.
func (a DeliveryAddress) IsEqual(other DeliveryAddress) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.number == other.number &&
		a.postalCode == other.postalCode &&
		a.gps.IsEqual(other.gps)
}

// Validate returns ErrDeliveryAddressIsNotConstructed for a zero value.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

func (a *DeliveryAddress) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *DeliveryAddress) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *DeliveryAddress) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postal code")
	}
	a.postalCode = postalCode
	return nil
}

func (a *DeliveryAddress) setGPS(gps kernel.Coordinates) error {
	if err := gps.Validate(); err != nil {
		return err
	}
	a.gps = gps
	return nil
}
