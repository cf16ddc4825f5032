package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when Coordinates were not created via NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a GPS position of a delivery address.
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates that lat is within [MinLatitude, MaxLatitude] and lng within
// [MinLongitude, MaxLongitude].
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLatitude(lat), c.setLongitude(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.lat
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.lng
}

// IsEqual compares both components.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lng == other.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%g,%g)", c.lat, c.lng)
}

// Validate returns ErrCoordinatesAreNotConstructed for a zero value.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c *Coordinates) setLatitude(lat float64) error {
	if !(lat >= MinLatitude && lat <= MaxLatitude) {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLongitude(lng float64) error {
	if !(lng >= MinLongitude && lng <= MaxLongitude) {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}
	c.lng = lng
	return nil
}
