package dispatch

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// InitialLocation is where every shipment starts.
const InitialLocation = "Warehouse"

// Tracking is a value object recording the shipment's last known location
// and when it was recorded. Tracking is immutable; moving the shipment
// produces a new Tracking value.
type Tracking struct {
	currentLocation string
	lastUpdated     time.Time
}

// NewTracking creates the initial tracking state for a new dispatch order.
// The location is always InitialLocation.
func NewTracking() Tracking {
	return Tracking{
		currentLocation: InitialLocation,
		lastUpdated:     time.Now().UTC(),
	}
}

// RestoreTracking reconstructs a Tracking value from persistence.
func RestoreTracking(currentLocation string, lastUpdated time.Time) (Tracking, error) {
	if currentLocation == "" {
		return Tracking{}, errs.NewValueIsRequiredError("currentLocation")
	}
	return Tracking{currentLocation: currentLocation, lastUpdated: lastUpdated}, nil
}

// MoveTo returns a new Tracking value at the given location, stamped now.
func (t Tracking) MoveTo(location string) (Tracking, error) {
	if location == "" {
		return Tracking{}, errs.NewValueIsRequiredError("currentLocation")
	}
	return Tracking{currentLocation: location, lastUpdated: time.Now().UTC()}, nil
}

// CurrentLocation returns the shipment's last known location.
func (t Tracking) CurrentLocation() string {
	return t.currentLocation
}

// LastUpdated returns when the location was last recorded.
func (t Tracking) LastUpdated() time.Time {
	return t.lastUpdated
}
