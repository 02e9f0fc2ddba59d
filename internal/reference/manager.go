// Package reference holds the immutable lookup tables the feature pipeline
// joins against: airport coordinates, route distances, and the airline
// name-to-code table. Tables are loaded once at startup and never mutated, so
// a Manager is safe for concurrent use without synchronization.
package reference

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAirport is returned when an airport code has no coordinates.
	ErrUnknownAirport = errors.New("unknown airport code")
	// ErrUnknownRoute is returned when an (origin, dest) pair has no recorded
	// distance. There is no fallback estimate.
	ErrUnknownRoute = errors.New("no recorded distance for route")
)

type coord struct {
	lat float64
	lon float64
}

type routeKey struct {
	origin string
	dest   string
}

// Manager is the read-only owner of the reference tables.
type Manager struct {
	airports  map[string]coord
	distances map[routeKey]float64
	carriers  map[string]string // lowercased airline name -> carrier code
}

// Coordinates returns the latitude and longitude for an airport code. A
// missing code is a hard failure, never a zero-fill.
func (m *Manager) Coordinates(code string) (lat, lon float64, err error) {
	c, ok := m.airports[code]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	return c.lat, c.lon, nil
}

// Distance returns the average distance for a route. A pair the table has
// never observed is a hard failure.
func (m *Manager) Distance(origin, dest string) (float64, error) {
	d, ok := m.distances[routeKey{origin: origin, dest: dest}]
	if !ok {
		return 0, fmt.Errorf("%w: %s-%s", ErrUnknownRoute, origin, dest)
	}
	return d, nil
}

// CarrierCode resolves a human-readable airline name to its two-letter code.
// Inputs that already look like a carrier code pass through uppercased;
// anything unresolved is returned as-is, where the bucketing catch-all
// absorbs it downstream.
func (m *Manager) CarrierCode(airline string) string {
	if code, ok := m.carriers[strings.ToLower(strings.TrimSpace(airline))]; ok {
		return code
	}
	if len(airline) == 2 {
		return strings.ToUpper(airline)
	}
	return airline
}

// AirportCount reports the number of loaded airports.
func (m *Manager) AirportCount() int {
	return len(m.airports)
}

// RouteCount reports the number of loaded routes.
func (m *Manager) RouteCount() int {
	return len(m.distances)
}
