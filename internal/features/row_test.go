package features

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStubNotFound = errors.New("not found")

// stubLookups is an in-memory Lookups for tests.
type stubLookups struct {
	coords    map[string][2]float64
	distances map[string]float64
}

func (s stubLookups) Coordinates(code string) (float64, float64, error) {
	c, ok := s.coords[code]
	if !ok {
		return 0, 0, fmt.Errorf("airport %s: %w", code, errStubNotFound)
	}
	return c[0], c[1], nil
}

func (s stubLookups) Distance(origin, dest string) (float64, error) {
	d, ok := s.distances[origin+"_"+dest]
	if !ok {
		return 0, fmt.Errorf("route %s-%s: %w", origin, dest, errStubNotFound)
	}
	return d, nil
}

func testLookups() stubLookups {
	return stubLookups{
		coords: map[string][2]float64{
			"ATL": {33.6407, -84.4277},
			"LAX": {33.9416, -118.4085},
		},
		distances: map[string]float64{
			"ATL_LAX": 1946,
		},
	}
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestBuildRowGoldenTrip(t *testing.T) {
	trip := Trip{
		Origin:    "ATL",
		Dest:      "LAX",
		Carrier:   "DL",
		Departure: mustTime(t, "2024-03-01T08:30"),
		Arrival:   mustTime(t, "2024-03-01T11:15"),
	}

	row, err := BuildRow(trip, testLookups())
	require.NoError(t, err)

	assert.Equal(t, Row{
		Year:          2024,
		Month:         3,
		DayOfMonth:    1,
		DepTime:       830,
		ArrTime:       1115,
		CarrierBucket: 2,
		Distance:      1946,
		OriginLat:     33.6407,
		OriginLon:     -84.4277,
		DestLat:       33.9416,
		DestLon:       -118.4085,
	}, row)
}

func TestBuildRowUnknownDestination(t *testing.T) {
	trip := Trip{
		Origin:    "ATL",
		Dest:      "ZZZ",
		Carrier:   "DL",
		Departure: mustTime(t, "2024-03-01T08:30"),
		Arrival:   mustTime(t, "2024-03-01T11:15"),
	}

	_, err := BuildRow(trip, testLookups())
	assert.ErrorIs(t, err, errStubNotFound)
}

func TestRowVectorMatchesNames(t *testing.T) {
	row := Row{
		Year: 2024, Month: 3, DayOfMonth: 1, DepTime: 830, ArrTime: 1115,
		CarrierBucket: 2, Distance: 1946,
		OriginLat: 33.6407, OriginLon: -84.4277,
		DestLat: 33.9416, DestLon: -118.4085,
	}

	vec := row.Vector()
	require.Len(t, vec, len(Names()))
	assert.Equal(t, 2024.0, vec[0])
	assert.Equal(t, 830.0, vec[3])
	assert.Equal(t, 2.0, vec[5])
	assert.Equal(t, -118.4085, vec[10])
}
