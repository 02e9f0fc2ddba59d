// Package features turns raw flight attributes into the numeric rows consumed
// by the delay classifier. The transforms here must stay bit-compatible with
// the data the model was trained on, so constants and quirks are deliberate.
package features

import "time"

// Record is a raw historical flight record as stored in the flights table.
// ArrTime and ArrDelay are pointers because their absence has meaning: a
// record missing either one is unusable and must be dropped, never zero-filled.
// All other numeric fields are zero-filled at import time when missing.
type Record struct {
	Year       int
	Month      int
	DayOfMonth int
	DayOfWeek  int // 1-7, BTS convention
	DepTime    int // HHMM integer, possibly malformed in source data
	ArrTime    *int
	ArrDelay   *float64
	Cancelled  bool
	Origin     string
	Dest       string
	Carrier    string
	Distance   float64

	// Target is 1 when the flight arrived late, 0 otherwise. Set by Clean.
	Target int
}

// Trip is the interactive single-prediction input. Timestamps are already
// valid calendar times, so none of the HHMM repair logic applies to them.
type Trip struct {
	Origin    string
	Dest      string
	Carrier   string // two-letter carrier code, already resolved from the airline name
	Departure time.Time
	Arrival   time.Time
}

// Lookups supplies the reference-table joins used during row assembly.
// Implementations must treat a missing key as an error, never as a zero value.
type Lookups interface {
	// Coordinates returns the latitude and longitude for an airport code.
	Coordinates(code string) (lat, lon float64, err error)
	// Distance returns the average distance for an (origin, dest) route.
	Distance(origin, dest string) (float64, error)
}
