package flightdb

import (
	"database/sql"

	"delaycast.arrivals.org/internal/features"
)

// Flight is a raw flight record as stored in the flights table. Nullable
// columns stay nullable here: whether ARR_TIME or ARR_DELAY is present
// decides whether the record is usable at all, so the distinction must
// survive storage.
type Flight struct {
	ID         int64
	Year       int             // year
	Month      int             // month
	DayOfMonth int             // day_of_month
	DayOfWeek  int             // day_of_week (1-7)
	DepTime    sql.NullInt64   // dep_time (HHMM)
	ArrTime    sql.NullInt64   // arr_time (HHMM)
	ArrDelay   sql.NullFloat64 // arr_delay (minutes)
	Cancelled  bool            // cancelled
	Origin     string          // origin
	Dest       string          // dest
	Carrier    string          // carrier
	Distance   sql.NullFloat64 // distance
}

// ToRecord converts a stored flight into a pipeline record. Non-critical
// missing numerics are zero-filled here; the arrival fields keep their
// missing state as nil pointers for the cleaning stage to act on.
func (f Flight) ToRecord() features.Record {
	r := features.Record{
		Year:       f.Year,
		Month:      f.Month,
		DayOfMonth: f.DayOfMonth,
		DayOfWeek:  f.DayOfWeek,
		Cancelled:  f.Cancelled,
		Origin:     f.Origin,
		Dest:       f.Dest,
		Carrier:    f.Carrier,
	}
	if f.DepTime.Valid {
		r.DepTime = int(f.DepTime.Int64)
	}
	if f.Distance.Valid {
		r.Distance = f.Distance.Float64
	}
	if f.ArrTime.Valid {
		v := int(f.ArrTime.Int64)
		r.ArrTime = &v
	}
	if f.ArrDelay.Valid {
		v := f.ArrDelay.Float64
		r.ArrDelay = &v
	}
	return r
}
