package features

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// padTime left-pads the digit form of an HHMM value to at least 4 characters.
// Values with more than 4 digits pass through unchanged and fail later at the
// parse step.
func padTime(t int) string {
	s := strconv.Itoa(t)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// DepartureHour reduces a raw HHMM departure-time integer to an hour of day
// in [0, 23].
//
// The padded string is split into hour and minute halves from the end, joined
// with a colon, and parsed as a clock time. A leading "24" is rewritten to
// "00" with the rest of the string kept, so 2405 becomes "00:05". The rewrite
// operates on the string, not the hour value; the training data was produced
// with the same rewrite, so it must stay literal.
//
// Values that do not reduce to a valid clock time are hard errors. Callers
// must reject the record rather than substitute a default.
func DepartureHour(depTime int) (int, error) {
	s := padTime(depTime)
	clock := s[:len(s)-2] + ":" + s[len(s)-2:]
	if strings.HasPrefix(clock, "24") {
		clock = "00" + clock[2:]
	}

	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid departure time %d: %w", depTime, err)
	}
	return t.Hour(), nil
}

// HHMM encodes the time of day of t as an HHMM integer, the concatenation of
// the zero-padded hour and minute digits.
func HHMM(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}
