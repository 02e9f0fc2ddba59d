package features

import "math"

// CyclicalHour maps an hour of day (0-23) onto the unit circle. The sine and
// cosine pair keeps hour 23 adjacent to hour 0, which a raw integer encoding
// would not.
func CyclicalHour(hour int) (sin, cos float64) {
	angle := 2 * math.Pi * float64(hour) / 24
	return math.Sin(angle), math.Cos(angle)
}

// CyclicalDay maps a day of week (1-7, BTS convention) onto the unit circle.
func CyclicalDay(day int) (sin, cos float64) {
	angle := 2 * math.Pi * float64(day) / 7
	return math.Sin(angle), math.Cos(angle)
}
