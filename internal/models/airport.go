package models

// AirportEntry is the payload for an airport coordinate lookup.
type AirportEntry struct {
	Code string  `json:"code"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// RouteEntry is the payload for a route distance lookup.
type RouteEntry struct {
	Origin   string  `json:"origin"`
	Dest     string  `json:"dest"`
	Distance float64 `json:"distance"`
}
