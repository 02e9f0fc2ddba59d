package features

// Row is the eleven-field feature vector handed to the classifier. Field
// order and naming are fixed by the trained model artifact and cannot be
// renegotiated here.
type Row struct {
	Year          int
	Month         int
	DayOfMonth    int
	DepTime       int // HHMM integer
	ArrTime       int // HHMM integer
	CarrierBucket int
	Distance      float64
	OriginLat     float64
	OriginLon     float64
	DestLat       float64
	DestLon       float64
}

// Names returns the feature names in classifier order.
func Names() []string {
	return []string{
		"YEAR", "MONTH", "DAY_OF_MONTH", "DEP_TIME", "ARR_TIME",
		"CARRIER_BUCKET", "DISTANCE",
		"ORIGIN_LATITUDE", "ORIGIN_LONGITUDE", "DEST_LATITUDE", "DEST_LONGITUDE",
	}
}

// Vector returns the row as a numeric slice in classifier order.
func (r Row) Vector() []float64 {
	return []float64{
		float64(r.Year), float64(r.Month), float64(r.DayOfMonth),
		float64(r.DepTime), float64(r.ArrTime),
		float64(r.CarrierBucket), r.Distance,
		r.OriginLat, r.OriginLon, r.DestLat, r.DestLon,
	}
}

// BuildRow assembles the prediction row for a single trip. Reference lookups
// are hard requirements: an unknown airport or route yields an error and no
// row, never a partially-filled row.
func BuildRow(trip Trip, refs Lookups) (Row, error) {
	distance, err := refs.Distance(trip.Origin, trip.Dest)
	if err != nil {
		return Row{}, err
	}
	originLat, originLon, err := refs.Coordinates(trip.Origin)
	if err != nil {
		return Row{}, err
	}
	destLat, destLon, err := refs.Coordinates(trip.Dest)
	if err != nil {
		return Row{}, err
	}

	dep := trip.Departure
	return Row{
		Year:          dep.Year(),
		Month:         int(dep.Month()),
		DayOfMonth:    dep.Day(),
		DepTime:       HHMM(dep),
		ArrTime:       HHMM(trip.Arrival),
		CarrierBucket: CarrierBucket(trip.Carrier),
		Distance:      distance,
		OriginLat:     originLat,
		OriginLon:     originLon,
		DestLat:       destLat,
		DestLon:       destLon,
	}, nil
}
