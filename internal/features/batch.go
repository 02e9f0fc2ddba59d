package features

// TrainingRow is the batch-mode feature row: the prediction fields plus the
// cyclical encodings and the target label used for model training.
type TrainingRow struct {
	Row
	SinHour float64
	CosHour float64
	SinDay  float64
	CosDay  float64
	Target  int
}

// TrainingNames returns the training-table column names in output order.
func TrainingNames() []string {
	return append(Names(), "sin_hour", "cos_hour", "sin_day", "cos_day", "target")
}

// BuildTrainingRows converts cleaned historical records into training rows.
//
// Records whose departure time cannot be reduced to a valid clock time are
// skipped and counted; that is routine data quality, the same class of
// exclusion Clean performs. A failed coordinate join is different: the caller
// handed over a record referencing an airport the reference table has never
// heard of, which is a contract violation and aborts the batch.
//
// The second return value is the number of records skipped for malformed
// departure times.
func BuildTrainingRows(records []Record, refs Lookups) ([]TrainingRow, int, error) {
	cleaned := Clean(records)
	rows := make([]TrainingRow, 0, len(cleaned))
	skipped := 0

	for _, r := range cleaned {
		hour, err := DepartureHour(r.DepTime)
		if err != nil {
			skipped++
			continue
		}

		originLat, originLon, err := refs.Coordinates(r.Origin)
		if err != nil {
			return nil, skipped, err
		}
		destLat, destLon, err := refs.Coordinates(r.Dest)
		if err != nil {
			return nil, skipped, err
		}

		sinHour, cosHour := CyclicalHour(hour)
		sinDay, cosDay := CyclicalDay(r.DayOfWeek)

		rows = append(rows, TrainingRow{
			Row: Row{
				Year:          r.Year,
				Month:         r.Month,
				DayOfMonth:    r.DayOfMonth,
				DepTime:       r.DepTime,
				ArrTime:       *r.ArrTime,
				CarrierBucket: CarrierBucket(r.Carrier),
				Distance:      r.Distance,
				OriginLat:     originLat,
				OriginLon:     originLon,
				DestLat:       destLat,
				DestLon:       destLon,
			},
			SinHour: sinHour,
			CosHour: cosHour,
			SinDay:  sinDay,
			CosDay:  cosDay,
			Target:  r.Target,
		})
	}

	return rows, skipped, nil
}
