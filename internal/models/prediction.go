package models

import "delaycast.arrivals.org/internal/features"

// FeatureValues echoes the assembled feature row back to the caller so a
// prediction can be audited against its inputs.
type FeatureValues struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	DayOfMonth    int     `json:"dayOfMonth"`
	DepTime       int     `json:"depTime"`
	ArrTime       int     `json:"arrTime"`
	CarrierBucket int     `json:"carrierBucket"`
	Distance      float64 `json:"distance"`
	OriginLat     float64 `json:"originLat"`
	OriginLon     float64 `json:"originLon"`
	DestLat       float64 `json:"destLat"`
	DestLon       float64 `json:"destLon"`
}

// PredictionEntry is the payload for a single-trip delay prediction.
type PredictionEntry struct {
	Outcome      string        `json:"outcome"`
	Label        int           `json:"label"`
	ModelVersion string        `json:"modelVersion"`
	Features     FeatureValues `json:"features"`
}

// NewPredictionEntry builds the prediction payload from a feature row and the
// classifier's label.
func NewPredictionEntry(row features.Row, label int, outcome, modelVersion string) PredictionEntry {
	return PredictionEntry{
		Outcome:      outcome,
		Label:        label,
		ModelVersion: modelVersion,
		Features: FeatureValues{
			Year:          row.Year,
			Month:         row.Month,
			DayOfMonth:    row.DayOfMonth,
			DepTime:       row.DepTime,
			ArrTime:       row.ArrTime,
			CarrierBucket: row.CarrierBucket,
			Distance:      row.Distance,
			OriginLat:     row.OriginLat,
			OriginLon:     row.OriginLon,
			DestLat:       row.DestLat,
			DestLon:       row.DestLon,
		},
	}
}
