// Package classifier invokes the pretrained delay model. The model is an
// opaque artifact produced elsewhere; this package loads it from disk,
// validates that its shape matches the feature pipeline's row contract, and
// maps its labels to the user-facing outcomes.
package classifier

import (
	"delaycast.arrivals.org/internal/features"
)

// Labels the model is expected to produce.
const (
	LabelOnTime  = 0
	LabelDelayed = 1
)

// Classifier turns an assembled feature row into a binary delay label.
type Classifier interface {
	Predict(row features.Row) (int, error)
	Version() string
}

// Outcome maps a classifier label to its user-facing text. A binary model
// should only ever produce 0 or 1; anything else is reported as inconclusive
// rather than guessed at.
func Outcome(label int) string {
	switch label {
	case LabelOnTime:
		return "no delay predicted"
	case LabelDelayed:
		return "delay predicted"
	default:
		return "inconclusive"
	}
}
