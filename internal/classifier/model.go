package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"delaycast.arrivals.org/internal/features"
)

// Model is a pretrained binary classifier loaded from a JSON artifact: a
// weight per feature, an intercept, and a decision threshold on the logistic
// score. The artifact's feature list must match the pipeline's row contract
// exactly, in both naming and order.
type Model struct {
	ModelVersion string    `json:"model_version"`
	Features     []string  `json:"features"`
	Weights      []float64 `json:"weights"`
	Intercept    float64   `json:"intercept"`
	Threshold    float64   `json:"threshold"`
}

// LoadModel reads and validates a model artifact from disk.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}

	if len(m.Weights) != len(m.Features) {
		return nil, fmt.Errorf("model artifact: %d weights for %d features", len(m.Weights), len(m.Features))
	}
	expected := features.Names()
	if len(m.Features) != len(expected) {
		return nil, fmt.Errorf("model artifact: expected %d features, got %d", len(expected), len(m.Features))
	}
	for i, name := range expected {
		if m.Features[i] != name {
			return nil, fmt.Errorf("model artifact: feature %d is %q, expected %q", i, m.Features[i], name)
		}
	}
	if m.Threshold <= 0 || m.Threshold >= 1 {
		return nil, fmt.Errorf("model artifact: threshold %v outside (0, 1)", m.Threshold)
	}

	return &m, nil
}

// Predict scores a feature row and returns a binary label.
func (m *Model) Predict(row features.Row) (int, error) {
	vec := row.Vector()
	if len(vec) != len(m.Weights) {
		return 0, fmt.Errorf("feature row has %d values, model expects %d", len(vec), len(m.Weights))
	}

	score := m.Intercept
	for i, w := range m.Weights {
		score += w * vec[i]
	}

	p := 1 / (1 + math.Exp(-score))
	if p > m.Threshold {
		return LabelDelayed, nil
	}
	return LabelOnTime, nil
}

// Version reports the artifact's version string.
func (m *Model) Version() string {
	return m.ModelVersion
}
