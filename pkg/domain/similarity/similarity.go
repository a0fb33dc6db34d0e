package similarity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
)

const DefaultThreshold = 0.6

var (
	ErrDimensionMismatch   = errors.New("similarity: vector dimension mismatch")
	ErrInvalidThreshold    = errors.New("similarity: invalid threshold")
	// ErrLegacyLabelConflict is returned when a label collides with the
	// "score" key of the legacy record shape.
	ErrLegacyLabelConflict = errors.New("similarity: label cannot be rendered in legacy format")
)

const legacyScoreKey = "score"

// Dot returns the raw inner product of a and b. Vectors are not normalized,
// so the result is cosine similarity only when the provider emits unit vectors.
func Dot(a, b embedding.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// ValidateThreshold rejects thresholds that no score can be compared against.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return nil
}

// ScoredPair is one cross-label match produced by labeled scoring.
type ScoredPair struct {
	IDA    string  `json:"id_a"`
	IDB    string  `json:"id_b"`
	LabelA string  `json:"label_a"`
	LabelB string  `json:"label_b"`
	Score  float64 `json:"score"`
}

// LegacyRecord renders the pair in the label-keyed shape older consumers read:
// {"<labelA>": "<idA>", "<labelB>": "<idB>", "score": s}. A label named
// "score" would be overwritten by the score itself; use LegacyRecords to
// reject such pairs.
func (p ScoredPair) LegacyRecord() map[string]interface{} {
	return map[string]interface{}{
		p.LabelA:       p.IDA,
		p.LabelB:       p.IDB,
		legacyScoreKey: p.Score,
	}
}

// LegacyRecords renders every pair with LegacyRecord and fails with
// ErrLegacyLabelConflict when a label would clash with the score key.
func LegacyRecords(pairs []ScoredPair) ([]map[string]interface{}, error) {
	records := make([]map[string]interface{}, 0, len(pairs))
	for _, p := range pairs {
		if p.LabelA == legacyScoreKey || p.LabelB == legacyScoreKey {
			return nil, fmt.Errorf("%w: %q", ErrLegacyLabelConflict, legacyScoreKey)
		}
		records = append(records, p.LegacyRecord())
	}
	return records, nil
}

// UnlabeledMatch is a (textA, textB, score) triple, encoded as a JSON array.
type UnlabeledMatch struct {
	TextA string
	TextB string
	Score float64
}

func (m UnlabeledMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{m.TextA, m.TextB, m.Score})
}

func (m *UnlabeledMatch) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("similarity: expected 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &m.TextA); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &m.TextB); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &m.Score)
}

// Result is the outcome of comparing exactly two strings.
type Result struct {
	Score   float64 `json:"score"`
	Similar bool    `json:"similar"`
}

func NewResult(score, threshold float64) *Result {
	return &Result{
		Score:   score,
		Similar: score >= threshold,
	}
}
