package similarity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b embedding.Vector
		want float64
	}{
		{name: "orthogonal", a: embedding.Vector{1, 0}, b: embedding.Vector{0, 1}, want: 0},
		{name: "identical unit", a: embedding.Vector{1, 0}, b: embedding.Vector{1, 0}, want: 1},
		{name: "not normalized", a: embedding.Vector{2, 0}, b: embedding.Vector{3, 0}, want: 6},
		{name: "negative", a: embedding.Vector{1, 0}, b: embedding.Vector{-0.5, 0}, want: -0.5},
		{name: "empty", a: embedding.Vector{}, b: embedding.Vector{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestDot_DimensionMismatch(t *testing.T) {
	_, err := Dot(embedding.Vector{1, 2}, embedding.Vector{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewResult_SimilarIsScoreAtLeastThreshold(t *testing.T) {
	assert.True(t, NewResult(0.6, 0.6).Similar)
	assert.True(t, NewResult(0.61, 0.6).Similar)
	assert.False(t, NewResult(0.59, 0.6).Similar)
}

func TestUnlabeledMatch_JSON(t *testing.T) {
	m := UnlabeledMatch{TextA: "hi", TextB: "hello", Score: 0.75}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `["hi", "hello", 0.75]`, string(data))

	var back UnlabeledMatch
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m, back)

	assert.Error(t, json.Unmarshal([]byte(`["a", 1]`), &back))
}

func TestScoredPair_LegacyRecord(t *testing.T) {
	p := ScoredPair{IDA: "1", IDB: "3", LabelA: "order", LabelB: "cancel", Score: 0.8}
	assert.Equal(t, map[string]interface{}{
		"order":  "1",
		"cancel": "3",
		"score":  0.8,
	}, p.LegacyRecord())
}

func TestLegacyRecords(t *testing.T) {
	records, err := LegacyRecords([]ScoredPair{
		{IDA: "1", IDB: "3", LabelA: "order", LabelB: "cancel", Score: 0.8},
	})
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{{"order": "1", "cancel": "3", "score": 0.8}}, records)

	records, err = LegacyRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLegacyRecords_RejectsScoreLabel(t *testing.T) {
	_, err := LegacyRecords([]ScoredPair{
		{IDA: "1", IDB: "3", LabelA: "order", LabelB: "score", Score: 0.8},
	})
	assert.ErrorIs(t, err, ErrLegacyLabelConflict)
}

func TestValidateThreshold(t *testing.T) {
	assert.NoError(t, ValidateThreshold(0.6))
	assert.NoError(t, ValidateThreshold(-0.2))
	assert.ErrorIs(t, ValidateThreshold(math.NaN()), ErrInvalidThreshold)
	assert.ErrorIs(t, ValidateThreshold(math.Inf(1)), ErrInvalidThreshold)
}
