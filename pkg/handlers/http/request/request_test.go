package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQuery_Validate(t *testing.T) {
	q := ScoreQuery{}
	require.NoError(t, q.Validate())
	assert.Equal(t, AlgorithmIDPaired, q.Algorithm)
	assert.Equal(t, FormatRecords, q.Format)

	q = ScoreQuery{Algorithm: AlgorithmIndexMatched, Format: FormatLegacy}
	assert.NoError(t, q.Validate())

	q = ScoreQuery{Algorithm: "brute_force"}
	assert.ErrorIs(t, q.Validate(), ErrInvalidRequest)

	q = ScoreQuery{Format: "csv"}
	assert.ErrorIs(t, q.Validate(), ErrInvalidRequest)
}

func TestUnlabeledQuery_Validate(t *testing.T) {
	q := UnlabeledQuery{}
	require.NoError(t, q.Validate())
	assert.Equal(t, "combinations", q.Pairing)

	q = UnlabeledQuery{Pairing: "permutations"}
	assert.NoError(t, q.Validate())

	q = UnlabeledQuery{Pairing: "triples"}
	assert.ErrorIs(t, q.Validate(), ErrInvalidRequest)
}

func TestSimilarityRequest_Validate(t *testing.T) {
	r := SimilarityRequest{A: "order pizza"}
	assert.ErrorIs(t, r.Validate(), ErrInvalidRequest)

	r.B = "buy a pizza"
	assert.NoError(t, r.Validate())
}
