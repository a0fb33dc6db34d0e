package scorer

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding/mocks"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubEmbedder map[string]embedding.Vector

func (s stubEmbedder) Embed(_ context.Context, texts []string) ([]embedding.Vector, error) {
	out := make([]embedding.Vector, len(texts))
	for i, text := range texts {
		v, ok := s[text]
		if !ok {
			return nil, fmt.Errorf("%w: no vector for %q", embedding.ErrMalformedResponse, text)
		}
		out[i] = v
	}
	return out, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func mustDataset(t *testing.T, utterances ...dataset.Utterance) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(utterances)
	require.NoError(t, err)
	return ds
}

func orderDataset(t *testing.T) (*dataset.Dataset, stubEmbedder) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "1", Text: "order pizza", Label: "order"},
		dataset.Utterance{ID: "2", Text: "order food", Label: "order"},
		dataset.Utterance{ID: "3", Text: "cancel order", Label: "cancel"},
	)
	stub := stubEmbedder{
		"order pizza":  {1, 0},
		"order food":   {0.9, 0.1},
		"cancel order": {0.8, 0.2},
	}
	return ds, stub
}

func TestScoreLabeled_OrderCancelScenario(t *testing.T) {
	ds, stub := orderDataset(t)
	s := NewScorer(stub, newLogger())

	output, err := s.ScoreLabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	require.Len(t, output, 2)

	assert.Equal(t, "1", output[0].IDA)
	assert.Equal(t, "3", output[0].IDB)
	assert.Equal(t, "order", output[0].LabelA)
	assert.Equal(t, "cancel", output[0].LabelB)
	assert.InDelta(t, 0.8, output[0].Score, 1e-9)

	assert.Equal(t, "2", output[1].IDA)
	assert.Equal(t, "3", output[1].IDB)
	assert.InDelta(t, 0.74, output[1].Score, 1e-9)

	for _, pair := range output {
		assert.NotEqual(t, pair.LabelA, pair.LabelB)
	}
}

func TestScoreLabeled_SameLabelNeverEmitted(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "a1", Text: "i want to order", Label: "A"},
		dataset.Utterance{ID: "a2", Text: "i want to order now", Label: "A"},
	)
	stub := stubEmbedder{
		"i want to order":     {1, 0},
		"i want to order now": {1, 0},
	}

	output, err := NewScorer(stub, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestScoreLabeled_Threshold(t *testing.T) {
	tests := []struct {
		name   string
		vector embedding.Vector
		want   int
	}{
		{name: "below threshold", vector: embedding.Vector{0.3, 0}, want: 0},
		{name: "above threshold", vector: embedding.Vector{0.7, 0}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := mustDataset(t,
				dataset.Utterance{ID: "x", Text: "x", Label: "A"},
				dataset.Utterance{ID: "y", Text: "y", Label: "B"},
			)
			stub := stubEmbedder{"x": tt.vector, "y": {1, 0}}

			output, err := NewScorer(stub, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
			require.NoError(t, err)
			require.Len(t, output, tt.want)
			if tt.want == 1 {
				assert.Equal(t, 0.7, output[0].Score)
			}
		})
	}
}

func TestScoreLabeled_ThresholdIsInclusive(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "x", Text: "x", Label: "A"},
		dataset.Utterance{ID: "y", Text: "y", Label: "B"},
	)
	stub := stubEmbedder{"x": {0.5, 0}, "y": {1, 0}}

	output, err := NewScorer(stub, newLogger()).ScoreLabeled(context.Background(), ds, 0.5)
	require.NoError(t, err)
	assert.Len(t, output, 1)
}

func TestScoreLabeled_IgnoresUnlabeled(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "1", Text: "hello", Label: "greet"},
		dataset.Utterance{ID: "2", Text: "hi there"},
		dataset.Utterance{ID: "3", Text: "bye", Label: "farewell"},
	)
	embedder := mocks.NewClient(t)
	embedder.EXPECT().Embed(mock.Anything, []string{"hello", "bye"}).
		Return([]embedding.Vector{{1, 0}, {1, 0}}, nil).Once()

	output, err := NewScorer(embedder, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	require.Len(t, output, 1)
	assert.Equal(t, similarity.ScoredPair{IDA: "1", IDB: "3", LabelA: "greet", LabelB: "farewell", Score: 1}, output[0])
}

func TestScoreLabeled_EmbedFailure(t *testing.T) {
	ds, _ := orderDataset(t)
	embedder := mocks.NewClient(t)
	embedder.EXPECT().Embed(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: status 503", embedding.ErrProviderNonOKResponse)).Once()

	output, err := NewScorer(embedder, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, embedding.ErrProviderNonOKResponse)
}

func TestScoreLabeled_VectorCountMismatch(t *testing.T) {
	ds, _ := orderDataset(t)
	embedder := mocks.NewClient(t)
	embedder.EXPECT().Embed(mock.Anything, mock.Anything).
		Return([]embedding.Vector{{1, 0}}, nil).Once()

	_, err := NewScorer(embedder, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
	assert.ErrorIs(t, err, embedding.ErrMalformedResponse)
}

func TestScoreLabeled_DimensionMismatch(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "x", Text: "x", Label: "A"},
		dataset.Utterance{ID: "y", Text: "y", Label: "B"},
	)
	stub := stubEmbedder{"x": {1, 0, 0}, "y": {1, 0}}

	_, err := NewScorer(stub, newLogger()).ScoreLabeled(context.Background(), ds, 0.6)
	assert.ErrorIs(t, err, similarity.ErrDimensionMismatch)
}

func TestScore_InvalidThreshold(t *testing.T) {
	ds, stub := orderDataset(t)
	s := NewScorer(stub, newLogger())

	_, err := s.ScoreLabeled(context.Background(), ds, math.NaN())
	assert.ErrorIs(t, err, similarity.ErrInvalidThreshold)

	_, err = s.ScoreUnlabeled(context.Background(), ds, math.Inf(1))
	assert.ErrorIs(t, err, similarity.ErrInvalidThreshold)
}

func TestScoreLabeledIndexMatched_MatchesPrimary(t *testing.T) {
	ds, stub := orderDataset(t)
	s := NewScorer(stub, newLogger())

	primary, err := s.ScoreLabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	legacy, err := s.ScoreLabeledIndexMatched(context.Background(), ds, 0.6)
	require.NoError(t, err)

	assert.Equal(t, primary, legacy)
}

func TestScoreLabeledIndexMatched_DuplicateVectorsResolveToFirst(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "1", Text: "one", Label: "A"},
		dataset.Utterance{ID: "2", Text: "two", Label: "A"},
		dataset.Utterance{ID: "3", Text: "three", Label: "B"},
	)
	stub := stubEmbedder{
		"one":   {1, 0},
		"two":   {1, 0},
		"three": {1, 0},
	}

	legacy, err := NewScorer(stub, newLogger()).ScoreLabeledIndexMatched(context.Background(), ds, 0.6)
	require.NoError(t, err)
	assert.Empty(t, legacy)
}

func TestScoreUnlabeled(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "1", Text: "where is my order"},
		dataset.Utterance{ID: "2", Text: "track my order"},
		dataset.Utterance{ID: "3", Text: "what time is it"},
		dataset.Utterance{ID: "4", Text: "labeled", Label: "L"},
	)
	stub := stubEmbedder{
		"where is my order": {1, 0},
		"track my order":    {0.75, 0},
		"what time is it":   {0, 1},
	}

	output, err := NewScorer(stub, newLogger()).ScoreUnlabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	assert.Equal(t, []similarity.UnlabeledMatch{
		{TextA: "where is my order", TextB: "track my order", Score: 0.75},
	}, output)
}

func TestScoreUnlabeledSweep_ReportsBothDirections(t *testing.T) {
	ds := mustDataset(t,
		dataset.Utterance{ID: "1", Text: "a"},
		dataset.Utterance{ID: "2", Text: "b"},
		dataset.Utterance{ID: "3", Text: "c"},
	)
	stub := stubEmbedder{
		"a": {1, 0},
		"b": {0.75, 0},
		"c": {0, 1},
	}

	output, err := NewScorer(stub, newLogger()).ScoreUnlabeledSweep(context.Background(), ds, 0.6)
	require.NoError(t, err)
	assert.Equal(t, []similarity.UnlabeledMatch{
		{TextA: "a", TextB: "b", Score: 0.75},
		{TextA: "b", TextB: "a", Score: 0.75},
	}, output)
}

func TestScoreUnlabeled_Empty(t *testing.T) {
	ds := mustDataset(t, dataset.Utterance{ID: "1", Text: "only", Label: "L"})
	embedder := mocks.NewClient(t)
	embedder.EXPECT().Embed(mock.Anything, []string{}).Return([]embedding.Vector{}, nil).Once()

	output, err := NewScorer(embedder, newLogger()).ScoreUnlabeled(context.Background(), ds, 0.6)
	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Empty(t, output)
}

func TestScorer_ConcurrentRunsAreIndependent(t *testing.T) {
	ds, stub := orderDataset(t)
	s := NewScorer(stub, newLogger())

	var wg sync.WaitGroup
	results := make([][]similarity.ScoredPair, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := s.ScoreLabeled(context.Background(), ds, 0.6)
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, results[0], out)
	}
}
