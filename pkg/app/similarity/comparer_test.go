package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding/mocks"
	domainSimilarity "github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestSimilarity_IdenticalVectorsAreSimilar(t *testing.T) {
	embedder := mocks.NewClient(t)
	embedder.EXPECT().Embed(mock.Anything, []string{"x", "x"}).
		Return([]embedding.Vector{{0.6, 0.8}, {0.6, 0.8}}, nil).Once()

	result, err := NewComparer(embedder, newLogger()).Similarity(context.Background(), "x", "x", 0.6)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.True(t, result.Similar)
}

func TestSimilarity_SimilarIsScoreAtLeastThreshold(t *testing.T) {
	tests := []struct {
		name      string
		a         embedding.Vector
		threshold float64
		similar   bool
	}{
		{name: "equal to threshold", a: embedding.Vector{0.5, 0}, threshold: 0.5, similar: true},
		{name: "below threshold", a: embedding.Vector{0.25, 0}, threshold: 0.5, similar: false},
		{name: "negative score", a: embedding.Vector{-1, 0}, threshold: 0.6, similar: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := mocks.NewClient(t)
			embedder.EXPECT().Embed(mock.Anything, mock.Anything).
				Return([]embedding.Vector{tt.a, {1, 0}}, nil).Once()

			result, err := NewComparer(embedder, newLogger()).Similarity(context.Background(), "a", "b", tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.a[0], result.Score)
			assert.Equal(t, tt.similar, result.Similar)
		})
	}
}

func TestSimilarity_Errors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		embedder := mocks.NewClient(t)
		embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return(nil, embedding.ErrTransport).Once()

		_, err := NewComparer(embedder, newLogger()).Similarity(context.Background(), "a", "b", 0.6)
		assert.True(t, errors.Is(err, embedding.ErrTransport))
	})

	t.Run("wrong vector count", func(t *testing.T) {
		embedder := mocks.NewClient(t)
		embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]embedding.Vector{{1}}, nil).Once()

		_, err := NewComparer(embedder, newLogger()).Similarity(context.Background(), "a", "b", 0.6)
		assert.ErrorIs(t, err, embedding.ErrMalformedResponse)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		embedder := mocks.NewClient(t)
		embedder.EXPECT().Embed(mock.Anything, mock.Anything).Return([]embedding.Vector{{1}, {1, 2}}, nil).Once()

		_, err := NewComparer(embedder, newLogger()).Similarity(context.Background(), "a", "b", 0.6)
		assert.ErrorIs(t, err, domainSimilarity.ErrDimensionMismatch)
	})
}
