package similarity

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	domainSimilarity "github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Comparer --dir=. --output=./mocks --filename=comparer_mock.go --case=underscore --with-expecter
type Comparer interface {
	Similarity(ctx context.Context, a, b string, threshold float64) (*domainSimilarity.Result, error)
}

type comparer struct {
	embedder embedding.Client
	logger   *logrus.Logger
}

func NewComparer(embedder embedding.Client, logger *logrus.Logger) Comparer {
	return &comparer{
		embedder: embedder,
		logger:   logger,
	}
}

// Similarity embeds a and b in a single call and scores them with the same
// inner product the batch scorer uses.
func (c *comparer) Similarity(
	ctx context.Context,
	a, b string,
	threshold float64,
) (*domainSimilarity.Result, error) {
	if err := domainSimilarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	vectors, err := c.embedder.Embed(ctx, []string{a, b})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 2 {
		return nil, fmt.Errorf("%w: got %d vectors for 2 texts", embedding.ErrMalformedResponse, len(vectors))
	}
	score, err := domainSimilarity.Dot(vectors[0], vectors[1])
	if err != nil {
		return nil, err
	}
	result := domainSimilarity.NewResult(score, threshold)
	c.logger.WithFields(logrus.Fields{
		"score":     result.Score,
		"threshold": threshold,
		"similar":   result.Similar,
	}).Debug("computed similarity")
	return result, nil
}
