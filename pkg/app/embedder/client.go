package embedder

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type client struct {
	provider  embedding.Provider
	batchSize int
	logger    *logrus.Logger
}

// NewClient wraps a provider with chunking. Each chunk holds at most batchSize
// texts and chunks are sent one after another.
func NewClient(provider embedding.Provider, batchSize int, logger *logrus.Logger) (embedding.Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider is required", embedding.ErrConfiguration)
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", embedding.ErrConfiguration, batchSize)
	}
	return &client{
		provider:  provider,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

func (c *client) Embed(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	buffered := make([]string, len(texts))
	copy(buffered, texts)

	if len(buffered) == 0 {
		return []embedding.Vector{}, nil
	}

	c.logger.WithFields(logrus.Fields{
		"provider": c.provider.Name(),
		"texts":    len(buffered),
		"batches":  (len(buffered) + c.batchSize - 1) / c.batchSize,
	}).Info("encoding texts")

	result := make([]embedding.Vector, 0, len(buffered))
	for start := 0; start < len(buffered); start += c.batchSize {
		end := min(start+c.batchSize, len(buffered))
		chunk := buffered[start:end]

		vectors, err := c.embedChunk(ctx, chunk)
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"provider": c.provider.Name(),
				"offset":   start,
				"size":     len(chunk),
			}).Error("failed to embed batch")
			return nil, err
		}
		result = append(result, vectors...)
	}

	c.logger.WithField("vectors", len(result)).Info("done encoding")
	return result, nil
}

func (c *client) embedChunk(ctx context.Context, chunk []string) ([]embedding.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", embedding.ErrTransport, err)
	}

	name := c.provider.Name()
	start := time.Now()
	vectors, err := c.provider.EmbedBatch(ctx, chunk)
	if prometheus.Config.EnableLatency {
		prometheus.EmbeddingLatency.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	}
	prometheus.EmbeddedTextsTotal.WithLabelValues(name).Add(float64(len(chunk)))

	if err != nil {
		prometheus.EmbeddingRequestTotal.WithLabelValues(name, "error").Inc()
		return nil, err
	}
	if len(vectors) != len(chunk) {
		prometheus.EmbeddingRequestTotal.WithLabelValues(name, "error").Inc()
		return nil, fmt.Errorf("%w: %s returned %d vectors for %d texts",
			embedding.ErrMalformedResponse, name, len(vectors), len(chunk))
	}
	for i, v := range vectors {
		if !v.Finite() {
			prometheus.EmbeddingRequestTotal.WithLabelValues(name, "error").Inc()
			return nil, fmt.Errorf("%w: %s returned a non-finite vector at position %d",
				embedding.ErrMalformedResponse, name, i)
		}
	}
	prometheus.EmbeddingRequestTotal.WithLabelValues(name, "ok").Inc()
	return vectors, nil
}
