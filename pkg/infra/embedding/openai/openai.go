package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName          = "openai"
	DefaultModel          = "text-embedding-3-small"
	defaultRequestTimeout = 30 * time.Second
)

type provider struct {
	client openai.Client
	model  string
	logger *logrus.Logger
}

// NewProvider builds an OpenAI embeddings provider. cfg.Endpoint, when set,
// overrides the API base URL. httpClient may be nil.
func NewProvider(cfg embedding.Config, httpClient *http.Client, logger *logrus.Logger) (embedding.Provider, error) {
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("%w: %s api key is required", embedding.ErrConfiguration, ProviderName)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Credentials.ApiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(defaultRequestTimeout),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &provider{
		client: openai.NewClient(opts...),
		model:  model,
		logger: logger,
	}, nil
}

func (p *provider) Name() string {
	return ProviderName
}

func (p *provider) EmbedBatch(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(p.model),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			p.logger.WithField("status", apiErr.StatusCode).Error("non-OK response from embeddings API")
			return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, apiErr.StatusCode)
		}
		p.logger.WithError(err).Error("error performing HTTP request for embeddings")
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", embedding.ErrMalformedResponse, len(texts), len(resp.Data))
	}

	// Data carries an index per item; place each vector at its input position.
	vectors := make([]embedding.Vector, len(texts))
	for _, item := range resp.Data {
		idx := int(item.Index)
		if idx < 0 || idx >= len(vectors) || vectors[idx] != nil {
			return nil, fmt.Errorf("%w: unexpected embedding index %d", embedding.ErrMalformedResponse, item.Index)
		}
		if len(item.Embedding) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at index %d", embedding.ErrMalformedResponse, item.Index)
		}
		vectors[idx] = embedding.Vector(item.Embedding)
	}
	return vectors, nil
}
