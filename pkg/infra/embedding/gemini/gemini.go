package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	ProviderName = "gemini"
	DefaultModel = "text-embedding-004"
)

type provider struct {
	client *genai.Client
	model  string
	logger *logrus.Logger
}

// NewProvider builds a Gemini API embeddings provider. cfg.Endpoint, when set,
// overrides the API base URL. httpClient may be nil.
func NewProvider(
	ctx context.Context,
	cfg embedding.Config,
	httpClient *http.Client,
	logger *logrus.Logger,
) (embedding.Provider, error) {
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("%w: %s api key is required", embedding.ErrConfiguration, ProviderName)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.Credentials.ApiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.Endpoint != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %w", embedding.ErrConfiguration, err)
	}
	return &provider{client: client, model: model, logger: logger}, nil
}

func (p *provider) Name() string {
	return ProviderName
}

func (p *provider) EmbedBatch(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, t := range texts {
		contents = append(contents, &genai.Content{
			Role:  "user",
			Parts: []*genai.Part{{Text: t}},
		})
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.model, contents, &genai.EmbedContentConfig{
		TaskType: "CLUSTERING",
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			p.logger.WithFields(logrus.Fields{
				"status":  apiErr.Code,
				"message": apiErr.Message,
			}).Error("non-OK response from gemini embeddings API")
			return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, apiErr.Code)
		}
		p.logger.WithError(err).Error("error performing gemini embeddings request")
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", embedding.ErrMalformedResponse, len(texts), len(resp.Embeddings))
	}
	vectors := make([]embedding.Vector, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at index %d", embedding.ErrMalformedResponse, i)
		}
		v := make(embedding.Vector, len(e.Values))
		for j, f := range e.Values {
			v[j] = float64(f)
		}
		vectors[i] = v
	}
	return vectors, nil
}
