package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	bedrockClient "github.com/NeuralTrust/TrustIntent/pkg/infra/bedrock"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "bedrock"
	DefaultModel = "cohere.embed-multilingual-v3"

	// MaxTextsPerRequest is the Cohere embed limit on Bedrock.
	MaxTextsPerRequest = 96
)

type cohereRequest struct {
	Texts     []string `json:"texts"`
	InputType string   `json:"input_type"`
	Truncate  string   `json:"truncate,omitempty"`
}

type cohereResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

type provider struct {
	client bedrockClient.Client
	model  string
	logger *logrus.Logger
}

// NewProvider binds base to the credentials and region in cfg and returns a
// provider invoking a Cohere embed model through Bedrock.
func NewProvider(
	ctx context.Context,
	base bedrockClient.Client,
	cfg embedding.Config,
	logger *logrus.Logger,
) (embedding.Provider, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: %s region is required", embedding.ErrConfiguration, ProviderName)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	client, err := base.BuildClient(ctx, cfg.Credentials.AccessKey, cfg.Credentials.SecretKey, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", embedding.ErrConfiguration, err)
	}
	return &provider{client: client, model: model, logger: logger}, nil
}

func (p *provider) Name() string {
	return ProviderName
}

func (p *provider) EmbedBatch(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	vectors := make([]embedding.Vector, 0, len(texts))
	for start := 0; start < len(texts); start += MaxTextsPerRequest {
		end := min(start+MaxTextsPerRequest, len(texts))
		part, err := p.invoke(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, part...)
	}
	return vectors, nil
}

func (p *provider) invoke(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	body, err := json.Marshal(cohereRequest{
		Texts:     texts,
		InputType: "clustering",
		Truncate:  "END",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request payload: %w", err)
	}

	out, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.model),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			p.logger.WithError(err).WithField("status", respErr.HTTPStatusCode()).
				Error("non-OK response from bedrock embeddings")
			return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, respErr.HTTPStatusCode())
		}
		p.logger.WithError(err).Error("error invoking bedrock embeddings model")
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: empty bedrock output", embedding.ErrMalformedResponse)
	}

	var resp cohereResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", embedding.ErrMalformedResponse, err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d", embedding.ErrMalformedResponse, len(texts), len(resp.Embeddings))
	}
	vectors := make([]embedding.Vector, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		vectors[i] = embedding.Vector(e)
	}
	return vectors, nil
}
