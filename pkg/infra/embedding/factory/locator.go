package factory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	bedrockClient "github.com/NeuralTrust/TrustIntent/pkg/infra/bedrock"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/embedding/bedrock"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/embedding/gemini"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/embedding/openai"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/embedding/tfusem"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Locator builds an embedding.Provider from an embedding.Config.
type Locator struct {
	logger         *logrus.Logger
	fastClient     *fasthttp.Client
	httpClient     *http.Client
	bedrock        bedrockClient.Client
	breaker        *httpx.BreakerSettings
	requestTimeout time.Duration
}

type LocatorOption func(*Locator)

// WithBreaker puts a circuit breaker in front of HTTP providers that support one.
func WithBreaker(settings httpx.BreakerSettings) LocatorOption {
	return func(l *Locator) {
		l.breaker = &settings
	}
}

func WithRequestTimeout(timeout time.Duration) LocatorOption {
	return func(l *Locator) {
		l.requestTimeout = timeout
	}
}

func WithHTTPClient(client *http.Client) LocatorOption {
	return func(l *Locator) {
		l.httpClient = client
	}
}

func WithBedrockClient(client bedrockClient.Client) LocatorOption {
	return func(l *Locator) {
		l.bedrock = client
	}
}

func NewServiceLocator(logger *logrus.Logger, fastClient *fasthttp.Client, opts ...LocatorOption) *Locator {
	l := &Locator{
		logger:     logger,
		fastClient: fastClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.bedrock == nil {
		l.bedrock = bedrockClient.NewClient(logger)
	}
	return l
}

// GetProvider returns the provider named by cfg.Provider. An empty name
// selects the tfusem service.
func (l *Locator) GetProvider(ctx context.Context, cfg embedding.Config) (embedding.Provider, error) {
	switch cfg.Provider {
	case tfusem.ProviderName, "":
		if l.fastClient == nil {
			return nil, fmt.Errorf("%w: http client is required", embedding.ErrConfiguration)
		}
		var breaker httpx.CircuitBreaker
		if l.breaker != nil {
			settings := *l.breaker
			if settings.Ignore == nil {
				settings.Ignore = tfusem.IgnoreForBreaker
			}
			if settings.Name == "" {
				settings.Name = tfusem.ProviderName
			}
			breaker = httpx.NewCircuitBreaker(settings)
		}
		return tfusem.NewProvider(l.fastClient, cfg, breaker, l.requestTimeout, l.logger)
	case openai.ProviderName:
		return openai.NewProvider(cfg, l.httpClient, l.logger)
	case gemini.ProviderName:
		return gemini.NewProvider(ctx, cfg, l.httpClient, l.logger)
	case bedrock.ProviderName:
		return bedrock.NewProvider(ctx, l.bedrock, cfg, l.logger)
	default:
		return nil, fmt.Errorf("%w: %s", embedding.ErrUnsupportedProvider, cfg.Provider)
	}
}
