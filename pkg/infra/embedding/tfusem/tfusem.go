package tfusem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	ProviderName          = "tfusem"
	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	FormatAuto = ""
	FormatNPY  = "npy"
	FormatJSON = "json"

	DefaultRequestTimeout = 60 * time.Second
)

// doer is the part of *fasthttp.Client the provider uses.
type doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type provider struct {
	client  doer
	cfg     embedding.Config
	breaker httpx.CircuitBreaker
	timeout time.Duration
	logger  *logrus.Logger
}

// NewProvider returns a provider that POSTs a JSON array of texts to
// cfg.Endpoint and decodes the returned matrix. breaker may be nil.
func NewProvider(
	client doer,
	cfg embedding.Config,
	breaker httpx.CircuitBreaker,
	timeout time.Duration,
	logger *logrus.Logger,
) (embedding.Provider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: %s endpoint is required", embedding.ErrConfiguration, ProviderName)
	}
	if cfg.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("%w: %s api key is required", embedding.ErrConfiguration, ProviderName)
	}
	switch cfg.Format {
	case FormatAuto, FormatNPY, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: unknown response format %q", embedding.ErrConfiguration, cfg.Format)
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &provider{
		client:  client,
		cfg:     cfg,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (p *provider) Name() string {
	return ProviderName
}

func (p *provider) EmbedBatch(ctx context.Context, texts []string) ([]embedding.Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", embedding.ErrTransport, err)
	}

	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request payload: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.cfg.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set(SubscriptionKeyHeader, p.cfg.Credentials.ApiKey)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip, br, zstd, deflate")
	req.SetBody(payload)

	call := func() error {
		if err := p.doRequestWithContext(ctx, req, resp); err != nil {
			return fmt.Errorf("%w: %w", embedding.ErrTransport, err)
		}
		if resp.StatusCode() != fasthttp.StatusOK {
			p.logger.WithFields(logrus.Fields{
				"status":   resp.StatusCode(),
				"response": truncate(string(resp.Body()), 512),
			}).Error("non-OK response from embeddings API")
			return fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, resp.StatusCode())
		}
		return nil
	}
	if p.breaker != nil {
		err = p.breaker.Execute(call)
		if httpx.IsOpen(err) {
			err = fmt.Errorf("%w: %w", embedding.ErrTransport, err)
		}
	} else {
		err = call()
	}
	if err != nil {
		return nil, err
	}

	body, err := httpx.DecodeResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", embedding.ErrMalformedResponse, err)
	}

	vectors, err := p.decode(string(resp.Header.ContentType()), body)
	if err != nil {
		p.logger.WithError(err).Error("failed to decode embeddings response")
		return nil, fmt.Errorf("%w: %v", embedding.ErrMalformedResponse, err)
	}
	return vectors, nil
}

func (p *provider) decode(contentType string, body []byte) ([]embedding.Vector, error) {
	switch p.cfg.Format {
	case FormatNPY:
		return decodeNPY(body)
	case FormatJSON:
		return decodeJSON(body)
	}
	if isNPY(body) || strings.Contains(contentType, "octet-stream") || strings.Contains(contentType, "npy") {
		return decodeNPY(body)
	}
	return decodeJSON(body)
}

func (p *provider) doRequestWithContext(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.client.DoTimeout(req, resp, p.timeout)
	}()

	select {
	case <-ctx.Done():
		// The request and response stay in use by DoTimeout until it
		// returns, so wait for it before they are released.
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			p.logger.WithError(err).Error("error performing HTTP request for embeddings")
		}
		return err
	}
}

// IgnoreForBreaker reports failures that say nothing about the remote side's
// health and must not trip a breaker.
func IgnoreForBreaker(err error) bool {
	return errors.Is(err, context.Canceled)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
