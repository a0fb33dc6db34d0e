package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NeuralTrust/TrustIntent/pkg/infra/httpx"
)

// apiClient calls a running intent API.
type apiClient struct {
	baseURL string
	client  httpx.Client
}

func newAPIClient(baseURL string, client httpx.Client) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		return nil, &apiError{Status: resp.StatusCode, Message: msg}
	}
	return data, nil
}

func (c *apiClient) Score(ctx context.Context, document []byte, threshold float64, algorithm, format string) ([]byte, error) {
	q := url.Values{}
	q.Set("threshold", formatFloat(threshold))
	if algorithm != "" {
		q.Set("algorithm", algorithm)
	}
	if format != "" {
		q.Set("format", format)
	}
	return c.do(ctx, http.MethodPost, "/api/v1/scores", q, document)
}

func (c *apiClient) ScoreUnlabeled(ctx context.Context, document []byte, threshold float64, pairing string) ([]byte, error) {
	q := url.Values{}
	q.Set("threshold", formatFloat(threshold))
	if pairing != "" {
		q.Set("pairing", pairing)
	}
	return c.do(ctx, http.MethodPost, "/api/v1/scores/unlabeled", q, document)
}

func (c *apiClient) Similarity(ctx context.Context, a, b string, threshold float64) ([]byte, error) {
	body, err := json.Marshal(map[string]interface{}{"a": a, "b": b, "threshold": threshold})
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/v1/similarity", nil, body)
}

func (c *apiClient) Enqueue(ctx context.Context, document []byte, compare string, threshold float64) ([]byte, error) {
	q := url.Values{}
	q.Set("compare", compare)
	q.Set("threshold", formatFloat(threshold))
	return c.do(ctx, http.MethodPost, "/api/v1/jobs", q, document)
}

func (c *apiClient) Status(ctx context.Context, jobID string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/jobs/"+url.PathEscape(jobID), nil, nil)
}

func (c *apiClient) Result(ctx context.Context, jobID string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/jobs/"+url.PathEscape(jobID)+"/result", nil, nil)
}
