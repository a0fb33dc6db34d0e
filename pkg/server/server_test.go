package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	jobMocks "github.com/NeuralTrust/TrustIntent/pkg/app/job/mocks"
	scorerMocks "github.com/NeuralTrust/TrustIntent/pkg/app/scorer/mocks"
	similarityMocks "github.com/NeuralTrust/TrustIntent/pkg/app/similarity/mocks"
	"github.com/NeuralTrust/TrustIntent/pkg/config"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	handlers "github.com/NeuralTrust/TrustIntent/pkg/handlers/http"
	"github.com/NeuralTrust/TrustIntent/pkg/middleware"
	"github.com/NeuralTrust/TrustIntent/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*APIServer, *similarityMocks.Comparer) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{Server: config.ServerConfig{Port: 8080, BodyLimitMB: 1}}
	comparer := similarityMocks.NewComparer(t)
	scorer := scorerMocks.NewScorer(t)
	creator := jobMocks.NewCreator(t)
	finder := jobMocks.NewFinder(t)

	transport := &handlers.HandlerTransport{
		ScoreHandler:          handlers.NewScoreHandler(logger, scorer, 0.6),
		ScoreUnlabeledHandler: handlers.NewScoreUnlabeledHandler(logger, scorer, 0.6),
		SimilarityHandler:     handlers.NewSimilarityHandler(logger, comparer, 0.6),
		CreateJobHandler:      handlers.NewCreateJobHandler(logger, creator, 0.6),
		GetJobHandler:         handlers.NewGetJobHandler(logger, finder),
		GetJobResultHandler:   handlers.NewGetJobResultHandler(logger, finder),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}
	mw := middleware.NewTransport(
		middleware.NewPanicRecoverMiddleware(logger),
		middleware.NewTraceMiddleware(),
		middleware.NewMetricsMiddleware(),
	)
	return NewAPIServer(cfg, logger, router.NewAPIRouter(mw, transport, cfg.Server.Port)), comparer
}

func TestAPIServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.Router.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAPIServer_Version(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.Router.Test(httptest.NewRequest("GET", "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"app_name":"TrustIntent"`)
}

func TestAPIServer_RoutesThroughMiddleware(t *testing.T) {
	s, comparer := newTestServer(t)
	comparer.EXPECT().Similarity(mock.Anything, "a", "b", 0.6).Return(similarity.NewResult(1, 0.6), nil).Once()

	req := httptest.NewRequest("POST", "/api/v1/similarity", strings.NewReader(`{"a": "a", "b": "b"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.Router.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))
}

func TestAPIServer_UnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.Router.Test(httptest.NewRequest("GET", "/api/v1/gateways", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
