package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/common"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecoverMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Use(NewPanicRecoverMiddleware(logger).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestTraceMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewTraceMiddleware().Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(common.TraceIdKey).(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	generated := resp.Header.Get(common.TraceIDHeader)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, generated, string(body))

	given := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.TraceIDHeader, given)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, given, resp.Header.Get(common.TraceIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMetricsMiddleware().Middleware())
	app.Get("/api/v1/jobs/:job_id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	counter := prometheus.HTTPRequestTotal.WithLabelValues("/api/v1/jobs/:job_id", "GET", "404")
	before := promtest.ToFloat64(counter)

	_, err := app.Test(httptest.NewRequest("GET", "/api/v1/jobs/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, before+1, promtest.ToFloat64(counter))
}
