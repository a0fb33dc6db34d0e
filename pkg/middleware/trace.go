package middleware

import (
	"github.com/NeuralTrust/TrustIntent/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type traceMiddleware struct{}

// NewTraceMiddleware tags each request with a trace ID, reusing the caller's
// X-Trace-Id header when present, and echoes it on the response.
func NewTraceMiddleware() Middleware {
	return &traceMiddleware{}
}

func (m *traceMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(common.TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}
		c.Locals(common.TraceIdKey, traceID)
		c.Set(common.TraceIDHeader, traceID)
		return c.Next()
	}
}
