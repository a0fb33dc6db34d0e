package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrInternal           = "internal server error"
)

// statusFor maps a core error onto the HTTP status the API reports for it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrInputShape),
		errors.Is(err, similarity.ErrInvalidThreshold),
		errors.Is(err, similarity.ErrLegacyLabelConflict),
		errors.Is(err, domainJob.ErrUnsupportedMode),
		errors.Is(err, request.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domainJob.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domainJob.ErrResultNotReady):
		return fiber.StatusConflict
	case embedding.IsTransportFailure(err),
		errors.Is(err, similarity.ErrDimensionMismatch):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case fiber.StatusInternalServerError:
		logger.WithError(err).WithField("path", c.Path()).Error("request failed")
		msg = ErrInternal
	case fiber.StatusBadGateway:
		logger.WithError(err).WithField("path", c.Path()).Warn("embedding provider failure")
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// thresholdQuery reads ?threshold=, falling back to def when absent.
func thresholdQuery(c *fiber.Ctx, def float64) (float64, error) {
	raw := c.Query("threshold")
	if raw == "" {
		return def, nil
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: threshold %q is not a number", similarity.ErrInvalidThreshold, raw)
	}
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return 0, err
	}
	return threshold, nil
}
