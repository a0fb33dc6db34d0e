package http

import (
	appSimilarity "github.com/NeuralTrust/TrustIntent/pkg/app/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type similarityHandler struct {
	logger           *logrus.Logger
	comparer         appSimilarity.Comparer
	defaultThreshold float64
}

func NewSimilarityHandler(logger *logrus.Logger, comparer appSimilarity.Comparer, defaultThreshold float64) Handler {
	return &similarityHandler{
		logger:           logger,
		comparer:         comparer,
		defaultThreshold: defaultThreshold,
	}
}

// Handle @Summary Compare two strings
// @Description Embeds both strings and reports their score and whether it reaches the threshold
// @Tags Similarity
// @Accept json
// @Produce json
// @Param payload body request.SimilarityRequest true "Strings to compare"
// @Success 200 {object} similarity.Result
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 502 {object} map[string]interface{} "Embedding provider failure"
// @Router /api/v1/similarity [post]
func (h *similarityHandler) Handle(c *fiber.Ctx) error {
	var req request.SimilarityRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	threshold := h.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	result, err := h.comparer.Similarity(c.Context(), req.A, req.B, threshold)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
