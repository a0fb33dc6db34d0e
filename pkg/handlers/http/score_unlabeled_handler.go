package http

import (
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/app/pairs"
	"github.com/NeuralTrust/TrustIntent/pkg/app/scorer"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type scoreUnlabeledHandler struct {
	logger           *logrus.Logger
	scorer           scorer.Scorer
	defaultThreshold float64
}

func NewScoreUnlabeledHandler(logger *logrus.Logger, scorer scorer.Scorer, defaultThreshold float64) Handler {
	return &scoreUnlabeledHandler{
		logger:           logger,
		scorer:           scorer,
		defaultThreshold: defaultThreshold,
	}
}

// Handle @Summary Score unlabeled utterances
// @Description Returns [textA, textB, score] triples for unlabeled utterances whose score reaches the threshold
// @Tags Scores
// @Accept json
// @Produce json
// @Param threshold query number false "Minimum score (default 0.6)"
// @Param pairing query string false "combinations or permutations"
// @Param payload body object true "Input document"
// @Success 200 {array} array
// @Failure 400 {object} map[string]interface{} "Invalid document or parameters"
// @Failure 502 {object} map[string]interface{} "Embedding provider failure"
// @Router /api/v1/scores/unlabeled [post]
func (h *scoreUnlabeledHandler) Handle(c *fiber.Ctx) error {
	var query request.UnlabeledQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := query.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	threshold, err := thresholdQuery(c, h.defaultThreshold)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	ds, err := dataset.Parse(c.Body())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var matches []similarity.UnlabeledMatch
	if pairs.Mode(query.Pairing) == pairs.ModePermutations {
		matches, err = h.scorer.ScoreUnlabeledSweep(c.Context(), ds, threshold)
	} else {
		matches, err = h.scorer.ScoreUnlabeled(c.Context(), ds, threshold)
	}
	if err != nil {
		return respondError(c, h.logger, fmt.Errorf("failed to score dataset: %w", err))
	}
	return c.Status(fiber.StatusOK).JSON(matches)
}
