package http

import (
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/app/scorer"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type scoreHandler struct {
	logger           *logrus.Logger
	scorer           scorer.Scorer
	defaultThreshold float64
}

func NewScoreHandler(logger *logrus.Logger, scorer scorer.Scorer, defaultThreshold float64) Handler {
	return &scoreHandler{
		logger:           logger,
		scorer:           scorer,
		defaultThreshold: defaultThreshold,
	}
}

// Handle @Summary Score labeled utterances
// @Description Embeds every labeled utterance and returns the cross-label pairs whose score reaches the threshold
// @Tags Scores
// @Accept json
// @Produce json
// @Param threshold query number false "Minimum score (default 0.6)"
// @Param algorithm query string false "id_paired or index_matched"
// @Param format query string false "records or legacy"
// @Param payload body object true "Input document"
// @Success 200 {array} similarity.ScoredPair
// @Failure 400 {object} map[string]interface{} "Invalid document or parameters"
// @Failure 502 {object} map[string]interface{} "Embedding provider failure"
// @Router /api/v1/scores [post]
func (h *scoreHandler) Handle(c *fiber.Ctx) error {
	var query request.ScoreQuery
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

	var scored []similarity.ScoredPair
	switch query.Algorithm {
	case request.AlgorithmIndexMatched:
		scored, err = h.scorer.ScoreLabeledIndexMatched(c.Context(), ds, threshold)
	default:
		scored, err = h.scorer.ScoreLabeled(c.Context(), ds, threshold)
	}
	if err != nil {
		return respondError(c, h.logger, fmt.Errorf("failed to score dataset: %w", err))
	}

	if query.Format == request.FormatLegacy {
		records, err := similarity.LegacyRecords(scored)
		if err != nil {
			return respondError(c, h.logger, err)
		}
		return c.Status(fiber.StatusOK).JSON(records)
	}
	return c.Status(fiber.StatusOK).JSON(scored)
}
