package http

import (
	appJob "github.com/NeuralTrust/TrustIntent/pkg/app/job"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createJobHandler struct {
	logger           *logrus.Logger
	creator          appJob.Creator
	defaultThreshold float64
}

func NewCreateJobHandler(logger *logrus.Logger, creator appJob.Creator, defaultThreshold float64) Handler {
	return &createJobHandler{
		logger:           logger,
		creator:          creator,
		defaultThreshold: defaultThreshold,
	}
}

// Handle @Summary Enqueue a scoring job
// @Description Validates the document and queues it for the worker
// @Tags Jobs
// @Accept json
// @Produce json
// @Param compare query string true "labeled or unlabeled"
// @Param threshold query number false "Minimum score (default 0.6)"
// @Param payload body object true "Input document"
// @Success 202 {object} map[string]interface{} "Job accepted"
// @Failure 400 {object} map[string]interface{} "Invalid document or parameters"
// @Router /api/v1/jobs [post]
func (h *createJobHandler) Handle(c *fiber.Ctx) error {
	raw := map[string]interface{}{"threshold": h.defaultThreshold}
	for k, v := range c.Queries() {
		raw[k] = v
	}
	params, err := domainJob.DecodeParameters(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payload := append([]byte(nil), c.Body()...)
	j, err := h.creator.Create(c.Context(), params, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.WithFields(logrus.Fields{
		"job_id":  j.ID.String(),
		"compare": string(params.Compare),
	}).Info("job enqueued")

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id": j.ID.String(),
		"status": j.Status,
	})
}
