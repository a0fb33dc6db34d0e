package http

import (
	appJob "github.com/NeuralTrust/TrustIntent/pkg/app/job"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getJobResultHandler struct {
	logger *logrus.Logger
	finder appJob.Finder
}

func NewGetJobResultHandler(logger *logrus.Logger, finder appJob.Finder) Handler {
	return &getJobResultHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Get job result
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} job.Result
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job still running"
// @Router /api/v1/jobs/{job_id}/result [get]
func (h *getJobResultHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job ID"})
	}

	result, err := h.finder.FindResult(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
