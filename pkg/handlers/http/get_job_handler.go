package http

import (
	appJob "github.com/NeuralTrust/TrustIntent/pkg/app/job"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getJobHandler struct {
	logger *logrus.Logger
	finder appJob.Finder
}

func NewGetJobHandler(logger *logrus.Logger, finder appJob.Finder) Handler {
	return &getJobHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Get job status
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job status"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /api/v1/jobs/{job_id} [get]
func (h *getJobHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job ID"})
	}

	j, err := h.finder.Find(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"job_id":     j.ID.String(),
		"status":     j.Status,
		"parameters": j.Parameters,
		"created_at": j.CreatedAt,
		"updated_at": j.UpdatedAt,
	})
}
