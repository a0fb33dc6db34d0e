package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/app/scorer"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const DefaultWorkerName = "Job Worker"

//go:generate mockery --name=Handler --dir=. --output=./mocks --filename=job_handler_mock.go --case=underscore --with-expecter
type Handler interface {
	// Handle runs one job to completion. Every failure, including an
	// unsupported compare mode, is reported through the returned Result.
	Handle(ctx context.Context, j *domainJob.Job) *domainJob.Result
}

type handler struct {
	name      string
	scorer    scorer.Scorer
	repo      domainJob.Repository
	publisher domainJob.ResultPublisher
	logger    *logrus.Logger
}

// NewHandler builds a job handler. publisher may be nil.
func NewHandler(
	name string,
	scorer scorer.Scorer,
	repo domainJob.Repository,
	publisher domainJob.ResultPublisher,
	logger *logrus.Logger,
) Handler {
	if name == "" {
		name = DefaultWorkerName
	}
	return &handler{
		name:      name,
		scorer:    scorer,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *handler) Handle(ctx context.Context, j *domainJob.Job) *domainJob.Result {
	start := time.Now()
	log := h.logger.WithFields(logrus.Fields{
		"job_id":  j.ID.String(),
		"compare": j.Parameters.Compare,
	})

	if err := h.repo.UpdateStatus(ctx, j.ID, domainJob.StatusRunning); err != nil {
		log.WithError(err).Warn("failed to mark job as running")
	}

	var result *domainJob.Result
	output, err := h.run(ctx, j)
	if err != nil {
		log.WithError(err).Info("handled job as failed")
		result = domainJob.NewFailedResult(j.ID, err)
	} else {
		result = &domainJob.Result{
			JobID:  j.ID,
			Status: domainJob.StatusSuccess,
			Params: map[string]interface{}{
				"worker":     h.name,
				"time":       time.Now().UTC().Format("2006-01-02T15:04:05Z"),
				"input_data": j.Parameters.Map(),
			},
			Output:     output,
			FinishedAt: time.Now().UTC(),
		}
		log.Info("handled job")
	}

	h.finish(ctx, log, result)

	compare := string(j.Parameters.Compare)
	prometheus.JobsTotal.WithLabelValues(compare, string(result.Status)).Inc()
	if prometheus.Config.EnableLatency {
		prometheus.JobLatency.WithLabelValues(compare).Observe(float64(time.Since(start).Milliseconds()))
	}
	return result
}

func (h *handler) run(ctx context.Context, j *domainJob.Job) (json.RawMessage, error) {
	if !j.Parameters.Compare.Valid() {
		return nil, fmt.Errorf("%w: %q", domainJob.ErrUnsupportedMode, j.Parameters.Compare)
	}
	ds, err := dataset.Parse(j.Payload)
	if err != nil {
		return nil, err
	}

	var output interface{}
	switch j.Parameters.Compare {
	case domainJob.CompareLabeled:
		output, err = h.scorer.ScoreLabeled(ctx, ds, j.Parameters.Threshold)
	case domainJob.CompareUnlabeled:
		output, err = h.scorer.ScoreUnlabeled(ctx, ds, j.Parameters.Threshold)
	}
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("failed to encode job output: %w", err)
	}
	return raw, nil
}

func (h *handler) finish(ctx context.Context, log *logrus.Entry, result *domainJob.Result) {
	if err := h.repo.SaveResult(ctx, result); err != nil {
		log.WithError(err).Error("failed to store job result")
	}
	if err := h.repo.UpdateStatus(ctx, result.JobID, result.Status); err != nil {
		log.WithError(err).Error("failed to update job status")
	}
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, result); err != nil {
		log.WithError(err).Warn("failed to publish job result")
	}
}
