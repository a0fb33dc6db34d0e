package job

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=job_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, params domainJob.Parameters, payload []byte) (*domainJob.Job, error)
}

type creator struct {
	repo   domainJob.Repository
	queue  domainJob.Queue
	logger *logrus.Logger
}

func NewCreator(repo domainJob.Repository, queue domainJob.Queue, logger *logrus.Logger) Creator {
	return &creator{
		repo:   repo,
		queue:  queue,
		logger: logger,
	}
}

// Create stores a job and pushes it onto the queue. The document is parsed
// once here so malformed input is rejected before a worker ever sees it.
func (c *creator) Create(
	ctx context.Context,
	params domainJob.Parameters,
	payload []byte,
) (*domainJob.Job, error) {
	if err := similarity.ValidateThreshold(params.Threshold); err != nil {
		return nil, err
	}
	if _, err := dataset.Parse(payload); err != nil {
		return nil, err
	}

	j := domainJob.New(params, payload)
	if err := c.repo.Save(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	if err := c.queue.Push(ctx, j.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"job_id":    j.ID.String(),
		"compare":   params.Compare,
		"threshold": params.Threshold,
	}).Info("job queued")
	return j, nil
}
