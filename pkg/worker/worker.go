package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	appJob "github.com/NeuralTrust/TrustIntent/pkg/app/job"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 1
	DefaultPollTimeout = 5 * time.Second
	errorBackoff       = time.Second
)

type Config struct {
	Concurrency int
	PollTimeout time.Duration
}

type Worker interface {
	// Run consumes jobs until ctx is cancelled. A job that was already
	// popped is processed to completion.
	Run(ctx context.Context) error
}

type worker struct {
	queue   domainJob.Queue
	repo    domainJob.Repository
	handler appJob.Handler
	cfg     Config
	logger  *logrus.Logger
}

func NewWorker(
	queue domainJob.Queue,
	repo domainJob.Repository,
	handler appJob.Handler,
	cfg Config,
	logger *logrus.Logger,
) Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}
	return &worker{
		queue:   queue,
		repo:    repo,
		handler: handler,
		cfg:     cfg,
		logger:  logger,
	}
}

func (w *worker) Run(ctx context.Context) error {
	w.logger.WithField("concurrency", w.cfg.Concurrency).Info("starting job workers")
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.cfg.Concurrency; i++ {
		id := i
		g.Go(func() error {
			w.loop(ctx, id)
			return nil
		})
	}
	err := g.Wait()
	w.logger.Info("job workers stopped")
	return err
}

func (w *worker) loop(ctx context.Context, workerID int) {
	log := w.logger.WithField("worker_id", workerID)
	for {
		if ctx.Err() != nil {
			return
		}
		id, err := w.queue.Pop(ctx, w.cfg.PollTimeout)
		if err != nil {
			if errors.Is(err, domainJob.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Error("failed to pop job")
			select {
			case <-ctx.Done():
				return
			case <-time.After(errorBackoff):
			}
			continue
		}

		w.process(context.WithoutCancel(ctx), log, id)
	}
}

// process loads and handles one popped job. ctx is detached from shutdown, so
// the job reaches a final status even when the worker is stopping.
func (w *worker) process(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	log = log.WithField("job_id", id.String())
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("job handler panicked")
			w.fail(ctx, log, id, fmt.Errorf("job handler panicked: %v", r))
		}
	}()

	j, err := w.repo.Get(ctx, id)
	if err != nil {
		log.WithError(err).Warn("dropping job without record")
		return
	}

	result := w.handler.Handle(ctx, j)
	log.WithField("status", result.Status).Info("job finished")
}

func (w *worker) fail(ctx context.Context, log *logrus.Entry, id uuid.UUID, cause error) {
	result := domainJob.NewFailedResult(id, cause)
	if err := w.repo.SaveResult(ctx, result); err != nil {
		log.WithError(err).Error("failed to store job result")
	}
	if err := w.repo.UpdateStatus(ctx, id, domainJob.StatusFailed); err != nil {
		log.WithError(err).Error("failed to update job status")
	}
}
