package dependency_container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NeuralTrust/TrustIntent/pkg/app/embedder"
	appJob "github.com/NeuralTrust/TrustIntent/pkg/app/job"
	"github.com/NeuralTrust/TrustIntent/pkg/app/scorer"
	appSimilarity "github.com/NeuralTrust/TrustIntent/pkg/app/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/config"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	handlers "github.com/NeuralTrust/TrustIntent/pkg/handlers/http"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/cache"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/embedding/factory"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/publisher/kafka"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/queue"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/repository"
	"github.com/NeuralTrust/TrustIntent/pkg/middleware"
	"github.com/NeuralTrust/TrustIntent/pkg/worker"
	"github.com/sirupsen/logrus"
)

// Scoring holds the in-process pipeline: provider, embedding client, scorer
// and comparer. It needs no Redis and backs both the API and local CLI runs.
type Scoring struct {
	Provider        embedding.Provider
	EmbeddingClient embedding.Client
	Scorer          scorer.Scorer
	Comparer        appSimilarity.Comparer
}

func NewScoring(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Scoring, error) {
	fastClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.Embedding.RequestTimeout),
		httpx.WithUserAgent("trustintent"),
	)

	opts := []factory.LocatorOption{
		factory.WithRequestTimeout(cfg.Embedding.RequestTimeout),
		factory.WithHTTPClient(&http.Client{Timeout: cfg.Embedding.RequestTimeout}),
	}
	if cfg.Breaker.Enabled {
		opts = append(opts, factory.WithBreaker(httpx.BreakerSettings{
			Timeout:     cfg.Breaker.Timeout,
			MaxFailures: cfg.Breaker.MaxFailures,
			Logger:      logger,
		}))
	}
	locator := factory.NewServiceLocator(logger, fastClient, opts...)

	provider, err := locator.GetProvider(ctx, cfg.Embedding.ProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding provider: %w", err)
	}
	client, err := embedder.NewClient(provider, cfg.Embedding.BatchSize, logger)
	if err != nil {
		return nil, err
	}

	return &Scoring{
		Provider:        provider,
		EmbeddingClient: client,
		Scorer:          scorer.NewScorer(client, logger),
		Comparer:        appSimilarity.NewComparer(client, logger),
	}, nil
}

type Container struct {
	*Scoring
	Cache               cache.Client
	JobRepository       domainJob.Repository
	JobQueue            domainJob.Queue
	JobCreator          appJob.Creator
	JobFinder           appJob.Finder
	JobHandler          appJob.Handler
	ResultPublisher     domainJob.ResultPublisher
	Worker              worker.Worker
	HandlerTransport    *handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport

	kafkaPublisher *kafka.Publisher
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(ctx context.Context, di ContainerDI) (*Container, error) {
	cfg, logger := di.Cfg, di.Logger

	scoring, err := NewScoring(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Scoring:       scoring,
		Cache:         cacheClient,
		JobRepository: repository.NewRedisJobRepository(cacheClient, cfg.Queue.JobTTL),
		JobQueue:      queue.NewRedisQueue(cacheClient, cfg.Queue.Key),
	}

	if cfg.Kafka.Enabled {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Settings())
		if err != nil {
			_ = cacheClient.Close()
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		c.kafkaPublisher = publisher
		c.ResultPublisher = publisher
	}

	c.JobCreator = appJob.NewCreator(c.JobRepository, c.JobQueue, logger)
	c.JobFinder = appJob.NewFinder(c.JobRepository)
	c.JobHandler = appJob.NewHandler(appJob.DefaultWorkerName, c.Scorer, c.JobRepository, c.ResultPublisher, logger)
	c.Worker = worker.NewWorker(c.JobQueue, c.JobRepository, c.JobHandler, worker.Config{
		Concurrency: cfg.Queue.Workers,
		PollTimeout: cfg.Queue.PollTimeout,
	}, logger)

	threshold := cfg.Scoring.DefaultThreshold
	c.HandlerTransport = &handlers.HandlerTransport{
		ScoreHandler:          handlers.NewScoreHandler(logger, c.Scorer, threshold),
		ScoreUnlabeledHandler: handlers.NewScoreUnlabeledHandler(logger, c.Scorer, threshold),
		SimilarityHandler:     handlers.NewSimilarityHandler(logger, c.Comparer, threshold),
		CreateJobHandler:      handlers.NewCreateJobHandler(logger, c.JobCreator, threshold),
		GetJobHandler:         handlers.NewGetJobHandler(logger, c.JobFinder),
		GetJobResultHandler:   handlers.NewGetJobResultHandler(logger, c.JobFinder),
		GetVersionHandler:     handlers.NewGetVersionHandler(logger),
	}
	c.MiddlewareTransport = middleware.NewTransport(
		middleware.NewPanicRecoverMiddleware(logger),
		middleware.NewTraceMiddleware(),
		middleware.NewMetricsMiddleware(),
	)

	return c, nil
}

func (c *Container) Close() error {
	if c.kafkaPublisher != nil {
		c.kafkaPublisher.Close()
	}
	return c.Cache.Close()
}
