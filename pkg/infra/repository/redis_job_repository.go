package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const DefaultJobTTL = 24 * time.Hour

type redisJobRepository struct {
	cache cache.Client
	ttl   time.Duration
}

func NewRedisJobRepository(cache cache.Client, ttl time.Duration) domainJob.Repository {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}
	return &redisJobRepository{
		cache: cache,
		ttl:   ttl,
	}
}

func (r *redisJobRepository) Save(ctx context.Context, j *domainJob.Job) error {
	key := fmt.Sprintf(cache.JobKeyPattern, j.ID.String())
	jsonData, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return r.cache.Set(ctx, key, string(jsonData), r.ttl)
}

func (r *redisJobRepository) Get(ctx context.Context, id uuid.UUID) (*domainJob.Job, error) {
	key := fmt.Sprintf(cache.JobKeyPattern, id.String())
	jsonData, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", domainJob.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get job from cache: %w", err)
	}

	var j domainJob.Job
	if err := json.Unmarshal([]byte(jsonData), &j); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &j, nil
}

func (r *redisJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domainJob.Status) error {
	j, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	j.Status = status
	j.UpdatedAt = time.Now().UTC()
	return r.Save(ctx, j)
}

func (r *redisJobRepository) SaveResult(ctx context.Context, result *domainJob.Result) error {
	key := fmt.Sprintf(cache.JobResultKeyPattern, result.JobID.String())
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal job result: %w", err)
	}
	return r.cache.Set(ctx, key, string(jsonData), r.ttl)
}

func (r *redisJobRepository) GetResult(ctx context.Context, id uuid.UUID) (*domainJob.Result, error) {
	key := fmt.Sprintf(cache.JobResultKeyPattern, id.String())
	jsonData, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: no result for %s", domainJob.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get job result from cache: %w", err)
	}

	var result domainJob.Result
	if err := json.Unmarshal([]byte(jsonData), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job result: %w", err)
	}
	return &result, nil
}
