package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// redisQueue is a FIFO list of job IDs: producers LPUSH, workers BRPOP.
type redisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client cache.Client, key string) domainJob.Queue {
	if key == "" {
		key = cache.JobQueueKey
	}
	return &redisQueue{
		client: client.RedisClient(),
		key:    key,
	}
}

func (q *redisQueue) Push(ctx context.Context, id uuid.UUID) error {
	if err := q.client.LPush(ctx, q.key, id.String()).Err(); err != nil {
		return fmt.Errorf("failed to push job %s: %w", id, err)
	}
	return nil
}

func (q *redisQueue) Pop(ctx context.Context, timeout time.Duration) (uuid.UUID, error) {
	values, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, domainJob.ErrQueueEmpty
		}
		return uuid.Nil, fmt.Errorf("failed to pop job: %w", err)
	}
	// BRPOP replies with [key, value].
	if len(values) != 2 {
		return uuid.Nil, fmt.Errorf("unexpected BRPOP reply of %d elements", len(values))
	}
	id, err := uuid.Parse(values[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid job id %q in queue: %w", values[1], err)
	}
	return id, nil
}
