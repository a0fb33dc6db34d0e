package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisQueue_Push(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := NewRedisQueue(cache.NewClientWithRedis(db), "")

	id := uuid.New()
	mock.ExpectLPush(cache.JobQueueKey, id.String()).SetVal(1)

	require.NoError(t, q.Push(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQueue_PushError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := NewRedisQueue(cache.NewClientWithRedis(db), "jobs")

	id := uuid.New()
	mock.ExpectLPush("jobs", id.String()).SetErr(errors.New("READONLY"))

	err := q.Push(context.Background(), id)
	assert.ErrorContains(t, err, "READONLY")
}

func TestRedisQueue_Pop(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := NewRedisQueue(cache.NewClientWithRedis(db), "")

	id := uuid.New()
	mock.ExpectBRPop(time.Second, cache.JobQueueKey).SetVal([]string{cache.JobQueueKey, id.String()})

	got, err := q.Pop(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQueue_PopTimeout(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := NewRedisQueue(cache.NewClientWithRedis(db), "")

	mock.ExpectBRPop(time.Second, cache.JobQueueKey).SetErr(redis.Nil)

	_, err := q.Pop(context.Background(), time.Second)
	assert.ErrorIs(t, err, domainJob.ErrQueueEmpty)
}

func TestRedisQueue_PopInvalidID(t *testing.T) {
	db, mock := redismock.NewClientMock()
	q := NewRedisQueue(cache.NewClientWithRedis(db), "")

	mock.ExpectBRPop(time.Second, cache.JobQueueKey).SetVal([]string{cache.JobQueueKey, "not-a-uuid"})

	_, err := q.Pop(context.Background(), time.Second)
	assert.ErrorContains(t, err, "invalid job id")
}
