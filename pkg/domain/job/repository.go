package job

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=job_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, job *Job) error
	Get(ctx context.Context, id uuid.UUID) (*Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	SaveResult(ctx context.Context, result *Result) error
	GetResult(ctx context.Context, id uuid.UUID) (*Result, error)
}

//go:generate mockery --name=Queue --dir=. --output=./mocks --filename=job_queue_mock.go --case=underscore --with-expecter
type Queue interface {
	Push(ctx context.Context, id uuid.UUID) error
	// Pop blocks up to timeout and returns ErrQueueEmpty when nothing arrived.
	Pop(ctx context.Context, timeout time.Duration) (uuid.UUID, error)
}

//go:generate mockery --name=ResultPublisher --dir=. --output=./mocks --filename=result_publisher_mock.go --case=underscore --with-expecter
type ResultPublisher interface {
	Publish(ctx context.Context, result *Result) error
}
