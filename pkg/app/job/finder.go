package job

import (
	"context"
	"errors"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/google/uuid"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=job_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, id uuid.UUID) (*domainJob.Job, error)
	FindResult(ctx context.Context, id uuid.UUID) (*domainJob.Result, error)
}

type finder struct {
	repo domainJob.Repository
}

func NewFinder(repo domainJob.Repository) Finder {
	return &finder{repo: repo}
}

func (f *finder) Find(ctx context.Context, id uuid.UUID) (*domainJob.Job, error) {
	return f.repo.Get(ctx, id)
}

// FindResult returns ErrResultNotReady while the job exists but has not
// finished, and ErrJobNotFound when there is no such job.
func (f *finder) FindResult(ctx context.Context, id uuid.UUID) (*domainJob.Result, error) {
	result, err := f.repo.GetResult(ctx, id)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, domainJob.ErrJobNotFound) {
		return nil, err
	}
	if _, err := f.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return nil, domainJob.ErrResultNotReady
}
