package job

import (
	"context"
	"testing"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/job/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinder_FindResult(t *testing.T) {
	id := uuid.New()

	t.Run("finished", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		want := &domainJob.Result{JobID: id, Status: domainJob.StatusSuccess}
		repo.EXPECT().GetResult(mock.Anything, id).Return(want, nil).Once()

		got, err := NewFinder(repo).FindResult(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("still running", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().GetResult(mock.Anything, id).Return(nil, domainJob.ErrJobNotFound).Once()
		repo.EXPECT().Get(mock.Anything, id).Return(&domainJob.Job{ID: id, Status: domainJob.StatusRunning}, nil).Once()

		_, err := NewFinder(repo).FindResult(context.Background(), id)
		assert.ErrorIs(t, err, domainJob.ErrResultNotReady)
	})

	t.Run("unknown job", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().GetResult(mock.Anything, id).Return(nil, domainJob.ErrJobNotFound).Once()
		repo.EXPECT().Get(mock.Anything, id).Return(nil, domainJob.ErrJobNotFound).Once()

		_, err := NewFinder(repo).FindResult(context.Background(), id)
		assert.ErrorIs(t, err, domainJob.ErrJobNotFound)
	})
}
