package job

import (
	"context"
	"errors"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/job/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const document = `{"inputs": {
	"1": {"input": "order pizza", "classifier": {"label": "order"}},
	"2": {"input": "cancel order", "classifier": {"label": "cancel"}},
	"3": {"input": "hello", "classifier": {"label": null}}
}}`

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestCreator_Create(t *testing.T) {
	repo := mocks.NewRepository(t)
	queue := mocks.NewQueue(t)

	var saved *domainJob.Job
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*job.Job")).
		Run(func(_ context.Context, j *domainJob.Job) { saved = j }).
		Return(nil).Once()
	queue.EXPECT().Push(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Run(func(_ context.Context, id uuid.UUID) { assert.Equal(t, saved.ID, id) }).
		Return(nil).Once()

	params := domainJob.Parameters{Compare: domainJob.CompareLabeled, Threshold: 0.6}
	j, err := NewCreator(repo, queue, newLogger()).Create(context.Background(), params, []byte(document))
	require.NoError(t, err)
	assert.Equal(t, domainJob.StatusQueued, j.Status)
	assert.Equal(t, params, j.Parameters)
	assert.JSONEq(t, document, string(j.Payload))
}

func TestCreator_RejectsMalformedDocument(t *testing.T) {
	repo := mocks.NewRepository(t)
	queue := mocks.NewQueue(t)

	params := domainJob.Parameters{Compare: domainJob.CompareLabeled, Threshold: 0.6}
	_, err := NewCreator(repo, queue, newLogger()).Create(context.Background(), params, []byte(`{"data": {}}`))
	assert.ErrorIs(t, err, dataset.ErrInputShape)
}

func TestCreator_QueueFailure(t *testing.T) {
	repo := mocks.NewRepository(t)
	queue := mocks.NewQueue(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	queue.EXPECT().Push(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	params := domainJob.Parameters{Compare: domainJob.CompareUnlabeled, Threshold: 0.6}
	_, err := NewCreator(repo, queue, newLogger()).Create(context.Background(), params, []byte(document))
	assert.ErrorContains(t, err, "failed to enqueue job")
}
