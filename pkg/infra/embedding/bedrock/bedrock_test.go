package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/bedrock/mocks"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = embedding.Config{
	Provider: ProviderName,
	Region:   "eu-west-1",
	Credentials: embedding.Credentials{
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
	},
}

func newTestProvider(t *testing.T) (embedding.Provider, *mocks.Client) {
	t.Helper()
	base := mocks.NewClient(t)
	bound := mocks.NewClient(t)
	base.EXPECT().BuildClient(mock.Anything, "AKIDEXAMPLE", "secret", "eu-west-1").Return(bound, nil)

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	p, err := NewProvider(context.Background(), base, testConfig, logger)
	require.NoError(t, err)
	return p, bound
}

func cohereOutput(t *testing.T, vectors [][]float64) *bedrockruntime.InvokeModelOutput {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"embeddings": vectors})
	require.NoError(t, err)
	return &bedrockruntime.InvokeModelOutput{Body: body}
}

func TestNewProvider_RequiresRegion(t *testing.T) {
	cfg := testConfig
	cfg.Region = ""
	_, err := NewProvider(context.Background(), mocks.NewClient(t), cfg, logrus.New())
	assert.ErrorIs(t, err, embedding.ErrConfiguration)
}

func TestNewProvider_BuildFailure(t *testing.T) {
	base := mocks.NewClient(t)
	base.EXPECT().BuildClient(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("no credentials"))

	_, err := NewProvider(context.Background(), base, testConfig, logrus.New())
	assert.ErrorIs(t, err, embedding.ErrConfiguration)
}

func TestEmbedBatch(t *testing.T) {
	p, client := newTestProvider(t)

	client.EXPECT().InvokeModel(mock.Anything, mock.MatchedBy(func(in *bedrockruntime.InvokeModelInput) bool {
		var req cohereRequest
		if err := json.Unmarshal(in.Body, &req); err != nil {
			return false
		}
		return aws.ToString(in.ModelId) == DefaultModel &&
			req.InputType == "clustering" &&
			assert.ObjectsAreEqual([]string{"hello", "bye"}, req.Texts)
	})).Return(cohereOutput(t, [][]float64{{1, 0}, {0, 1}}), nil).Once()

	vectors, err := p.EmbedBatch(context.Background(), []string{"hello", "bye"})
	require.NoError(t, err)
	assert.Equal(t, []embedding.Vector{{1, 0}, {0, 1}}, vectors)
}

func TestEmbedBatch_SplitsLargeBatches(t *testing.T) {
	p, client := newTestProvider(t)

	texts := make([]string, MaxTextsPerRequest+4)
	for i := range texts {
		texts[i] = fmt.Sprintf("text-%d", i)
	}

	var sizes []int
	client.EXPECT().InvokeModel(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
			var req cohereRequest
			require.NoError(t, json.Unmarshal(in.Body, &req))
			sizes = append(sizes, len(req.Texts))
			out := make([][]float64, len(req.Texts))
			for i := range out {
				out[i] = []float64{float64(len(sizes))}
			}
			return cohereOutput(t, out), nil
		}).Twice()

	vectors, err := p.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)
	assert.Equal(t, []int{MaxTextsPerRequest, 4}, sizes)
	require.Len(t, vectors, len(texts))
	assert.Equal(t, embedding.Vector{1}, vectors[0])
	assert.Equal(t, embedding.Vector{2}, vectors[len(texts)-1])
}

func TestEmbedBatch_InvokeFailure(t *testing.T) {
	p, client := newTestProvider(t)
	client.EXPECT().InvokeModel(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: timeout"))

	_, err := p.EmbedBatch(context.Background(), []string{"hello"})
	assert.ErrorIs(t, err, embedding.ErrTransport)
}

func TestEmbedBatch_MalformedBody(t *testing.T) {
	p, client := newTestProvider(t)
	client.EXPECT().InvokeModel(mock.Anything, mock.Anything).
		Return(&bedrockruntime.InvokeModelOutput{Body: []byte("not json")}, nil)

	_, err := p.EmbedBatch(context.Background(), []string{"hello"})
	assert.ErrorIs(t, err, embedding.ErrMalformedResponse)
}

func TestEmbedBatch_CountMismatch(t *testing.T) {
	p, client := newTestProvider(t)
	client.EXPECT().InvokeModel(mock.Anything, mock.Anything).
		Return(cohereOutput(t, [][]float64{{1}}), nil)

	_, err := p.EmbedBatch(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, embedding.ErrMalformedResponse)
}
