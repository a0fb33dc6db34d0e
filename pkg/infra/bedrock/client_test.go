package bedrock

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeModel_NotInitialized(t *testing.T) {
	c := NewClient(logrus.New())

	_, err := c.InvokeModel(context.Background(), &bedrockruntime.InvokeModelInput{
		ModelId: aws.String("cohere.embed-english-v3"),
	})
	assert.EqualError(t, err, "client not initialized")
}

func TestBuildClient(t *testing.T) {
	base := NewClient(logrus.New())

	built, err := base.BuildClient(context.Background(), "AKIDEXAMPLE", "secret", "us-east-1")
	require.NoError(t, err)
	require.NotNil(t, built)
	assert.NotSame(t, base, built)

	impl, ok := built.(*client)
	require.True(t, ok)
	assert.NotNil(t, impl.client)
	assert.Equal(t, "us-east-1", impl.client.Options().Region)

	creds, err := impl.client.Options().Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
}
