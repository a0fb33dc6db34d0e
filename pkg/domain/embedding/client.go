package embedding

import (
	"context"
)

const DefaultBatchSize = 100

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=embedding_client_mock.go --case=underscore --with-expecter

// Client turns an ordered list of texts into an ordered list of vectors.
// The result always has one vector per text, in submission order.
type Client interface {
	Embed(ctx context.Context, texts []string) ([]Vector, error)
}

//go:generate mockery --name=Provider --dir=. --output=./mocks --filename=embedding_provider_mock.go --case=underscore --with-expecter

// Provider performs a single round trip to a remote embedding capability
// for one chunk of texts.
type Provider interface {
	Name() string
	EmbedBatch(ctx context.Context, texts []string) ([]Vector, error)
}
