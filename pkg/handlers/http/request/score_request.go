package request

import (
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/app/pairs"
)

const (
	AlgorithmIDPaired     = "id_paired"
	AlgorithmIndexMatched = "index_matched"

	FormatRecords = "records"
	FormatLegacy  = "legacy"
)

// ScoreQuery holds the query options of a labeled scoring request.
type ScoreQuery struct {
	Algorithm string `query:"algorithm"`
	Format    string `query:"format"`
}

func (q *ScoreQuery) Validate() error {
	if q.Algorithm == "" {
		q.Algorithm = AlgorithmIDPaired
	}
	if q.Format == "" {
		q.Format = FormatRecords
	}
	if q.Algorithm != AlgorithmIDPaired && q.Algorithm != AlgorithmIndexMatched {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidRequest, q.Algorithm)
	}
	if q.Format != FormatRecords && q.Format != FormatLegacy {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidRequest, q.Format)
	}
	return nil
}

// UnlabeledQuery holds the query options of an unlabeled scoring request.
type UnlabeledQuery struct {
	Pairing string `query:"pairing"`
}

func (q *UnlabeledQuery) Validate() error {
	if q.Pairing == "" {
		q.Pairing = string(pairs.ModeCombinations)
	}
	if !pairs.Mode(q.Pairing).Valid() {
		return fmt.Errorf("%w: unknown pairing %q", ErrInvalidRequest, q.Pairing)
	}
	return nil
}
