package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/NeuralTrust/TrustIntent/pkg/app/pairs"
	"github.com/NeuralTrust/TrustIntent/pkg/config"
	"github.com/NeuralTrust/TrustIntent/pkg/dependency_container"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

var errNeedsAPI = errors.New("job commands need a running API; drop --local")

// localBackend runs the scoring pipeline in-process. Job commands are not
// available without the queue.
type localBackend struct {
	scoring *dependency_container.Scoring
}

func newLocalBackend(ctx context.Context, configPath string) (*localBackend, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	scoring, err := dependency_container.NewScoring(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &localBackend{scoring: scoring}, nil
}

func (l *localBackend) Score(ctx context.Context, document []byte, threshold float64, algorithm, format string) ([]byte, error) {
	query := request.ScoreQuery{Algorithm: algorithm, Format: format}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	ds, err := dataset.Parse(document)
	if err != nil {
		return nil, err
	}
	var scored []similarity.ScoredPair
	if query.Algorithm == request.AlgorithmIndexMatched {
		scored, err = l.scoring.Scorer.ScoreLabeledIndexMatched(ctx, ds, threshold)
	} else {
		scored, err = l.scoring.Scorer.ScoreLabeled(ctx, ds, threshold)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to score dataset: %w", err)
	}
	if query.Format == request.FormatLegacy {
		records, err := similarity.LegacyRecords(scored)
		if err != nil {
			return nil, err
		}
		return json.Marshal(records)
	}
	return json.Marshal(scored)
}

func (l *localBackend) ScoreUnlabeled(ctx context.Context, document []byte, threshold float64, pairing string) ([]byte, error) {
	query := request.UnlabeledQuery{Pairing: pairing}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	ds, err := dataset.Parse(document)
	if err != nil {
		return nil, err
	}
	var matches []similarity.UnlabeledMatch
	if pairs.Mode(query.Pairing) == pairs.ModePermutations {
		matches, err = l.scoring.Scorer.ScoreUnlabeledSweep(ctx, ds, threshold)
	} else {
		matches, err = l.scoring.Scorer.ScoreUnlabeled(ctx, ds, threshold)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to score dataset: %w", err)
	}
	return json.Marshal(matches)
}

func (l *localBackend) Similarity(ctx context.Context, a, b string, threshold float64) ([]byte, error) {
	result, err := l.scoring.Comparer.Similarity(ctx, a, b, threshold)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

func (l *localBackend) Enqueue(context.Context, []byte, string, float64) ([]byte, error) {
	return nil, errNeedsAPI
}

func (l *localBackend) Status(context.Context, string) ([]byte, error) {
	return nil, errNeedsAPI
}

func (l *localBackend) Result(context.Context, string) ([]byte, error) {
	return nil, errNeedsAPI
}
