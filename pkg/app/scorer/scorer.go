package scorer

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustIntent/pkg/app/indexer"
	"github.com/NeuralTrust/TrustIntent/pkg/app/pairs"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/dataset"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/NeuralTrust/TrustIntent/pkg/domain/similarity"
	"github.com/NeuralTrust/TrustIntent/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	modeLabeled        = "labeled"
	modeIndexMatched   = "index_matched"
	modeUnlabeled      = "unlabeled"
	modeUnlabeledSweep = "unlabeled_sweep"
)

//go:generate mockery --name=Scorer --dir=. --output=./mocks --filename=scorer_mock.go --case=underscore --with-expecter
type Scorer interface {
	// ScoreLabeled compares every pair of labeled utterances carrying
	// different labels and keeps those scoring at least threshold.
	ScoreLabeled(ctx context.Context, ds *dataset.Dataset, threshold float64) ([]similarity.ScoredPair, error)
	// ScoreLabeledIndexMatched produces the same records as ScoreLabeled but
	// recovers each vector's utterance by searching the vector table.
	//
	// Deprecated: quadratic lookups per pair. Use ScoreLabeled.
	ScoreLabeledIndexMatched(ctx context.Context, ds *dataset.Dataset, threshold float64) ([]similarity.ScoredPair, error)
	ScoreUnlabeled(ctx context.Context, ds *dataset.Dataset, threshold float64) ([]similarity.UnlabeledMatch, error)
	// ScoreUnlabeledSweep walks ordered pairs, so each match is reported in
	// both directions.
	ScoreUnlabeledSweep(ctx context.Context, ds *dataset.Dataset, threshold float64) ([]similarity.UnlabeledMatch, error)
}

type scorer struct {
	embedder embedding.Client
	logger   *logrus.Logger
}

func NewScorer(embedder embedding.Client, logger *logrus.Logger) Scorer {
	return &scorer{
		embedder: embedder,
		logger:   logger,
	}
}

type entry struct {
	id     string
	vector embedding.Vector
}

func (s *scorer) ScoreLabeled(
	ctx context.Context,
	ds *dataset.Dataset,
	threshold float64,
) ([]similarity.ScoredPair, error) {
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	items := indexer.Flatten(indexer.LabeledGroups(ds))
	entries, err := s.embedItems(ctx, items)
	if err != nil {
		return nil, err
	}

	seq := pairs.Combinations(entries)
	s.logEstimate(modeLabeled, len(entries), seq.Len())

	output := []similarity.ScoredPair{}
	var evaluated int
	for pair := range seq.All() {
		labelA := ds.Label(pair.A.id)
		labelB := ds.Label(pair.B.id)
		if labelA == labelB {
			continue
		}
		evaluated++
		score, err := similarity.Dot(pair.A.vector, pair.B.vector)
		if err != nil {
			return nil, err
		}
		if score < threshold {
			continue
		}
		output = append(output, similarity.ScoredPair{
			IDA:    pair.A.id,
			IDB:    pair.B.id,
			LabelA: labelA,
			LabelB: labelB,
			Score:  score,
		})
	}
	s.record(modeLabeled, evaluated, len(output))
	return output, nil
}

func (s *scorer) ScoreLabeledIndexMatched(
	ctx context.Context,
	ds *dataset.Dataset,
	threshold float64,
) ([]similarity.ScoredPair, error) {
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	items := indexer.Flatten(indexer.LabeledGroups(ds))
	vectors, err := s.embedder.Embed(ctx, indexer.Texts(items))
	if err != nil {
		return nil, err
	}

	seq := pairs.Combinations(vectors)
	s.logEstimate(modeIndexMatched, len(vectors), seq.Len())

	output := []similarity.ScoredPair{}
	var evaluated int
	for pair := range seq.All() {
		evaluated++
		score, err := similarity.Dot(pair.A, pair.B)
		if err != nil {
			return nil, err
		}
		itemA := items[indexOf(vectors, pair.A)]
		itemB := items[indexOf(vectors, pair.B)]
		labelA := ds.Label(itemA.ID)
		labelB := ds.Label(itemB.ID)
		if score >= threshold && labelA != labelB {
			output = append(output, similarity.ScoredPair{
				IDA:    itemA.ID,
				IDB:    itemB.ID,
				LabelA: labelA,
				LabelB: labelB,
				Score:  score,
			})
		}
	}
	s.record(modeIndexMatched, evaluated, len(output))
	return output, nil
}

// indexOf returns the position of the first vector equal to v. v always comes
// from vectors, so the lookup cannot miss.
func indexOf(vectors []embedding.Vector, v embedding.Vector) int {
	for i := range vectors {
		if vectors[i].Equal(v) {
			return i
		}
	}
	return -1
}

func (s *scorer) ScoreUnlabeled(
	ctx context.Context,
	ds *dataset.Dataset,
	threshold float64,
) ([]similarity.UnlabeledMatch, error) {
	return s.scoreUnlabeled(ctx, ds, threshold, pairs.ModeCombinations, modeUnlabeled)
}

func (s *scorer) ScoreUnlabeledSweep(
	ctx context.Context,
	ds *dataset.Dataset,
	threshold float64,
) ([]similarity.UnlabeledMatch, error) {
	return s.scoreUnlabeled(ctx, ds, threshold, pairs.ModePermutations, modeUnlabeledSweep)
}

func (s *scorer) scoreUnlabeled(
	ctx context.Context,
	ds *dataset.Dataset,
	threshold float64,
	pairing pairs.Mode,
	mode string,
) ([]similarity.UnlabeledMatch, error) {
	if err := similarity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	entries, err := s.embedItems(ctx, indexer.UnlabeledItems(ds))
	if err != nil {
		return nil, err
	}

	seq := pairs.New(entries, pairing)
	s.logEstimate(mode, len(entries), seq.Len())

	output := []similarity.UnlabeledMatch{}
	var evaluated int
	for pair := range seq.All() {
		evaluated++
		score, err := similarity.Dot(pair.A.vector, pair.B.vector)
		if err != nil {
			return nil, err
		}
		if score < threshold {
			continue
		}
		output = append(output, similarity.UnlabeledMatch{
			TextA: ds.Text(pair.A.id),
			TextB: ds.Text(pair.B.id),
			Score: score,
		})
	}
	s.record(mode, evaluated, len(output))
	return output, nil
}

// embedItems embeds all item texts in one call and zips the vectors back onto
// the item IDs by position.
func (s *scorer) embedItems(ctx context.Context, items []indexer.Item) ([]entry, error) {
	vectors, err := s.embedder.Embed(ctx, indexer.Texts(items))
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(items) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts",
			embedding.ErrMalformedResponse, len(vectors), len(items))
	}
	entries := make([]entry, len(items))
	for i, item := range items {
		entries[i] = entry{id: item.ID, vector: vectors[i]}
	}
	return entries, nil
}

func (s *scorer) logEstimate(mode string, items, candidates int) {
	s.logger.WithFields(logrus.Fields{
		"mode":       mode,
		"items":      items,
		"candidates": candidates,
	}).Infof("~%d possible combinations", pairs.CountCombinations(items, 2))
}

func (s *scorer) record(mode string, evaluated, emitted int) {
	s.logger.WithFields(logrus.Fields{
		"mode":      mode,
		"evaluated": evaluated,
		"emitted":   emitted,
	}).Debug("scoring finished")
	if !prometheus.Config.EnablePairs {
		return
	}
	prometheus.PairsEvaluatedTotal.WithLabelValues(mode).Add(float64(evaluated))
	prometheus.PairsEmittedTotal.WithLabelValues(mode).Add(float64(emitted))
}
