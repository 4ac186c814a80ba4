package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-pipeline/internal/types"
)

// defaultBatchConcurrency bounds how many candidates are scored at once.
const defaultBatchConcurrency = 8

// ScoreBatch scores many candidates against the same spec concurrently.
// Scoring is pure per candidate, so runs are independent; results are
// returned in input order. The context only bounds scheduling: an
// abandoned batch has no side effects to roll back.
func (e *Engine) ScoreBatch(ctx context.Context, candidates []*types.Candidate, spec *types.ResolvedJobSpec) ([]*types.MatchExplanation, error) {
	results := make([]*types.MatchExplanation, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchConcurrency)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.Score(candidate, spec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
