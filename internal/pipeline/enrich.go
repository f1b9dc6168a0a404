// Package pipeline provides the high-level orchestration for the movie
// recommendation process: fan-out of candidate resolution, preference scoring,
// merge, deduplication and ordering guarantees.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/movie-scout/internal/scoring"
	"github.com/jonathan/movie-scout/internal/types"
)

const (
	// defaultBatchSize bounds how many resolver calls run concurrently.
	defaultBatchSize = 3
	// defaultBatchPause is the politeness delay between batches, respecting
	// the catalog's rate limits.
	defaultBatchPause = 100 * time.Millisecond
)

// Resolver is the per-candidate resolution surface the enricher fans out
// over. It never fails: every candidate yields a best-effort result.
type Resolver interface {
	Resolve(ctx context.Context, cand types.Candidate) (types.EnrichedRecommendation, *types.CatalogDetails)
}

// Enricher runs resolution and scoring over a candidate set.
type Enricher struct {
	resolver   Resolver
	batchSize  int
	batchPause time.Duration
}

// NewEnricher creates an Enricher with the default batch size and pacing.
func NewEnricher(resolver Resolver) *Enricher {
	return &Enricher{
		resolver:   resolver,
		batchSize:  defaultBatchSize,
		batchPause: defaultBatchPause,
	}
}

// Enrich resolves and scores every candidate, preserving input order.
//
// Candidates are processed in fixed-size batches run in parallel; batches
// execute sequentially with a short pause in between. Each concurrent task
// owns its own candidate and writes only its own result slot, so no locking
// is needed. One candidate's failure never aborts its siblings.
//
// The output has the same length and order as the input, minus only
// duplicates: when two candidates resolve to the same matched catalog id, the
// first occurrence survives. Unmatched entries are never deduplicated.
func (e *Enricher) Enrich(ctx context.Context, candidates []types.Candidate, preferenceText string) []types.EnrichedRecommendation {
	results := make([]types.EnrichedRecommendation, len(candidates))

	for start := 0; start < len(candidates); start += e.batchSize {
		end := min(start+e.batchSize, len(candidates))

		g := new(errgroup.Group)
		for i := start; i < end; i++ {
			g.Go(func() error {
				rec, details := e.resolver.Resolve(ctx, candidates[i])
				applyScores(&rec, preferenceText, details)
				results[i] = rec
				return nil
			})
		}
		// Join barrier: the batch completes as a unit. Resolve never returns
		// an error, so Wait only synchronizes.
		_ = g.Wait()

		if end < len(candidates) {
			select {
			case <-ctx.Done():
				// Cancellation stops pacing between batches; in-flight work
				// already finished above.
				return dedupe(results[:end])
			case <-time.After(e.batchPause):
			}
		}
	}

	return dedupe(results)
}

// applyScores attaches the preference-match signals to a resolved item.
// GenreMatchScore is always defined, 0 when details are absent.
func applyScores(rec *types.EnrichedRecommendation, preferenceText string, details *types.CatalogDetails) {
	scores := scoring.Score(preferenceText, details)
	rec.GenreMatchScore = scores.GenreMatchScore
	rec.OnPreferredService = scores.OnPreferredService
}

// dedupe removes later occurrences of the same matched catalog id, keeping
// first-seen order among survivors.
func dedupe(recs []types.EnrichedRecommendation) []types.EnrichedRecommendation {
	seen := make(map[string]bool, len(recs))
	out := make([]types.EnrichedRecommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.Matched && rec.CatalogID != "" {
			if seen[rec.CatalogID] {
				continue
			}
			seen[rec.CatalogID] = true
		}
		out = append(out, rec)
	}
	return out
}
