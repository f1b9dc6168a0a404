package pipeline

import (
	"context"
	"strings"

	"github.com/jonathan/movie-scout/internal/suggest"
	"github.com/jonathan/movie-scout/internal/types"
)

// FallbackGenerator produces substitute candidates when the generative stage
// returns nothing.
type FallbackGenerator interface {
	Generate(ctx context.Context, preferenceText string) []types.Candidate
}

// CandidateCallback is invoked once per run with the candidate set entering
// the enrichment stage, before any catalog resolution happens.
type CandidateCallback func(candidates []types.Candidate, fromFallback bool)

// Runner wires the suggestion provider, the fallback generator and the
// enricher into the full recommendation flow.
type Runner struct {
	provider suggest.Provider
	fallback FallbackGenerator
	enricher *Enricher

	// OnCandidates, when set, observes the candidate set for progress
	// reporting. It must not mutate the candidates.
	OnCandidates CandidateCallback
}

// NewRunner creates a Runner from its collaborators.
func NewRunner(provider suggest.Provider, fallback FallbackGenerator, enricher *Enricher) *Runner {
	return &Runner{
		provider: provider,
		fallback: fallback,
		enricher: enricher,
	}
}

// Run executes the recommendation flow for one preference text: generative
// candidates (or fallback candidates if the generative stage yields none) are
// enriched, scored and deduplicated. maxResults caps the final list when
// positive.
//
// Per-candidate failures degrade inside the enricher and never surface here.
// Errors from this function are pipeline-level only: empty input, an
// unreachable generative provider, or a malformed top-level response.
func (r *Runner) Run(ctx context.Context, preferenceText string, maxResults int) ([]types.EnrichedRecommendation, error) {
	if strings.TrimSpace(preferenceText) == "" {
		return nil, &suggest.InvalidInputError{Message: "preference text is empty"}
	}

	candidates, err := r.provider.Suggest(ctx, preferenceText)
	if err != nil {
		return nil, err
	}

	fromFallback := false
	if len(candidates) == 0 {
		candidates = r.fallback.Generate(ctx, preferenceText)
		fromFallback = true
	}

	if r.OnCandidates != nil {
		r.OnCandidates(candidates, fromFallback)
	}

	recommendations := r.enricher.Enrich(ctx, candidates, preferenceText)

	if maxResults > 0 && len(recommendations) > maxResults {
		recommendations = recommendations[:maxResults]
	}
	return recommendations, nil
}
