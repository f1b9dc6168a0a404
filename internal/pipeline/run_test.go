package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/movie-scout/internal/suggest"
	"github.com/jonathan/movie-scout/internal/types"
)

// MockProvider implements suggest.Provider for testing
type MockProvider struct {
	SuggestFunc func(ctx context.Context, preferenceText string) ([]types.Candidate, error)
}

func (m *MockProvider) Suggest(ctx context.Context, preferenceText string) ([]types.Candidate, error) {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, preferenceText)
	}
	return nil, nil
}

// MockFallback implements FallbackGenerator for testing
type MockFallback struct {
	GenerateFunc func(ctx context.Context, preferenceText string) []types.Candidate
	called       bool
}

func (m *MockFallback) Generate(ctx context.Context, preferenceText string) []types.Candidate {
	m.called = true
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, preferenceText)
	}
	return nil
}

func newTestRunner(provider suggest.Provider, fb *MockFallback) *Runner {
	return NewRunner(provider, fb, newTestEnricher(matchedResolver()))
}

func TestRun_GenerativeCandidates(t *testing.T) {
	provider := &MockProvider{
		SuggestFunc: func(_ context.Context, _ string) ([]types.Candidate, error) {
			return []types.Candidate{
				{Title: "The Matrix", Description: "603"},
				{Title: "Blade Runner", Description: "78"},
			}, nil
		},
	}
	fb := &MockFallback{}

	results, err := newTestRunner(provider, fb).Run(context.Background(), "sci-fi please", 0)

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.False(t, fb.called, "fallback must not run when the generative stage yields candidates")
}

func TestRun_EmptyPreferenceText(t *testing.T) {
	provider := &MockProvider{
		SuggestFunc: func(_ context.Context, _ string) ([]types.Candidate, error) {
			t.Fatal("provider must not be called for empty input")
			return nil, nil
		},
	}

	_, err := newTestRunner(provider, &MockFallback{}).Run(context.Background(), "   ", 0)

	var invalidInput *suggest.InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
}

func TestRun_FallbackOnZeroCandidates(t *testing.T) {
	provider := &MockProvider{} // returns no candidates, no error
	fb := &MockFallback{
		GenerateFunc: func(_ context.Context, _ string) []types.Candidate {
			return []types.Candidate{
				{Title: "Space Movie", Description: "1", CatalogID: "1"},
				{Title: "Western Movie", Description: "2", CatalogID: "2"},
			}
		},
	}

	results, err := newTestRunner(provider, fb).Run(context.Background(), "space westerns", 0)

	require.NoError(t, err)
	assert.True(t, fb.called)
	require.Len(t, results, 2)
	for _, rec := range results {
		assert.True(t, rec.Matched, "fallback candidates originate from catalog hits")
	}
}

func TestRun_ProviderErrorEscalates(t *testing.T) {
	provider := &MockProvider{
		SuggestFunc: func(_ context.Context, _ string) ([]types.Candidate, error) {
			return nil, &suggest.MalformedResponseError{Message: "not JSON"}
		},
	}
	fb := &MockFallback{}

	_, err := newTestRunner(provider, fb).Run(context.Background(), "anything good", 0)

	var malformed *suggest.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.False(t, fb.called, "a provider failure is not the same as zero candidates")
}

func TestRun_MaxResultsCap(t *testing.T) {
	provider := &MockProvider{
		SuggestFunc: func(_ context.Context, _ string) ([]types.Candidate, error) {
			return candidateSet(5), nil
		},
	}

	results, err := newTestRunner(provider, &MockFallback{}).Run(context.Background(), "anything good", 2)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestRun_OnCandidatesHook(t *testing.T) {
	provider := &MockProvider{
		SuggestFunc: func(_ context.Context, _ string) ([]types.Candidate, error) {
			return candidateSet(3), nil
		},
	}
	runner := newTestRunner(provider, &MockFallback{})

	var observed []types.Candidate
	var observedFallback bool
	runner.OnCandidates = func(candidates []types.Candidate, fromFallback bool) {
		observed = candidates
		observedFallback = fromFallback
	}

	_, err := runner.Run(context.Background(), "anything good", 0)

	require.NoError(t, err)
	assert.Len(t, observed, 3)
	assert.False(t, observedFallback)
}

func TestRun_OnCandidatesHookFromFallback(t *testing.T) {
	fb := &MockFallback{
		GenerateFunc: func(_ context.Context, _ string) []types.Candidate {
			return []types.Candidate{{Title: "Space Movie", Description: "1", CatalogID: "1"}}
		},
	}
	runner := newTestRunner(&MockProvider{}, fb)

	var observedFallback bool
	runner.OnCandidates = func(_ []types.Candidate, fromFallback bool) {
		observedFallback = fromFallback
	}

	_, err := runner.Run(context.Background(), "space westerns", 0)

	require.NoError(t, err)
	assert.True(t, observedFallback)
}

func TestRun_NoCandidatesAnywhere(t *testing.T) {
	results, err := newTestRunner(&MockProvider{}, &MockFallback{}).Run(context.Background(), "zzzz", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, errors.Is(err, context.Canceled))
}
