package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/movie-scout/internal/llm"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{"candidates": []}`, nil
}

func (m *MockLLMClient) Close() error { return nil }

const validResponse = `{
	"candidates": [
		{"title": "The Matrix", "year": 1999, "description": "Cyberpunk classic."},
		{"title": "Blade Runner", "year": 1982, "description": "Neo-noir replicants."},
		{"title": "Arrival"}
	]
}`

func TestSuggest_ParsesCandidates(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			assert.Equal(t, llm.TierStandard, tier)
			assert.Contains(t, prompt, "smart sci-fi")
			assert.Contains(t, prompt, "exactly 5 movies")
			return validResponse, nil
		},
	}

	candidates, err := NewGenerativeProvider(client).Suggest(context.Background(), "smart sci-fi")

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "The Matrix", candidates[0].Title)
	assert.Equal(t, 1999, candidates[0].Year)
	assert.Equal(t, "Cyberpunk classic.", candidates[0].Description)
	// The year is optional
	assert.Zero(t, candidates[2].Year)
}

func TestSuggest_EmptyPreferenceText(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			t.Fatal("no external call may happen for empty input")
			return "", nil
		},
	}

	_, err := NewGenerativeProvider(client).Suggest(context.Background(), "  \n ")

	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
}

func TestSuggest_APIFailure(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	_, err := NewGenerativeProvider(client).Suggest(context.Background(), "anything")

	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
}

func TestSuggest_ZeroCandidatesIsValid(t *testing.T) {
	candidates, err := NewGenerativeProvider(&MockLLMClient{}).Suggest(context.Background(), "anything")

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseCandidates_MarkdownFencedJSON(t *testing.T) {
	candidates, err := ParseCandidates("```json\n" + validResponse + "\n```")

	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}

func TestParseCandidates_NotJSON(t *testing.T) {
	_, err := ParseCandidates("Here are some movies you might like: The Matrix, Blade Runner")

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestParseCandidates_MissingTitle(t *testing.T) {
	_, err := ParseCandidates(`{"candidates": [{"year": 1999, "description": "no title"}]}`)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestParseCandidates_WrongTopLevelShape(t *testing.T) {
	_, err := ParseCandidates(`[{"title": "The Matrix"}]`)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestParseCandidates_UnknownFieldsRejected(t *testing.T) {
	_, err := ParseCandidates(`{"candidates": [{"title": "The Matrix", "imdb_rank": 15}]}`)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestParseCandidates_TrimsWhitespace(t *testing.T) {
	candidates, err := ParseCandidates(`{"candidates": [{"title": "  The Matrix  ", "description": " padded "}]}`)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "The Matrix", candidates[0].Title)
	assert.Equal(t, "padded", candidates[0].Description)
}
