package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/movie-scout/internal/suggest"
	"github.com/jonathan/movie-scout/internal/types"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	RunFunc func(ctx context.Context, preferenceText string, maxResults int) ([]types.EnrichedRecommendation, error)
}

func (m *MockRunner) Run(ctx context.Context, preferenceText string, maxResults int) ([]types.EnrichedRecommendation, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, preferenceText, maxResults)
	}
	return nil, nil
}

func newTestServer(t *testing.T, runner Runner) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0, Runner: runner})
	require.NoError(t, err)
	return srv
}

func postRecommend(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleRecommend_Success(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(_ context.Context, preferenceText string, maxResults int) ([]types.EnrichedRecommendation, error) {
			assert.Equal(t, "sci-fi on Netflix", preferenceText)
			assert.Equal(t, 5, maxResults)
			return []types.EnrichedRecommendation{
				{ID: "tmdb:603", Title: "The Matrix", Matched: true, GenreMatchScore: 1.0},
			}, nil
		},
	}

	rec := postRecommend(t, newTestServer(t, runner), `{"preferences": "sci-fi on Netflix", "max_results": 5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var results []types.EnrichedRecommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "tmdb:603", results[0].ID)
	assert.True(t, results[0].Matched)
}

func TestHandleRecommend_InvalidJSON(t *testing.T) {
	rec := postRecommend(t, newTestServer(t, &MockRunner{}), `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommend_MissingPreferences(t *testing.T) {
	rec := postRecommend(t, newTestServer(t, &MockRunner{}), `{"max_results": 5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Preferences")
}

func TestHandleRecommend_MaxResultsOutOfRange(t *testing.T) {
	rec := postRecommend(t, newTestServer(t, &MockRunner{}), `{"preferences": "anything good", "max_results": 100}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommend_PipelineErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", &suggest.InvalidInputError{Message: "empty"}, http.StatusBadRequest},
		{"malformed response", &suggest.MalformedResponseError{Message: "bad JSON"}, http.StatusBadGateway},
		{"api call failed", &suggest.APICallError{Message: "unreachable"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &MockRunner{
				RunFunc: func(_ context.Context, _ string, _ int) ([]types.EnrichedRecommendation, error) {
					return nil, tt.err
				},
			}

			rec := postRecommend(t, newTestServer(t, runner), `{"preferences": "anything good"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &MockRunner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestNew_RequiresRunner(t *testing.T) {
	_, err := New(Config{Port: 8080})
	assert.Error(t, err)
}
