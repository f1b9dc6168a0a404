// Package suggest consumes the generative suggestion provider: it prompts an
// LLM with the user's preference text and parses the response into candidate
// title/year/description triples.
//
// Parsing is strict. The response must be valid JSON matching the embedded
// candidate-list schema; anything else surfaces as a MalformedResponseError
// rather than being silently defaulted.
package suggest

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/movie-scout/internal/llm"
	"github.com/jonathan/movie-scout/internal/prompts"
	"github.com/jonathan/movie-scout/internal/schemas"
	"github.com/jonathan/movie-scout/internal/types"
)

// DefaultCandidateCount is how many suggestions the provider is asked for.
const DefaultCandidateCount = 5

// Provider produces candidate movie suggestions from preference text.
// It may return zero candidates, which triggers the fallback path upstream.
type Provider interface {
	Suggest(ctx context.Context, preferenceText string) ([]types.Candidate, error)
}

// GenerativeProvider implements Provider on top of an LLM client.
type GenerativeProvider struct {
	client llm.Client
	count  int
}

// NewGenerativeProvider creates a provider asking for the default number of
// candidates per request.
func NewGenerativeProvider(client llm.Client) *GenerativeProvider {
	return &GenerativeProvider{client: client, count: DefaultCandidateCount}
}

// Suggest prompts the model and strictly parses its JSON reply.
func (p *GenerativeProvider) Suggest(ctx context.Context, preferenceText string) ([]types.Candidate, error) {
	if strings.TrimSpace(preferenceText) == "" {
		return nil, &InvalidInputError{Message: "preference text is empty"}
	}

	prompt := buildSuggestionPrompt(preferenceText, p.count)

	responseText, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate suggestions",
			Cause:   err,
		}
	}

	return ParseCandidates(responseText)
}

// buildSuggestionPrompt constructs the suggestion prompt from its template.
func buildSuggestionPrompt(preferenceText string, count int) string {
	template := prompts.MustGet("suggest.json", "suggest-movies")
	return prompts.Format(template, map[string]string{
		"Preferences": preferenceText,
		"Count":       strconv.Itoa(count),
	})
}

// ParseCandidates validates and decodes a candidate-list JSON document.
// Exposed separately so the strict-parse step is testable without a model.
func ParseCandidates(responseText string) ([]types.Candidate, error) {
	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.Validate("candidate_list", responseText); err != nil {
		return nil, &MalformedResponseError{
			Message: "response does not match candidate schema",
			Cause:   err,
		}
	}

	var list types.CandidateList
	if err := json.Unmarshal([]byte(responseText), &list); err != nil {
		return nil, &MalformedResponseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	candidates := make([]types.Candidate, 0, len(list.Candidates))
	for _, cand := range list.Candidates {
		cand.Title = strings.TrimSpace(cand.Title)
		if cand.Title == "" {
			continue
		}
		cand.Description = strings.TrimSpace(cand.Description)
		candidates = append(candidates, cand)
	}
	return candidates, nil
}
