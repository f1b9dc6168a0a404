// Package fallback produces substitute candidates by direct catalog keyword
// search, used only when the generative stage yields zero suggestions.
package fallback

import (
	"context"
	"strings"
	"unicode"

	"github.com/jonathan/movie-scout/internal/catalog"
	"github.com/jonathan/movie-scout/internal/types"
)

const (
	// maxKeywords caps how many preference words become top-level searches.
	maxKeywords = 3
	// minKeywordLength filters out short filler words.
	minKeywordLength = 4
	// resultsPerKeyword caps how many search hits each keyword contributes.
	resultsPerKeyword = 3
	// maxCandidates caps the combined fallback output.
	maxCandidates = 10
)

// Generator builds fallback candidates from the raw preference text.
type Generator struct {
	catalog catalog.Client
}

// New creates a Generator backed by the given catalog client.
func New(c catalog.Client) *Generator {
	return &Generator{catalog: c}
}

// Generate extracts keywords from the preference text, runs one catalog
// search per keyword and assembles candidate stand-ins from the results.
//
// Each candidate carries the catalog id of the record it came from, so the
// resolver skips its search step. Results are
// deduplicated by catalog id across keywords. Per-keyword search failures are
// tolerated; a keyword that fails simply contributes nothing.
func (g *Generator) Generate(ctx context.Context, preferenceText string) []types.Candidate {
	keywords := ExtractKeywords(preferenceText)

	seen := make(map[string]bool)
	var candidates []types.Candidate
	for _, keyword := range keywords {
		records, err := g.catalog.Search(ctx, keyword, 0)
		if err != nil {
			continue
		}

		taken := 0
		for _, record := range records {
			if taken >= resultsPerKeyword || len(candidates) >= maxCandidates {
				break
			}
			if seen[record.CatalogID] {
				continue
			}
			seen[record.CatalogID] = true
			taken++

			candidates = append(candidates, types.Candidate{
				Title:       record.Title,
				Description: record.Overview,
				CatalogID:   record.CatalogID,
			})
		}
		if len(candidates) >= maxCandidates {
			break
		}
	}
	return candidates
}

// ExtractKeywords picks the first distinct words longer than three characters
// from the preference text, lowercased, up to the keyword cap.
func ExtractKeywords(preferenceText string) []string {
	words := strings.FieldsFunc(preferenceText, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range words {
		if len(keywords) >= maxKeywords {
			break
		}
		word = strings.ToLower(word)
		if len(word) < minKeywordLength || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
