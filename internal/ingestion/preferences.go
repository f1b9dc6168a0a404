// Package ingestion loads and normalizes the user's preference text from its
// supported sources: an inline string, a local file, or a web page.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/movie-scout/internal/fetch"
	"github.com/jonathan/movie-scout/internal/suggest"
)

// maxPreferenceLength caps normalized preference text. Anything longer is
// truncated at a word boundary; preference prompts do not benefit from
// whole-article inputs.
const maxPreferenceLength = 2000

// Source describes where preference text comes from. Exactly one field
// should be set.
type Source struct {
	Text string
	File string
	URL  string
}

// Load reads preference text from the configured source and normalizes it.
// Empty text after normalization is rejected with an InvalidInputError before
// any downstream external call can happen.
func Load(ctx context.Context, src Source) (string, error) {
	var raw string

	switch {
	case src.Text != "":
		raw = src.Text
	case src.File != "":
		data, err := os.ReadFile(src.File)
		if err != nil {
			return "", fmt.Errorf("failed to read preferences file: %w", err)
		}
		raw = string(data)
	case src.URL != "":
		result, err := fetch.URL(ctx, src.URL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch preferences page: %w", err)
		}
		text, err := fetch.ExtractMainText(result.HTML, fetch.DefaultTextSelectors())
		if err != nil {
			return "", fmt.Errorf("failed to extract preferences text: %w", err)
		}
		raw = text
	default:
		return "", &suggest.InvalidInputError{Message: "no preference source provided"}
	}

	normalized := Normalize(raw)
	if normalized == "" {
		return "", &suggest.InvalidInputError{Message: "preference text is empty"}
	}
	return normalized, nil
}

// Normalize collapses whitespace and caps the text length.
func Normalize(text string) string {
	fields := strings.Fields(text)
	normalized := strings.Join(fields, " ")

	if len(normalized) > maxPreferenceLength {
		cut := normalized[:maxPreferenceLength]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		normalized = cut
	}
	return normalized
}
