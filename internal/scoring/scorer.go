// Package scoring computes preference-match signals for resolved movies.
// Matching is intentionally lexical (case-insensitive substring containment
// against fixed vocabularies), deterministic and side-effect-free.
package scoring

import (
	"strings"

	"github.com/jonathan/movie-scout/internal/types"
)

// Result holds the preference-match signals for one movie.
type Result struct {
	// GenreMatchScore is the fraction of genres mentioned in the preference
	// text that the movie carries, always in [0,1]. It is 0 when the text
	// mentions no known genre or no details are available.
	GenreMatchScore float64
	// OnPreferredService is true when the text mentions at least one known
	// streaming brand and the movie streams on one of them.
	OnPreferredService bool
	// MentionedGenres are the canonical names of genres found in the text.
	MentionedGenres []string
	// MentionedServices are the canonical names of streaming brands found in the text.
	MentionedServices []string
}

// Score evaluates a movie's details against free-text preferences.
// A nil details (unmatched candidate) yields a zero score and no service flag,
// but the mentioned vocabularies are still extracted.
func Score(preferenceText string, details *types.CatalogDetails) Result {
	result := Result{
		MentionedGenres:   MentionedGenres(preferenceText),
		MentionedServices: MentionedServices(preferenceText),
	}
	if details == nil {
		return result
	}

	result.GenreMatchScore = genreMatchScore(result.MentionedGenres, details.Genres)
	result.OnPreferredService = onPreferredService(result.MentionedServices, details.StreamingServices)
	return result
}

// MentionedGenres returns the canonical names of vocabulary genres whose name
// or alias appears in the preference text.
func MentionedGenres(preferenceText string) []string {
	text := strings.ToLower(preferenceText)
	var mentioned []string
	for _, entry := range genreVocabulary {
		if containsAny(text, entry.Name, entry.Aliases) {
			mentioned = append(mentioned, entry.Name)
		}
	}
	return mentioned
}

// MentionedServices returns the canonical names of streaming brands whose name
// or alias appears in the preference text.
func MentionedServices(preferenceText string) []string {
	text := strings.ToLower(preferenceText)
	var mentioned []string
	for _, entry := range serviceVocabulary {
		if containsAny(text, entry.Name, entry.Aliases) {
			mentioned = append(mentioned, entry.Name)
		}
	}
	return mentioned
}

// genreMatchScore is the fraction of mentioned genres that match one of the
// movie's genres. Matching is substring containment in either direction, so a
// mentioned "Science Fiction" matches a catalog genre "Science Fiction" and a
// terser catalog spelling like "Sci-Fi & Fantasy" still matches "Fantasy".
func genreMatchScore(mentioned, movieGenres []string) float64 {
	if len(mentioned) == 0 || len(movieGenres) == 0 {
		return 0
	}

	matches := 0
	for _, want := range mentioned {
		for _, have := range movieGenres {
			if eitherContains(want, have) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(mentioned))
}

// onPreferredService reports whether any of the movie's streaming services
// matches a mentioned brand, substring containment in either direction.
func onPreferredService(mentioned, movieServices []string) bool {
	if len(mentioned) == 0 {
		return false
	}
	for _, want := range mentioned {
		for _, have := range movieServices {
			if eitherContains(want, have) {
				return true
			}
		}
	}
	return false
}

func containsAny(lowerText, name string, aliases []string) bool {
	if strings.Contains(lowerText, strings.ToLower(name)) {
		return true
	}
	for _, alias := range aliases {
		if strings.Contains(lowerText, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

func eitherContains(a, b string) bool {
	al, bl := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(al, bl) || strings.Contains(bl, al)
}
