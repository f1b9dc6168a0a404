package types

// EnrichedRecommendation is the terminal entity returned to the caller: a
// candidate merged with catalog metadata and preference-match scores.
//
// The JSON field names form the contract consumed by the presentation layer
// and must stay stable across pipeline versions.
//
// When Matched is false every enrichment field is zero-valued and the item
// carries the original candidate's title, year and description instead.
type EnrichedRecommendation struct {
	// ID is "tmdb:<catalogId>" for matched items and "local:<uuid>" for
	// unmatched ones, so every item has a usable identity.
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	PosterURL   string  `json:"poster_url,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Rating      float64 `json:"rating,omitempty"`

	RuntimeMinutes    int      `json:"runtime_minutes,omitempty"`
	Genres            []string `json:"genres,omitempty"`
	Director          string   `json:"director,omitempty"`
	Cast              []string `json:"cast,omitempty"`
	StreamingServices []string `json:"streaming_services,omitempty"`

	GenreMatchScore    float64 `json:"genre_match_score"`
	OnPreferredService bool    `json:"on_preferred_service"`
	Matched            bool    `json:"matched"`

	// CatalogID is the raw catalog identity for matched items, used by the
	// pipeline for deduplication. Empty when Matched is false.
	CatalogID string `json:"catalog_id,omitempty"`
}
