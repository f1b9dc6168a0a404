package types

// CatalogRecord represents one search result from the external movie catalog.
// It is an immutable snapshot of a single match; an empty result list is a
// valid, non-error outcome.
type CatalogRecord struct {
	CatalogID   string  `json:"catalog_id"`
	Title       string  `json:"title"`
	PosterURL   string  `json:"poster_url,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Overview    string  `json:"overview,omitempty"`
}

// CatalogDetails is the full metadata for one catalog entry. It extends a
// CatalogRecord with the fields only available from a details lookup.
// Details live for the duration of one enrichment and are never cached.
type CatalogDetails struct {
	CatalogRecord

	RuntimeMinutes    int      `json:"runtime_minutes"`
	Genres            []string `json:"genres"`
	Director          string   `json:"director,omitempty"`
	Cast              []string `json:"cast"`
	StreamingServices []string `json:"streaming_services"`
}
