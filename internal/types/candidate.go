// Package types provides type definitions for structured data used throughout the movie-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate represents an unresolved movie suggestion before catalog verification.
// Candidates come from the generative suggestion provider or, when that returns
// nothing, from the fallback keyword search.
type Candidate struct {
	Title       string `json:"title"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`

	// CatalogID is set only for fallback candidates, which originate directly
	// from a catalog search result and therefore skip the resolver's search step.
	CatalogID string `json:"catalog_id,omitempty"`
}

// CandidateList is the top-level shape the generative provider is asked to return.
type CandidateList struct {
	Candidates []Candidate `json:"candidates"`
}
