// Package resolve links one candidate suggestion to an external catalog
// identity and fetches its enriched metadata.
//
// Resolution is strictly best-effort: no failure path escapes as an error.
// Every candidate yields an EnrichedRecommendation, degraded as needed, so the
// pipeline's output-cardinality guarantee holds.
package resolve

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/movie-scout/internal/catalog"
	"github.com/jonathan/movie-scout/internal/types"
)

// Resolver resolves candidates against a catalog client.
type Resolver struct {
	catalog catalog.Client
}

// New creates a Resolver backed by the given catalog client.
func New(c catalog.Client) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve turns one candidate into an EnrichedRecommendation plus the catalog
// details used to build it (nil when no details could be fetched, so the
// scorer can tell full enrichment from partial or none).
//
// The match heuristic is first-result-wins: the catalog's own relevance
// ordering decides ties and no re-ranking by year proximity is applied.
func (r *Resolver) Resolve(ctx context.Context, cand types.Candidate) (types.EnrichedRecommendation, *types.CatalogDetails) {
	chosenID := cand.CatalogID
	var chosen *types.CatalogRecord

	if chosenID == "" {
		records, err := r.catalog.Search(ctx, cand.Title, cand.Year)
		if err != nil || len(records) == 0 {
			// No match, or the search itself failed: either way the candidate
			// survives with its own fields.
			return unmatched(cand), nil
		}
		chosen = &records[0]
		chosenID = chosen.CatalogID
	}

	details, err := r.catalog.Details(ctx, chosenID)
	if err != nil {
		// Partial enrichment: the match was found, so keep its identity and
		// whatever the search result already carried rather than discarding it.
		return partial(cand, chosenID, chosen), nil
	}

	return merged(cand, details), details
}

// unmatched builds the result for a candidate the catalog knows nothing
// about. The identity is a locally generated opaque token.
func unmatched(cand types.Candidate) types.EnrichedRecommendation {
	return types.EnrichedRecommendation{
		ID:       "local:" + uuid.NewString(),
		Title:    cand.Title,
		Year:     cand.Year,
		Overview: cand.Description,
		Matched:  false,
	}
}

// partial builds the result for a candidate whose match was found but whose
// details lookup failed. Record-level fields from the search result are kept.
func partial(cand types.Candidate, catalogID string, record *types.CatalogRecord) types.EnrichedRecommendation {
	rec := types.EnrichedRecommendation{
		ID:        "tmdb:" + catalogID,
		CatalogID: catalogID,
		Title:     cand.Title,
		Year:      cand.Year,
		Overview:  cand.Description,
		Matched:   true,
	}
	if record != nil {
		if record.Title != "" {
			rec.Title = record.Title
		}
		rec.PosterURL = record.PosterURL
		rec.ReleaseDate = record.ReleaseDate
		rec.Rating = record.Rating
		if rec.Overview == "" {
			rec.Overview = record.Overview
		}
		if rec.Year == 0 {
			rec.Year = yearOf(record.ReleaseDate)
		}
	}
	return rec
}

// merged builds the fully enriched result. The candidate's own description is
// preferred as the displayed overview; the catalog overview fills the gap.
func merged(cand types.Candidate, details *types.CatalogDetails) types.EnrichedRecommendation {
	overview := cand.Description
	if overview == "" {
		overview = details.Overview
	}

	year := cand.Year
	if year == 0 {
		year = yearOf(details.ReleaseDate)
	}

	return types.EnrichedRecommendation{
		ID:                "tmdb:" + details.CatalogID,
		CatalogID:         details.CatalogID,
		Title:             details.Title,
		Year:              year,
		Overview:          overview,
		PosterURL:         details.PosterURL,
		ReleaseDate:       details.ReleaseDate,
		Rating:            details.Rating,
		RuntimeMinutes:    details.RuntimeMinutes,
		Genres:            details.Genres,
		Director:          details.Director,
		Cast:              details.Cast,
		StreamingServices: details.StreamingServices,
		Matched:           true,
	}
}

// yearOf extracts the year from a catalog release date ("2006-01-02").
func yearOf(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
