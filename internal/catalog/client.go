// Package catalog wraps the external movie catalog service (TMDB v3 API).
// It exposes search and details lookups returning normalized records, with a
// per-call timeout and typed failures. The client keeps no local state beyond
// its configuration; results are never cached across requests.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/movie-scout/internal/types"
)

// DefaultBaseURL is the production TMDB API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// posterBaseURL is the TMDB image CDN prefix for w500 posters.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// DefaultTimeout bounds every single catalog call.
const DefaultTimeout = 10 * time.Second

// maxCastMembers caps how many cast names a details lookup keeps.
const maxCastMembers = 5

// Client is the catalog lookup surface consumed by the resolver and the
// fallback generator.
type Client interface {
	// Search returns catalog records matching a title query, ordered by the
	// catalog's own relevance. An empty slice is a valid, non-error result.
	// A year of 0 means "any year".
	Search(ctx context.Context, query string, year int) ([]types.CatalogRecord, error)
	// Details returns the full metadata for one catalog id. Fails with
	// *NotFoundError for unknown ids and *UpstreamError for network/5xx
	// conditions (including timeouts).
	Details(ctx context.Context, catalogID string) (*types.CatalogDetails, error)
}

// Options configures a TMDB client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// IncludeStreaming controls whether details lookups also fetch streaming
	// availability (watch providers). When false, StreamingServices stays empty.
	IncludeStreaming bool
	// Region selects the watch-provider country table (e.g., "US").
	Region string
}

// DefaultOptions returns sensible defaults for the production API.
func DefaultOptions(token string) *Options {
	return &Options{
		BaseURL:          DefaultBaseURL,
		Token:            token,
		Timeout:          DefaultTimeout,
		IncludeStreaming: true,
		Region:           "US",
	}
}

// TMDBClient implements Client against the TMDB v3 REST API.
type TMDBClient struct {
	opts       *Options
	httpClient *http.Client
	group      singleflight.Group
}

// NewTMDBClient creates a catalog client. The token is the TMDB API read
// access token sent as a bearer credential.
func NewTMDBClient(opts *Options) (*TMDBClient, error) {
	if opts == nil || opts.Token == "" {
		return nil, fmt.Errorf("catalog token is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Region == "" {
		opts.Region = "US"
	}

	return &TMDBClient{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}, nil
}

type searchResponse struct {
	Results []struct {
		ID          int     `json:"id"`
		Title       string  `json:"title"`
		PosterPath  string  `json:"poster_path"`
		ReleaseDate string  `json:"release_date"`
		VoteAverage float64 `json:"vote_average"`
		Overview    string  `json:"overview"`
	} `json:"results"`
}

// Search queries /search/movie. TMDB orders results by its own relevance and
// popularity signals; that ordering is preserved as-is.
func (c *TMDBClient) Search(ctx context.Context, query string, year int) ([]types.CatalogRecord, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	if year > 0 {
		params.Set("primary_release_year", strconv.Itoa(year))
	}

	var parsed searchResponse
	if err := c.get(ctx, "search", "/search/movie?"+params.Encode(), "", &parsed); err != nil {
		return nil, err
	}

	records := make([]types.CatalogRecord, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		rec := types.CatalogRecord{
			CatalogID:   strconv.Itoa(r.ID),
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
			Rating:      r.VoteAverage,
			Overview:    r.Overview,
		}
		if r.PosterPath != "" {
			rec.PosterURL = posterBaseURL + r.PosterPath
		}
		records = append(records, rec)
	}
	return records, nil
}

type detailsResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	Runtime     int     `json:"runtime"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
	WatchProviders struct {
		Results map[string]struct {
			Flatrate []struct {
				ProviderName string `json:"provider_name"`
			} `json:"flatrate"`
		} `json:"results"`
	} `json:"watch/providers"`
}

// Details fetches /movie/{id} with credits (and watch providers when
// configured) appended in a single call. Concurrent lookups for the same id
// are collapsed through singleflight.
func (c *TMDBClient) Details(ctx context.Context, catalogID string) (*types.CatalogDetails, error) {
	val, err, _ := c.group.Do(catalogID, func() (interface{}, error) {
		return c.fetchDetails(ctx, catalogID)
	})
	if err != nil {
		return nil, err
	}
	return val.(*types.CatalogDetails), nil
}

func (c *TMDBClient) fetchDetails(ctx context.Context, catalogID string) (*types.CatalogDetails, error) {
	appendTo := "credits"
	if c.opts.IncludeStreaming {
		appendTo += ",watch/providers"
	}
	path := fmt.Sprintf("/movie/%s?append_to_response=%s", url.PathEscape(catalogID), url.QueryEscape(appendTo))

	var parsed detailsResponse
	if err := c.get(ctx, "details", path, catalogID, &parsed); err != nil {
		return nil, err
	}

	details := &types.CatalogDetails{
		CatalogRecord: types.CatalogRecord{
			CatalogID:   strconv.Itoa(parsed.ID),
			Title:       parsed.Title,
			ReleaseDate: parsed.ReleaseDate,
			Rating:      parsed.VoteAverage,
			Overview:    parsed.Overview,
		},
		RuntimeMinutes: parsed.Runtime,
	}
	if parsed.PosterPath != "" {
		details.PosterURL = posterBaseURL + parsed.PosterPath
	}

	for _, g := range parsed.Genres {
		details.Genres = append(details.Genres, g.Name)
	}

	for _, member := range parsed.Credits.Cast {
		if len(details.Cast) >= maxCastMembers {
			break
		}
		details.Cast = append(details.Cast, member.Name)
	}
	for _, member := range parsed.Credits.Crew {
		if member.Job == "Director" {
			details.Director = member.Name
			break
		}
	}

	if c.opts.IncludeStreaming {
		if region, ok := parsed.WatchProviders.Results[c.opts.Region]; ok {
			for _, p := range region.Flatrate {
				details.StreamingServices = append(details.StreamingServices, p.ProviderName)
			}
		}
	}

	return details, nil
}

// get performs one authenticated GET against the catalog and decodes the JSON
// body into out. Transport failures (including the per-call timeout) and 5xx
// statuses surface as *UpstreamError; a 404 surfaces as *NotFoundError
// carrying notFoundID.
func (c *TMDBClient) get(ctx context.Context, op, path, notFoundID string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+path, nil)
	if err != nil {
		return &UpstreamError{Op: op, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{CatalogID: notFoundID}
	case resp.StatusCode != http.StatusOK:
		return &UpstreamError{Op: op, Status: resp.StatusCode, Message: "unexpected status"}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, Message: "failed to decode response", Cause: err}
	}
	return nil
}
