package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/movie-scout/internal/catalog"
	"github.com/jonathan/movie-scout/internal/fallback"
	"github.com/jonathan/movie-scout/internal/llm"
	"github.com/jonathan/movie-scout/internal/pipeline"
	"github.com/jonathan/movie-scout/internal/resolve"
	"github.com/jonathan/movie-scout/internal/suggest"
)

// buildRunner wires the real collaborators into a pipeline runner. The
// returned closer releases the LLM client.
func buildRunner(ctx context.Context, apiKey, tmdbToken, region string, includeStreaming bool) (*pipeline.Runner, func(), error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("Gemini API key is required (flag, config, or GEMINI_API_KEY)")
	}
	if tmdbToken == "" {
		tmdbToken = os.Getenv("TMDB_API_TOKEN")
	}
	if tmdbToken == "" {
		return nil, nil, fmt.Errorf("TMDB token is required (flag, config, or TMDB_API_TOKEN)")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	opts := catalog.DefaultOptions(tmdbToken)
	opts.IncludeStreaming = includeStreaming
	if region != "" {
		opts.Region = region
	}
	catalogClient, err := catalog.NewTMDBClient(opts)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	runner := pipeline.NewRunner(
		suggest.NewGenerativeProvider(client),
		fallback.New(catalogClient),
		pipeline.NewEnricher(resolve.New(catalogClient)),
	)
	closer := func() { _ = client.Close() }
	return runner, closer, nil
}
