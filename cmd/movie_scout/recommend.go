package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/movie-scout/internal/config"
	"github.com/jonathan/movie-scout/internal/ingestion"
	"github.com/jonathan/movie-scout/internal/observability"
)

var (
	recommendPreferences     string
	recommendPreferencesFile string
	recommendPreferencesURL  string
	recommendMaxResults      int
	recommendRegion          string
	recommendNoStreaming     bool
	recommendOutput          string
	recommendConfigPath      string
	recommendAPIKey          string
	recommendTMDBToken       string
	recommendVerbose         bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate enriched movie recommendations from preference text",
	Long: `Generate movie recommendations for a free-text preference description.

Candidates come from the generative model (or a catalog keyword search when it
suggests nothing), are resolved against the movie catalog, scored against the
stated preferences and emitted as a JSON array.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendPreferences, "preferences", "", "Preference text")
	recommendCmd.Flags().StringVar(&recommendPreferencesFile, "preferences-file", "", "Path to a preference text file")
	recommendCmd.Flags().StringVar(&recommendPreferencesURL, "preferences-url", "", "URL of a page to extract preference text from")
	recommendCmd.Flags().IntVar(&recommendMaxResults, "max-results", 0, "Cap on returned recommendations (0 = no cap)")
	recommendCmd.Flags().StringVar(&recommendRegion, "region", "", "Watch-provider region code (default US)")
	recommendCmd.Flags().BoolVar(&recommendNoStreaming, "no-streaming", false, "Skip streaming availability lookups")
	recommendCmd.Flags().StringVar(&recommendOutput, "output", "", "Write the JSON result to a file instead of stdout")
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to a JSON config file")
	recommendCmd.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	recommendCmd.Flags().StringVar(&recommendTMDBToken, "tmdb-token", "", "TMDB read access token (defaults to TMDB_API_TOKEN)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed progress information")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Preferences:     recommendPreferences,
		PreferencesFile: recommendPreferencesFile,
		PreferencesURL:  recommendPreferencesURL,
		MaxResults:      recommendMaxResults,
		Region:          recommendRegion,
		Output:          recommendOutput,
		APIKey:          recommendAPIKey,
		TMDBToken:       recommendTMDBToken,
		Verbose:         recommendVerbose,
	}

	if recommendConfigPath != "" {
		fileCfg, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	preferenceText, err := ingestion.Load(ctx, ingestion.Source{
		Text: cfg.Preferences,
		File: cfg.PreferencesFile,
		URL:  cfg.PreferencesURL,
	})
	if err != nil {
		return err
	}

	includeStreaming := !recommendNoStreaming
	if cfg.IncludeStreaming != nil {
		includeStreaming = *cfg.IncludeStreaming
	}

	runner, closeRunner, err := buildRunner(ctx, cfg.APIKey, cfg.TMDBToken, cfg.Region, includeStreaming)
	if err != nil {
		return err
	}
	defer closeRunner()

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		runner.OnCandidates = printer.PrintCandidates
	}

	recommendations, err := runner.Run(ctx, preferenceText, cfg.MaxResults)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintRecommendations(recommendations)
	}

	payload, err := json.MarshalIndent(recommendations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	payload = append(payload, '\n')

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(payload)
	return err
}
