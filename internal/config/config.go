// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Preference sources (mutually exclusive)
	Preferences     string `json:"preferences,omitempty"`      // Inline preference text
	PreferencesFile string `json:"preferences_file,omitempty"` // Path to a preference text file
	PreferencesURL  string `json:"preferences_url,omitempty"`  // URL to fetch preference text from

	// Credentials
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	TMDBToken string `json:"tmdb_token,omitempty"` // TMDB read access token

	// Behavior
	MaxResults       int    `json:"max_results,omitempty"`       // Cap on returned recommendations
	Region           string `json:"region,omitempty"`            // Watch-provider region (e.g. "US")
	IncludeStreaming *bool  `json:"include_streaming,omitempty"` // Fetch streaming availability
	Output           string `json:"output,omitempty"`            // Path to write the JSON result to
	Verbose          bool   `json:"verbose,omitempty"`           // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	sources := 0
	if c.Preferences != "" {
		sources++
	}
	if c.PreferencesFile != "" {
		sources++
	}
	if c.PreferencesURL != "" {
		sources++
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'preferences', 'preferences_file' and 'preferences_url' are mutually exclusive")
	}

	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}

	if c.PreferencesFile != "" {
		if _, err := os.Stat(c.PreferencesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: preferences file not found: %s", c.PreferencesFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Preferences == "" {
		result.Preferences = defaults.Preferences
	}
	if result.PreferencesFile == "" {
		result.PreferencesFile = defaults.PreferencesFile
	}
	if result.PreferencesURL == "" {
		result.PreferencesURL = defaults.PreferencesURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TMDBToken == "" {
		result.TMDBToken = defaults.TMDBToken
	}
	if result.Region == "" {
		result.Region = defaults.Region
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.IncludeStreaming == nil {
		result.IncludeStreaming = defaults.IncludeStreaming
	}
	// Bool flags cannot distinguish unset from false; CLI flags always win for Verbose.

	return result
}
