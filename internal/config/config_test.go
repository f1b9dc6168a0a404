package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"preferences": "dark thrillers",
		"max_results": 5,
		"region": "GB",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "dark thrillers", cfg.Preferences)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, "GB", cfg.Region)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveSources(t *testing.T) {
	cfg := &Config{
		Preferences:    "inline text",
		PreferencesURL: "https://example.com/tastes",
	}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeMaxResults(t *testing.T) {
	cfg := &Config{MaxResults: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingPreferencesFile(t *testing.T) {
	cfg := &Config{PreferencesFile: filepath.Join(t.TempDir(), "missing.txt")}

	assert.Error(t, cfg.Validate())
}

func TestValidate_OK(t *testing.T) {
	cfg := &Config{Preferences: "anything", MaxResults: 10}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	streaming := false
	flags := Config{Preferences: "from flags"}
	defaults := Config{
		Preferences:      "from file",
		TMDBToken:        "file-token",
		MaxResults:       7,
		IncludeStreaming: &streaming,
	}

	merged := flags.MergeWithDefaults(defaults)

	// Flag values win; unset fields fall back to the file
	assert.Equal(t, "from flags", merged.Preferences)
	assert.Equal(t, "file-token", merged.TMDBToken)
	assert.Equal(t, 7, merged.MaxResults)
	require.NotNil(t, merged.IncludeStreaming)
	assert.False(t, *merged.IncludeStreaming)
}
