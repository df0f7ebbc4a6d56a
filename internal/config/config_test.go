package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Top)
	assert.Equal(t, 7, cfg.Days)
	assert.Equal(t, 12, cfg.FetchLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20*time.Second, cfg.PageTimeout)
	assert.Equal(t, 30*time.Second, cfg.SeasonTimeout)
	assert.Len(t, cfg.Sources.Listings, 2)
	assert.Equal(t, DefaultScoreboardURL, cfg.Sources.Scoreboard)
	assert.Equal(t, DefaultSeasonBaseURL, cfg.Sources.SeasonBase)
	assert.Equal(t, 20, cfg.Sources.SeasonProbes)
	assert.Equal(t, DefaultESPNURL, cfg.Sources.ESPN)
	assert.Contains(t, cfg.UserAgent, "Mozilla/5.0")
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rankwatch.yaml")
	content := `
top: 10
days: 3
log_level: debug
sources:
  espn: https://example.com/scoreboard
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Top)
	assert.Equal(t, 3, cfg.Days)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.com/scoreboard", cfg.Sources.ESPN)

	// Untouched keys keep their defaults.
	assert.Equal(t, 12, cfg.FetchLimit)
	assert.Equal(t, DefaultScoreboardURL, cfg.Sources.Scoreboard)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RANKWATCH_TOP", "9")
	t.Setenv("RANKWATCH_SOURCES_ESPN", "https://env.example.com/sb")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Top)
	assert.Equal(t, "https://env.example.com/sb", cfg.Sources.ESPN)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"top too large", "top: 99"},
		{"top zero", "top: 0"},
		{"days zero", "days: 0"},
		{"bad log level", "log_level: loud"},
		{"bad listing url", "sources:\n  listings: [\"not a url\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rankwatch.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
