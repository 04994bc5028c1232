package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vidyasagar/navhist/internal/browser"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, '|', cfg.History.DelimiterRune())
	require.Equal(t, browser.PolicyAbort, cfg.History.Policy())
	require.False(t, cfg.History.ClearForwardOnVisit)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "navhist.yaml"))
		require.NoError(t, err)
		require.Equal(t, "default", cfg.UI.Theme)
		require.Equal(t, 50, cfg.UI.RecentURLs)
	})

	t.Run("file_overrides_defaults", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("NAVHIST_TEST_DIR", dir)
		path := filepath.Join(dir, "navhist.yaml")
		content := `
history:
  file: ${NAVHIST_TEST_DIR}/seed.txt
  delimiter: ","
  malformed_records: skip
  clear_forward_on_visit: true
ui:
  theme: nord
  recent_urls: 10
  timezone: UTC
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "seed.txt"), cfg.History.File)
		require.Equal(t, ',', cfg.History.DelimiterRune())
		require.Equal(t, browser.PolicySkip, cfg.History.Policy())
		require.True(t, cfg.History.ClearForwardOnVisit)
		require.Equal(t, "nord", cfg.UI.Theme)
		require.Equal(t, "UTC", cfg.UI.Location().String())
		// untouched sections keep their defaults
		require.Equal(t, "info", cfg.App.LogLevel)
	})

	t.Run("invalid_file_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "navhist.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "unknown theme")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad_log_level", func(c *Config) { c.App.LogLevel = "loud" }},
		{"bad_log_format", func(c *Config) { c.App.LogFormat = "xml" }},
		{"empty_history_file", func(c *Config) { c.History.File = "" }},
		{"multi_char_delimiter", func(c *Config) { c.History.Delimiter = "||" }},
		{"newline_delimiter", func(c *Config) { c.History.Delimiter = "\n" }},
		{"bad_policy", func(c *Config) { c.History.MalformedRecords = "explode" }},
		{"zero_recent_urls", func(c *Config) { c.UI.RecentURLs = 0 }},
		{"too_many_recent_urls", func(c *Config) { c.UI.RecentURLs = 5000 }},
		{"bad_timezone", func(c *Config) { c.UI.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	dir, err := DataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.Equal(t, "navhist.yaml", filepath.Base(path))
}
