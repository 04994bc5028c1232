package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/vidyasagar/navhist/internal/storage"
	"github.com/vidyasagar/navhist/internal/theme"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "navhist.yaml")
	body := "app:\n  log_level: none\n  log_file: " + filepath.Join(dir, "navhist.log") + "\n" +
		"history:\n  file: " + filepath.Join(dir, "history.txt") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	var got *storage.Config
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		var err error
		got, err = loadConfig(c)
		return err
	}

	err := cmd.Run(context.Background(), []string{"navhist",
		"--config", cfgPath,
		"-f", "other.txt",
		"--theme", "nord",
		"--log-level", "debug",
	})
	require.NoError(t, err)
	require.Equal(t, "other.txt", got.History.File)
	require.Equal(t, "nord", got.UI.Theme)
	require.Equal(t, "debug", got.App.LogLevel)
	require.Equal(t, "|", got.History.Delimiter)
}

func TestLoadConfigRejectsUnknownTheme(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir())

	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		_, err := loadConfig(c)
		return err
	}
	err := cmd.Run(context.Background(), []string{"navhist", "-c", cfgPath, "--theme", "neon"})
	require.ErrorContains(t, err, "invalid config")
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { theme.Set("default") })

	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.txt"), []byte("a.com|1\nb.com|2\n"), 0o644))

	var s *session
	cmd := newCommand()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		var err error
		s, err = setup(c)
		return err
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"navhist", "-c", cfgPath}))
	require.False(t, s.statusErr)
	require.Equal(t, "Loaded 2 entries.", s.status)

	cur, ok := s.nav.Current()
	require.True(t, ok)
	require.Equal(t, "b.com", cur.URL())
}
