package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func (s *sample) Validate() error {
	if s.Count < 0 {
		return errors.New("count must not be negative")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("expands_env", func(t *testing.T) {
		t.Setenv("SAMPLE_NAME", "from-env")
		var s sample
		require.NoError(t, Load(writeFile(t, "name: ${SAMPLE_NAME}\ncount: 3\n"), &s))
		require.Equal(t, sample{Name: "from-env", Count: 3}, s)
	})

	t.Run("runs_validator", func(t *testing.T) {
		var s sample
		err := Load(writeFile(t, "count: -1\n"), &s)
		require.ErrorContains(t, err, "config validation failed")
	})

	t.Run("missing_file", func(t *testing.T) {
		var s sample
		err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &s)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad_yaml", func(t *testing.T) {
		var s sample
		err := Load(writeFile(t, "name: [unterminated\n"), &s)
		require.ErrorContains(t, err, "failed to parse")
	})
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing_file_keeps_defaults", func(t *testing.T) {
		s := sample{Name: "default", Count: 1}
		require.NoError(t, LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"), &s))
		require.Equal(t, sample{Name: "default", Count: 1}, s)
	})

	t.Run("missing_file_still_validates", func(t *testing.T) {
		s := sample{Count: -5}
		require.Error(t, LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"), &s))
	})

	t.Run("present_file_overrides", func(t *testing.T) {
		s := sample{Name: "default", Count: 1}
		require.NoError(t, LoadOptional(writeFile(t, "count: 9\n"), &s))
		require.Equal(t, sample{Name: "default", Count: 9}, s)
	})
}
