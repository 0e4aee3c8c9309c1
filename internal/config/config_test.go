package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.True(t, cfg.Settings.DryRun, "dry-run must be the default")
	assert.False(t, cfg.Settings.Debug)
	assert.Empty(t, cfg.Settings.Protect)
	assert.Equal(t, "#7B61FF", cfg.Theme.Primary)
	assert.Equal(t, "#E06C75", cfg.Theme.Danger)
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("missing_file_returns_defaults", func(t *testing.T) {
		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.Settings.DryRun)
	})

	t.Run("partial_file_keeps_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "settings:\n  debug: true\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.Settings.Debug)
		assert.True(t, cfg.Settings.DryRun, "unset dry_run must not clobber the safe default")
		assert.Equal(t, "#7B61FF", cfg.Theme.Primary)
	})

	t.Run("explicit_dry_run_false_wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "settings:\n  dry_run: false\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.False(t, cfg.Settings.DryRun)
	})

	t.Run("full_file_overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := `settings:
  dry_run: true
  protect:
    - /boot/**
    - /etc/*
script:
  default: /tmp/plan.sh
theme:
  primary: "#FFFFFF"
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"/boot/**", "/etc/*"}, cfg.Settings.Protect)
		assert.Equal(t, "/tmp/plan.sh", cfg.Script.Default)
		assert.Equal(t, "#FFFFFF", cfg.Theme.Primary)
		assert.Equal(t, "#E5C07B", cfg.Theme.Warning, "untouched theme colors stay default")
	})

	t.Run("malformed_yaml_errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("settings: [broken"), 0644))

		_, err := LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := New()
	cfg.Settings.DryRun = false
	cfg.Settings.Protect = []string{"/home/**"}
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.False(t, loaded.Settings.DryRun)
	assert.Equal(t, cfg.Settings.Protect, loaded.Settings.Protect)
}
