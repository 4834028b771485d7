package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultStartRoute, cfg.StartRoute)
	assert.True(t, cfg.UI.ShowBreadcrumbs)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, DefaultAccentColor, cfg.UI.AccentColor)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`start_route: profile
ui:
  show_breadcrumbs: false
  accent_color: "#ff00ff"
log:
  file: /tmp/lazynav.log
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "profile", cfg.StartRoute)
	assert.False(t, cfg.UI.ShowBreadcrumbs)
	assert.True(t, cfg.UI.AltScreen, "unset keys keep their defaults")
	assert.Equal(t, "#ff00ff", cfg.UI.AccentColor)
	assert.Equal(t, "/tmp/lazynav.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  show_breadcrumbs: true\n"), 0600))
	t.Setenv("LAZYNAV_UI_SHOW_BREADCRUMBS", "false")
	t.Setenv("LAZYNAV_START_ROUTE", "settings")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.UI.ShowBreadcrumbs)
	assert.Equal(t, "settings", cfg.StartRoute)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unterminated"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{
		StartRoute: "detail",
		UI:         UIConfig{ShowBreadcrumbs: false, AltScreen: false, AccentColor: "#5f87ff"},
		Log:        LogConfig{Level: "warn"},
	}

	require.NoError(t, Save(path, want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/lazynav.yaml")

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/lazynav.yaml", path)
}
