package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("REACTORNAV_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.UI.AnimationDuration)
	require.Equal(t, filepath.Join(home, ".local", "share", "reactornav", "catalog.db"), cfg.Database.Path)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/catalog.db"

[ui]
animation_duration = "1s"
accent_color = "205"
`), 0o644))
	t.Setenv("REACTORNAV_CONFIG", path)
	t.Setenv("REACTORNAV_LOG_PATH", "/tmp/reactornav.log")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/catalog.db", cfg.Database.Path)
	require.Equal(t, time.Second, cfg.UI.AnimationDuration)
	require.Equal(t, "205", cfg.UI.AccentColor)
	require.Equal(t, "/tmp/reactornav.log", cfg.Log.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("REACTORNAV_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("REACTORNAV_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/data/catalog.db"},
		UI:       UIConfig{AnimationDuration: 400 * time.Millisecond, AccentColor: "42"},
		Log:      LogConfig{Path: "/tmp/x.log"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
