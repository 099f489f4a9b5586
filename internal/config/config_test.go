package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileGivesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, 10, settings.ListMax)
	assert.Equal(t, 34, settings.IconSize)
	assert.True(t, settings.ShowAllWorkspaces)
	assert.Equal(t, "bing ", settings.WebFallbackPrefix)
	assert.Empty(t, settings.Plugins)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
list_max = 6
show_all_workspaces = false

[[plugins]]
name = "calc"
icon = "accessories-calculator"
command = "quicklaunch-calc"
pattern = "="
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 6, settings.ListMax)
	assert.False(t, settings.ShowAllWorkspaces)
	// Unset fields keep their defaults
	assert.Equal(t, 34, settings.IconSize)

	require.Len(t, settings.Plugins, 1)
	assert.Equal(t, "calc", settings.Plugins[0].Name)
	assert.Equal(t, "=", settings.Plugins[0].Pattern)
}

func TestLoadSettingsParseFailureGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("list_max = {"), 0644))

	settings, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	settings := DefaultSettings()
	settings.ListMax = 7
	require.NoError(t, settings.Save(path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings.ListMax, loaded.ListMax)
	assert.Equal(t, settings.IconSize, loaded.IconSize)
	assert.Equal(t, settings.ShowAllWorkspaces, loaded.ShowAllWorkspaces)
	assert.Equal(t, settings.WebFallbackPrefix, loaded.WebFallbackPrefix)
	// TOML round-trips a nil plugin list as an empty one
	assert.Empty(t, loaded.Plugins)
}

func TestStoreReadWriteTyped(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "state"))

	require.NoError(t, WriteType(store, "list.json", []string{"a", "b"}))

	values, err := ReadType[[]string](store, "list.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestStoreReadErrors(t *testing.T) {
	store := NewStoreAt(t.TempDir())

	_, err := ReadType[[]string](store, "missing.json")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "bad.json"), []byte("{"), 0644))
	_, err = ReadType[[]string](store, "bad.json")
	assert.Error(t, err)
}
