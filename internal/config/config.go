package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings represents the launcher configuration
type Settings struct {
	ListMax           int            `toml:"list_max"`
	IconSize          int            `toml:"icon_size"`
	ShowAllWorkspaces bool           `toml:"show_all_workspaces"`
	WebFallbackPrefix string         `toml:"web_fallback_prefix"`
	Plugins           []PluginConfig `toml:"plugins"`
}

// PluginConfig describes one external provider process
type PluginConfig struct {
	Name    string   `toml:"name"`
	Icon    string   `toml:"icon"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	// Pattern restricts which queries the provider sees; "" means all.
	Pattern string `toml:"pattern"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		ListMax:           10,
		IconSize:          34,
		ShowAllWorkspaces: true,
		WebFallbackPrefix: "bing ",
	}
}

// SettingsPath returns the default settings file location
func SettingsPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "quicklaunch", "config.toml")
}

// LoadSettings loads the settings file, applying defaults for anything the
// file does not set. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}

	if settings.ListMax <= 0 {
		settings.ListMax = DefaultSettings().ListMax
	}
	if settings.IconSize <= 0 {
		settings.IconSize = DefaultSettings().IconSize
	}

	return settings, nil
}

// Save writes the settings to the given path
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
