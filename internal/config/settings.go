package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

// Backends and color modes accepted in settings and flags
const (
	BackendCLI   = "cli"
	BackendGoGit = "gogit"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings represents the structure of $GITWALK_HOME/settings.yaml.
// Pointer fields distinguish "unset" from the zero value.
type Settings struct {
	Backend     string `yaml:"backend,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Debug       *bool  `yaml:"debug,omitempty"`
	MaxLogFiles *int   `yaml:"max_log_files,omitempty"`
	StateDir    string `yaml:"state_dir,omitempty"`
	Strict      *bool  `yaml:"strict,omitempty"`
}

// Validate checks enumerated values
func (s *Settings) Validate() error {
	if s.Backend != "" && !slices.Contains([]string{BackendCLI, BackendGoGit}, s.Backend) {
		return fmt.Errorf("unknown backend '%s' (expected %s or %s)", s.Backend, BackendCLI, BackendGoGit)
	}
	if s.Color != "" && !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, s.Color) {
		return fmt.Errorf("unknown color mode '%s'", s.Color)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files cannot be negative")
	}
	return nil
}

// LoadSettings loads settings from $GITWALK_HOME/settings.yaml.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.yaml: %w", err)
	}

	if settings.StateDir != "" {
		settings.StateDir = ExpandPath(settings.StateDir)
	}

	return &settings, nil
}
