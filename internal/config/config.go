// Package config loads the optional minmax settings file.
//
// Settings live in the working directory, in either .minmax.yaml (parsed
// with gopkg.in/yaml.v3) or .minmax.json (JSONC: comments and trailing
// commas are stripped with github.com/tidwall/jsonc before decoding). The
// YAML file wins when both exist.
//
// Input and output paths are fixed and cannot be configured here.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/minmax/internal/logger"
)

// Settings file names, in lookup order.
const (
	YAMLFile = ".minmax.yaml"
	JSONFile = ".minmax.json"
)

// Output formats for errors and reports.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Configuration validation errors.
var (
	ErrInvalidOutput   = errors.New("output must be 'text' or 'json'")
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
)

// Settings holds the user-tunable behavior of the CLI.
type Settings struct {
	// Output selects human-readable text or JSON for errors and reports.
	Output string `yaml:"output" json:"output"`

	// LogLevel is the minimum level of diagnostic records written to stderr.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Source is the settings file the values came from; empty for defaults.
	Source string `yaml:"-" json:"-"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		Output:   OutputText,
		LogLevel: string(logger.WarnLevel),
	}
}

// Load reads the settings file from dir. A missing file is not an error:
// the defaults are returned. Fields absent from the file keep their
// default values.
func Load(dir string) (*Settings, error) {
	settings := Default()

	if path := filepath.Join(dir, YAMLFile); fileExists(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		settings.Source = path
	} else if path := filepath.Join(dir, JSONFile); fileExists(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := json.Unmarshal(jsonc.ToJSON(data), settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		settings.Source = path
	}

	if err := settings.Validate(); err != nil {
		if settings.Source != "" {
			return nil, fmt.Errorf("%s: %w", settings.Source, err)
		}
		return nil, err
	}
	return settings, nil
}

// Validate normalizes case and checks every field.
func (s *Settings) Validate() error {
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))
	if s.Output != OutputText && s.Output != OutputJSON {
		return ErrInvalidOutput
	}

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return ErrInvalidLogLevel
	}
	s.LogLevel = string(level)
	return nil
}

// JSON reports whether JSON output is selected.
func (s *Settings) JSON() bool {
	return s.Output == OutputJSON
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
