package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Load reads and parses a settings file from the given path
func Load(path string) (*Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: settings file not found: %s", record.ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: failed to open settings file %s: %v", record.ErrConfig, path, err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads settings from an io.Reader. Keys absent from the
// document keep their defaults.
func LoadFromReader(r io.Reader) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read settings: %v", record.ErrConfig, err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", record.ErrConfig, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: settings validation failed: %v", record.ErrConfig, err)
	}

	return settings, nil
}

// LoadOrDefault loads the settings file at path. An empty path means the
// default location, where a missing file is not an error.
func LoadOrDefault(path string) (*Settings, error) {
	if path != "" {
		return Load(path)
	}

	path, err := DefaultSettingsPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", record.ErrConfig, err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
