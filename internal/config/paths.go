package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir is the default directory name for flipper configs
	DefaultConfigDir = ".flipper"
	// DefaultSettingsName is the default settings file name
	DefaultSettingsName = "settings.yaml"
	// DefaultCredentialsName is the default credentials file name
	DefaultCredentialsName = "credentials"
)

// GetConfigDir returns the flipper configuration directory path
// Defaults to ~/.flipper/ unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv("FLIPPER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// DefaultSettingsPath returns the path of the settings file in the config
// directory
func DefaultSettingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultSettingsName), nil
}

// CredentialsPath returns the credentials file to read: the one named in
// the settings, or the default one in the config directory
func (s *Settings) CredentialsPath() (string, error) {
	if s.CredentialsFile != "" {
		return s.CredentialsFile, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultCredentialsName), nil
}
