package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	t.Run("default directory", func(t *testing.T) {
		t.Setenv("FLIPPER_CONFIG_DIR", "")
		dir, err := GetConfigDir()
		require.NoError(t, err)

		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(homeDir, DefaultConfigDir), dir)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("FLIPPER_CONFIG_DIR", "/custom/config/dir")

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config/dir", dir)
	})
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv("FLIPPER_CONFIG_DIR", "/custom/config/dir")

	path, err := DefaultSettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/dir/settings.yaml", path)
}

func TestCredentialsPath(t *testing.T) {
	t.Setenv("FLIPPER_CONFIG_DIR", "/custom/config/dir")

	settings := Default()
	path, err := settings.CredentialsPath()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/dir/credentials", path)

	settings.CredentialsFile = "/etc/flipper/credentials"
	path, err = settings.CredentialsPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/flipper/credentials", path)
}
