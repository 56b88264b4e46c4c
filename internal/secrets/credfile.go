package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileResolver resolves secrets from a credentials file of KEY="value"
// assignments
type FileResolver struct {
	path string
}

// NewFileResolver creates a resolver over the credentials file at path. The
// file is read on each lookup so a missing file only matters when the chain
// reaches it.
func NewFileResolver(path string) *FileResolver {
	return &FileResolver{path: path}
}

// Resolve looks name up in the credentials file
func (f *FileResolver) Resolve(name string) (string, error) {
	if f.path == "" {
		return "", fmt.Errorf("%w: no credentials file configured", ErrSecretNotFound)
	}
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: credentials file %s does not exist", ErrSecretNotFound, f.path)
	}

	vars, err := godotenv.Read(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to parse credentials file %s: %w", f.path, err)
	}

	value, ok := vars[name]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s not set in %s", ErrSecretNotFound, name, f.path)
	}
	return value, nil
}

// WriteCredentialsFile writes a single-assignment credentials file readable
// only by the owner
func WriteCredentialsFile(path, name, value string) error {
	if value == "" {
		return fmt.Errorf("value cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	content, err := godotenv.Marshal(map[string]string{name: value})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	// An existing file keeps its mode on write, so narrow it before the key lands
	if _, err := os.Stat(path); err == nil {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to restrict credentials file: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
