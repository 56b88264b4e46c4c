// Package secrets resolves the provider API key from the local sources a
// workstation keeps it in: the environment, a credentials file and the OS
// keyring.
package secrets

import (
	"errors"
	"fmt"
	"os"
)

// APIKeyName is the name the API key is stored under in every source
const APIKeyName = "NSONE_API_KEY"

// ErrSecretNotFound is returned by a resolver that does not hold the secret
var ErrSecretNotFound = errors.New("secret not found")

// Resolver is the interface for secret resolution implementations
type Resolver interface {
	Resolve(name string) (string, error)
}

// EnvResolver resolves secrets from environment variables
type EnvResolver struct{}

// NewEnvResolver creates a new environment variable resolver
func NewEnvResolver() *EnvResolver {
	return &EnvResolver{}
}

// Resolve resolves a secret from the environment variable of the same name
func (e *EnvResolver) Resolve(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: environment variable %s not set", ErrSecretNotFound, name)
	}

	return value, nil
}
