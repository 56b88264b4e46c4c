package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name used in the OS keyring
const KeyringService = "flipper"

// KeyringResolver resolves secrets stored in the OS keyring
type KeyringResolver struct {
	service string
}

// NewKeyringResolver creates a resolver over the flipper keyring service
func NewKeyringResolver() *KeyringResolver {
	return &KeyringResolver{service: KeyringService}
}

// Resolve reads name from the OS keyring
func (k *KeyringResolver) Resolve(name string) (string, error) {
	value, err := keyring.Get(k.service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: %s not in keyring", ErrSecretNotFound, name)
		}
		return "", fmt.Errorf("keyring unavailable: %w", err)
	}
	return value, nil
}

// StoreAPIKey stores the API key in the OS keyring
func StoreAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	if err := keyring.Set(KeyringService, APIKeyName, key); err != nil {
		return fmt.Errorf("failed to store api key in keyring: %w", err)
	}
	return nil
}

// ClearAPIKey removes the API key from the OS keyring. Clearing a key that
// was never stored is not an error.
func ClearAPIKey() error {
	err := keyring.Delete(KeyringService, APIKeyName)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to clear api key from keyring: %w", err)
	}
	return nil
}
