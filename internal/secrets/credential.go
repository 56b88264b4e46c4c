package secrets

import (
	"fmt"
	"strings"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Credential is the provider API key. It is resolved once at startup and
// never changes afterwards.
type Credential struct {
	key string
}

// Key returns the raw key for use in request headers
func (c Credential) Key() string {
	return c.key
}

// String redacts the key so it cannot leak through formatting
func (c Credential) String() string {
	return "[redacted]"
}

// LoadCredential resolves the API key through r. A missing or blank key is
// a configuration error.
func LoadCredential(r Resolver) (Credential, error) {
	value, err := r.Resolve(APIKeyName)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: api key not configured: %v", record.ErrConfig, err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return Credential{}, fmt.Errorf("%w: api key is empty", record.ErrConfig)
	}
	return Credential{key: value}, nil
}

// DefaultChain returns the standard lookup order: environment, credentials
// file, OS keyring
func DefaultChain(credentialsPath string) *ChainResolver {
	return NewChainResolver(
		NewEnvResolver(),
		NewFileResolver(credentialsPath),
		NewKeyringResolver(),
	)
}
