package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Settings holds the tunables of a flipper installation. Every field has a
// default, so the settings file itself is optional.
type Settings struct {
	Endpoint        string        `yaml:"endpoint" validate:"required,url"`
	Timeout         time.Duration `yaml:"timeout" validate:"gt=0"`
	CredentialsFile string        `yaml:"credentials_file,omitempty"`
	CheckTypes      []string      `yaml:"check_types" validate:"min=1,dive,required"`
	// CreateMissing turns a flip of a record the provider does not have
	// into a create instead of an update attempt.
	CreateMissing bool `yaml:"create_missing"`
}

const (
	DefaultEndpoint = "https://api.nsone.net/v1"
	DefaultTimeout  = 30 * time.Second
)

// Default returns Settings with sensible defaults.
func Default() *Settings {
	return &Settings{
		Endpoint:   DefaultEndpoint,
		Timeout:    DefaultTimeout,
		CheckTypes: []string{"A", "CNAME"},
	}
}

var validate = validator.New()

// Validate performs validation on the Settings struct
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q check (value: %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	for i, t := range s.CheckTypes {
		s.CheckTypes[i] = record.NormalizeType(t)
		if err := record.ValidateType(s.CheckTypes[i]); err != nil {
			return fmt.Errorf("check_types: %w", err)
		}
	}

	return nil
}
