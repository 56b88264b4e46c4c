package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	settings := Default()

	assert.Equal(t, DefaultEndpoint, settings.Endpoint)
	assert.Equal(t, DefaultTimeout, settings.Timeout)
	assert.Equal(t, []string{"A", "CNAME"}, settings.CheckTypes)
	assert.False(t, settings.CreateMissing)
	require.NoError(t, settings.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:    "missing endpoint",
			mutate:  func(s *Settings) { s.Endpoint = "" },
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "negative timeout",
			mutate:  func(s *Settings) { s.Timeout = -1 },
			wantErr: true,
			errMsg:  "gt",
		},
		{
			name:    "blank check type",
			mutate:  func(s *Settings) { s.CheckTypes = []string{"A", ""} },
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:   "check types are normalized",
			mutate: func(s *Settings) { s.CheckTypes = []string{"txt"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Default()
			tt.mutate(settings)
			err := settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}
