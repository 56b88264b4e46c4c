package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	tests := []struct {
		name       string
		zone       string
		domain     string
		recordType string
		want       Key
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "normalizes names and type",
			zone:       "Example.com.",
			domain:     "WWW.example.com.",
			recordType: "a",
			want:       Key{Zone: "example.com", Domain: "www.example.com", Type: "A"},
		},
		{
			name:       "apex record",
			zone:       "example.com",
			domain:     "example.com",
			recordType: "CNAME",
			want:       Key{Zone: "example.com", Domain: "example.com", Type: "CNAME"},
		},
		{
			name:       "provider alias type",
			zone:       "example.com",
			domain:     "example.com",
			recordType: "alias",
			want:       Key{Zone: "example.com", Domain: "example.com", Type: "ALIAS"},
		},
		{
			name:       "domain outside zone",
			zone:       "example.com",
			domain:     "www.example.org",
			recordType: "A",
			wantErr:    true,
			errMsg:     "is not within zone",
		},
		{
			name:       "suffix match is not a subdomain",
			zone:       "example.com",
			domain:     "badexample.com",
			recordType: "A",
			wantErr:    true,
			errMsg:     "is not within zone",
		},
		{
			name:       "missing fqdn",
			zone:       "example.com",
			recordType: "A",
			wantErr:    true,
			errMsg:     "fqdn is required",
		},
		{
			name:       "missing zone",
			domain:     "www.example.com",
			recordType: "A",
			wantErr:    true,
			errMsg:     "zone is required",
		},
		{
			name:       "unknown type",
			zone:       "example.com",
			domain:     "www.example.com",
			recordType: "BOGUS",
			wantErr:    true,
			errMsg:     "unsupported record type",
		},
		{
			name:       "meta type rejected",
			zone:       "example.com",
			domain:     "www.example.com",
			recordType: "ANY",
			wantErr:    true,
			errMsg:     "unsupported record type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKey(tt.zone, tt.domain, tt.recordType)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestValidateValues(t *testing.T) {
	tests := []struct {
		name       string
		recordType string
		values     Values
		errMsg     string
	}{
		{name: "A ok", recordType: "A", values: Values{"192.0.2.1", "192.0.2.2"}},
		{name: "AAAA ok", recordType: "AAAA", values: Values{"2001:db8::1"}},
		{name: "CNAME ok", recordType: "CNAME", values: Values{"dr.example.com"}},
		{name: "TXT free form", recordType: "TXT", values: Values{"v=spf1 -all"}},
		{name: "empty set", recordType: "A", values: nil, errMsg: "at least one new value is required"},
		{name: "blank value", recordType: "TXT", values: Values{" "}, errMsg: "empty value"},
		{name: "A given IPv6", recordType: "A", values: Values{"2001:db8::1"}, errMsg: "not an IPv4 address"},
		{name: "A given garbage", recordType: "A", values: Values{"not-an-ip"}, errMsg: "not an IPv4 address"},
		{name: "AAAA given IPv4", recordType: "AAAA", values: Values{"192.0.2.1"}, errMsg: "not an IPv6 address"},
		{name: "CNAME with two targets", recordType: "CNAME", values: Values{"a.example.com", "b.example.com"}, errMsg: "exactly one value"},
		{name: "CNAME bad target", recordType: "CNAME", values: Values{"bad..name"}, errMsg: "not a valid CNAME target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValues(tt.recordType, tt.values)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, Values{"a", "b"}.Equal(Values{"a", "b"}))
	assert.False(t, Values{"a", "b"}.Equal(Values{"b", "a"}))
	assert.False(t, Values{"a"}.Equal(nil))
	assert.True(t, Values(nil).Equal(Values{}))
}

func TestParseSite(t *testing.T) {
	site, err := ParseSite("Primary")
	require.NoError(t, err)
	assert.Equal(t, SitePrimary, site)

	site, err = ParseSite("secondary")
	require.NoError(t, err)
	assert.Equal(t, SiteSecondary, site)

	_, err = ParseSite("tertiary")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
