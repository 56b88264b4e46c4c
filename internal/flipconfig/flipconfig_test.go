package flipconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

const sampleDefinitions = `# DR definitions
[payments]
fqdn: api.payments.example.com A
primary: 192.0.2.10
secondary: 198.51.100.10

fqdn: web.payments.example.com CNAME example.com
primary: web-east.example.com
secondary: web-west.example.com

[reports]
fqdn: reports.example.com A example.com
primary: 192.0.2.20, 192.0.2.21
secondary: 198.51.100.20,198.51.100.21
`

func TestParse(t *testing.T) {
	defs, err := Parse(strings.NewReader(sampleDefinitions))
	require.NoError(t, err)

	assert.Equal(t, []string{"payments", "reports"}, defs.Names())

	payments, ok := defs.Lookup("payments")
	require.True(t, ok)
	require.Len(t, payments.Records, 2)
	assert.Equal(t, Record{
		FQDN:      "api.payments.example.com",
		Type:      "A",
		Primary:   record.Values{"192.0.2.10"},
		Secondary: record.Values{"198.51.100.10"},
	}, payments.Records[0])
	assert.Equal(t, "example.com", payments.Records[1].Zone)

	reports, ok := defs.Lookup("reports")
	require.True(t, ok)
	require.Len(t, reports.Records, 1)
	assert.Equal(t, record.Values{"192.0.2.20", "192.0.2.21"}, reports.Records[0].Values(record.SitePrimary))
	assert.Equal(t, record.Values{"198.51.100.20", "198.51.100.21"}, reports.Records[0].Values(record.SiteSecondary))

	_, ok = defs.Lookup("unknown")
	assert.False(t, ok)
}

func TestParseMergesRepeatedSections(t *testing.T) {
	input := `[app]
fqdn: a.example.com A
primary: 192.0.2.1
secondary: 192.0.2.2
[other]
fqdn: b.example.com A
primary: 192.0.2.3
secondary: 192.0.2.4
[app]
fqdn: c.example.com A
secondary: 192.0.2.6
primary: 192.0.2.5
`
	defs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "other"}, defs.Names())

	app, _ := defs.Lookup("app")
	require.Len(t, app.Records, 2)
	assert.Equal(t, "a.example.com", app.Records[0].FQDN)
	assert.Equal(t, "c.example.com", app.Records[1].FQDN)
	assert.Equal(t, record.Values{"192.0.2.5"}, app.Records[1].Primary)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "record before header",
			input:  "fqdn: a.example.com A\n",
			errMsg: "before any [application] header",
		},
		{
			name:   "values before fqdn",
			input:  "[app]\nprimary: 192.0.2.1\n",
			errMsg: "primary appears before fqdn",
		},
		{
			name:   "fqdn missing type",
			input:  "[app]\nfqdn: a.example.com\n",
			errMsg: "line 2",
		},
		{
			name:   "bad record type",
			input:  "[app]\nfqdn: a.example.com NOPE\n",
			errMsg: "unsupported record type",
		},
		{
			name:   "incomplete record at end of file",
			input:  "[app]\nfqdn: a.example.com A\nprimary: 192.0.2.1\n",
			errMsg: "missing its primary or secondary",
		},
		{
			name:   "incomplete record before next fqdn",
			input:  "[app]\nfqdn: a.example.com A\nprimary: 192.0.2.1\nfqdn: b.example.com A\n",
			errMsg: "line 4",
		},
		{
			name:   "empty values",
			input:  "[app]\nfqdn: a.example.com A\nprimary: ,\n",
			errMsg: "primary has no values",
		},
		{
			name:   "unknown key",
			input:  "[app]\nttl: 60\n",
			errMsg: `unknown key "ttl"`,
		},
		{
			name:   "not key value",
			input:  "[app]\njunk\n",
			errMsg: "expected key: value",
		},
		{
			name:   "empty header",
			input:  "[ ]\n",
			errMsg: "empty application name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, record.ErrConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	defs := NewFile()
	defs.Add("payments",
		Record{
			FQDN:      "api.payments.example.com",
			Type:      "A",
			Primary:   record.Values{"192.0.2.10", "192.0.2.11"},
			Secondary: record.Values{"198.51.100.10"},
		},
		Record{
			FQDN:      "web.payments.example.com",
			Type:      "CNAME",
			Zone:      "example.com",
			Primary:   record.Values{"web-east.example.com"},
			Secondary: record.Values{"web-west.example.com"},
		},
	)
	defs.Add("ipv6",
		Record{
			FQDN:      "v6.example.com",
			Type:      "AAAA",
			Primary:   record.Values{"2001:db8::1"},
			Secondary: record.Values{"2001:db8::2"},
		},
	)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defs))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, defs.Names(), parsed.Names())
	for _, name := range defs.Names() {
		want, _ := defs.Lookup(name)
		got, ok := parsed.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, want.Records, got.Records)
	}
}

func TestWriteRejectsUnrepresentableValues(t *testing.T) {
	tests := []struct {
		name   string
		values record.Values
	}{
		{name: "comma", values: record.Values{"a,b"}},
		{name: "newline", values: record.Values{"a\nb"}},
		{name: "padded", values: record.Values{" a"}},
		{name: "empty", values: record.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := NewFile()
			defs.Add("app", Record{FQDN: "a.example.com", Type: "TXT", Primary: tt.values, Secondary: record.Values{"ok"}})
			err := Write(&bytes.Buffer{}, defs)
			require.Error(t, err)
			assert.ErrorIs(t, err, record.ErrValidation)
		})
	}
}

func TestWriteRejectsUnrepresentableRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{name: "empty fqdn", rec: Record{Type: "A"}},
		{name: "type with space", rec: Record{FQDN: "www.example.com", Type: "A B"}},
		{name: "fqdn with space", rec: Record{FQDN: "www.example.com extra", Type: "A"}},
		{name: "zone with tab", rec: Record{FQDN: "www.example.com", Type: "A", Zone: "example.com\tx"}},
		{name: "unknown type", rec: Record{FQDN: "www.example.com", Type: "BOGUS"}},
		{name: "missing type", rec: Record{FQDN: "www.example.com"}},
		{name: "invalid fqdn", rec: Record{FQDN: "www..example.com", Type: "A"}},
		{name: "invalid zone", rec: Record{FQDN: "www.example.com", Type: "A", Zone: "example..com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			rec.Primary = record.Values{"192.0.2.1"}
			rec.Secondary = record.Values{"192.0.2.2"}

			defs := NewFile()
			defs.Add("app", rec)
			var buf bytes.Buffer
			err := Write(&buf, defs)
			require.Error(t, err)
			assert.ErrorIs(t, err, record.ErrValidation)
		})
	}
}

func TestWriteNormalizesRecordFields(t *testing.T) {
	defs := NewFile()
	defs.Add("app", Record{
		FQDN:      "WWW.Example.com.",
		Type:      "a",
		Zone:      "Example.com.",
		Primary:   record.Values{"192.0.2.1"},
		Secondary: record.Values{"192.0.2.2"},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defs))
	assert.Contains(t, buf.String(), "fqdn: www.example.com A example.com\n")

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	app, ok := parsed.Lookup("app")
	require.True(t, ok)
	assert.Equal(t, []Record{{
		FQDN:      "www.example.com",
		Type:      "A",
		Zone:      "example.com",
		Primary:   record.Values{"192.0.2.1"},
		Secondary: record.Values{"192.0.2.2"},
	}}, app.Records)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flips.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDefinitions), 0600))

	defs, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, defs.Apps, 2)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrConfig)
	assert.Contains(t, err.Error(), "not found")

	_, err = Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrConfig)
}
