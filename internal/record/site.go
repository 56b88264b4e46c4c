package record

import (
	"fmt"
	"strings"
)

// Site selects which of the two predefined answer sets a flip applies.
type Site string

const (
	SitePrimary   Site = "primary"
	SiteSecondary Site = "secondary"
)

// ParseSite converts a CLI argument into a Site.
func ParseSite(s string) (Site, error) {
	site := Site(strings.ToLower(strings.TrimSpace(s)))
	if !site.Valid() {
		return "", fmt.Errorf("%w: site must be %q or %q, got %q", ErrValidation, SitePrimary, SiteSecondary, s)
	}
	return site, nil
}

// Valid reports whether s is one of the known sites.
func (s Site) Valid() bool {
	return s == SitePrimary || s == SiteSecondary
}
