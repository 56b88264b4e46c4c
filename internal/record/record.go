// Package record holds the DNS record types shared by the API client, the
// flip engine and the definition file codec, along with the validation rules
// applied before anything is sent to the provider.
package record

import (
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// Key identifies a record at the provider.
type Key struct {
	Zone   string
	Domain string
	Type   string
}

// Values is the ordered answer set of a record. It is always written as a
// whole.
type Values []string

// Record is a key together with the values the provider currently serves.
type Record struct {
	Key    Key
	Values Values
}

// NewKey normalizes and validates a record key.
func NewKey(zone, domain, recordType string) (Key, error) {
	k := Key{
		Zone:   NormalizeName(zone),
		Domain: NormalizeName(domain),
		Type:   NormalizeType(recordType),
	}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// NormalizeName lower-cases a DNS name and strips the trailing root dot,
// which is how the provider spells names.
func NormalizeName(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
}

// NormalizeType upper-cases a record type.
func NormalizeType(recordType string) string {
	return strings.ToUpper(strings.TrimSpace(recordType))
}

// Validate checks that the key names a well-formed record inside its zone.
func (k Key) Validate() error {
	if err := ValidateName(k.Domain); err != nil {
		return err
	}
	if k.Zone == "" {
		return fmt.Errorf("%w: zone is required", ErrValidation)
	}
	if _, ok := dns.IsDomainName(k.Zone); !ok {
		return fmt.Errorf("%w: invalid zone name %q", ErrValidation, k.Zone)
	}
	if err := ValidateType(k.Type); err != nil {
		return err
	}
	if !dns.IsSubDomain(dns.Fqdn(k.Zone), dns.Fqdn(k.Domain)) {
		return fmt.Errorf("%w: %s is not within zone %s", ErrValidation, k.Domain, k.Zone)
	}
	return nil
}

// String renders the key as "domain TYPE (zone)".
func (k Key) String() string {
	return fmt.Sprintf("%s %s (zone %s)", k.Domain, k.Type, k.Zone)
}

// ValidateName checks that name is a non-empty, syntactically valid domain
// name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: fqdn is required", ErrValidation)
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return fmt.Errorf("%w: invalid fqdn %q", ErrValidation, name)
	}
	return nil
}

// providerTypes are record types NS1 serves that have no RR type number.
var providerTypes = map[string]bool{
	"ALIAS": true,
}

// ValidateType checks that recordType is a concrete resource record type.
func ValidateType(recordType string) error {
	if recordType == "" {
		return fmt.Errorf("%w: record type is required", ErrValidation)
	}
	if providerTypes[recordType] {
		return nil
	}
	t, ok := dns.StringToType[recordType]
	if !ok || t == dns.TypeNone || t == dns.TypeANY || t == dns.TypeOPT {
		return fmt.Errorf("%w: unsupported record type %q", ErrValidation, recordType)
	}
	return nil
}

// ValidateValues checks that values is a non-empty answer set that is
// well-formed for recordType.
func ValidateValues(recordType string, values Values) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: at least one new value is required", ErrValidation)
	}
	if recordType == "CNAME" && len(values) > 1 {
		return fmt.Errorf("%w: a CNAME record takes exactly one value, got %d", ErrValidation, len(values))
	}

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: empty value in %s answer set", ErrValidation, recordType)
		}

		switch recordType {
		case "A":
			ip := net.ParseIP(v)
			if ip == nil || ip.To4() == nil {
				return fmt.Errorf("%w: %q is not an IPv4 address", ErrValidation, v)
			}
		case "AAAA":
			ip := net.ParseIP(v)
			if ip == nil || ip.To4() != nil {
				return fmt.Errorf("%w: %q is not an IPv6 address", ErrValidation, v)
			}
		case "CNAME", "NS", "PTR", "ALIAS":
			if _, ok := dns.IsDomainName(v); !ok {
				return fmt.Errorf("%w: %q is not a valid %s target", ErrValidation, v, recordType)
			}
		}
	}
	return nil
}

// Equal reports whether two answer sets hold the same values in the same
// order.
func (v Values) Equal(other Values) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the values for display.
func (v Values) String() string {
	return strings.Join(v, ", ")
}
