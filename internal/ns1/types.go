package ns1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Answer is one entry of a record's answer list. The provider stores each
// answer as a list of rdata fields, e.g. ["192.0.2.1"] or [10, "mx.example.com"].
type Answer struct {
	Answer []interface{} `json:"answer"`
}

// String joins the rdata fields with spaces.
func (a Answer) String() string {
	parts := make([]string, 0, len(a.Answer))
	for _, f := range a.Answer {
		parts = append(parts, formatField(f))
	}
	return strings.Join(parts, " ")
}

// formatField renders one rdata field. JSON numbers decode as float64 and
// are printed without exponent so 1000000 stays 1000000.
func formatField(f interface{}) string {
	if n, ok := f.(float64); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprint(f)
}

// Record is the provider's representation of a record, as returned by the
// zones/records resource and by search.
type Record struct {
	ID      string   `json:"id,omitempty"`
	Zone    string   `json:"zone"`
	Domain  string   `json:"domain"`
	Type    string   `json:"type"`
	TTL     int      `json:"ttl,omitempty"`
	Answers []Answer `json:"answers"`
}

// Values flattens the answers into display/comparison form.
func (r Record) Values() record.Values {
	values := make(record.Values, 0, len(r.Answers))
	for _, a := range r.Answers {
		values = append(values, a.String())
	}
	return values
}

// toRecord converts a provider record into the shared representation.
func (r Record) toRecord() record.Record {
	return record.Record{
		Key: record.Key{
			Zone:   record.NormalizeName(r.Zone),
			Domain: record.NormalizeName(r.Domain),
			Type:   record.NormalizeType(r.Type),
		},
		Values: r.Values(),
	}
}

// recordPayload is the body of a record create or update call.
type recordPayload struct {
	Zone    string   `json:"zone"`
	Domain  string   `json:"domain"`
	Type    string   `json:"type"`
	Answers []Answer `json:"answers"`
}

func newRecordPayload(key record.Key, values record.Values) recordPayload {
	answers := make([]Answer, 0, len(values))
	for _, v := range values {
		answers = append(answers, Answer{Answer: []interface{}{v}})
	}
	return recordPayload{
		Zone:    key.Zone,
		Domain:  key.Domain,
		Type:    key.Type,
		Answers: answers,
	}
}

// apiError is the error body returned by the provider.
type apiError struct {
	Message string `json:"message"`
}
