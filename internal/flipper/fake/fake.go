// Package fake provides an in-memory provider API for testing.
package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Call is one API call, kept for test assertions.
type Call struct {
	Method string
	Key    record.Key
	Values record.Values
}

// API is an in-memory provider. Records are keyed by zone, domain and type.
type API struct {
	mu      sync.Mutex
	records map[record.Key]record.Values
	fail    map[string]error
	calls   []Call
}

// New returns an API pre-loaded with the given records.
func New(initial ...record.Record) *API {
	a := &API{
		records: make(map[record.Key]record.Values),
		fail:    make(map[string]error),
	}
	for _, r := range initial {
		a.records[r.Key] = r.Values
	}
	return a
}

// FailOn makes every call of method touching domain return err. An empty
// domain matches any domain.
func (a *API) FailOn(method, domain string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fail[method+"|"+domain] = err
}

func (a *API) failure(method, domain string) error {
	if err, ok := a.fail[method+"|"+domain]; ok {
		return err
	}
	return a.fail[method+"|"]
}

func (a *API) record(method string, key record.Key, values record.Values) {
	a.calls = append(a.calls, Call{Method: method, Key: key, Values: values})
}

// FetchRecord returns the stored values.
func (a *API) FetchRecord(_ context.Context, key record.Key) (record.Values, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("fetch", key, nil)

	if err := a.failure("fetch", key.Domain); err != nil {
		return nil, err
	}
	values, ok := a.records[key]
	if !ok {
		return nil, fmt.Errorf("%w: record not found", record.ErrNotFound)
	}
	return values, nil
}

// UpdateRecord replaces values of an existing record.
func (a *API) UpdateRecord(_ context.Context, key record.Key, values record.Values) (record.Values, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("update", key, values)

	if err := a.failure("update", key.Domain); err != nil {
		return nil, err
	}
	if _, ok := a.records[key]; !ok {
		return nil, fmt.Errorf("%w: record not found", record.ErrNotFound)
	}
	a.records[key] = append(record.Values(nil), values...)
	return a.records[key], nil
}

// CreateRecord stores a new record.
func (a *API) CreateRecord(_ context.Context, key record.Key, values record.Values) (record.Values, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("create", key, values)

	if err := a.failure("create", key.Domain); err != nil {
		return nil, err
	}
	a.records[key] = append(record.Values(nil), values...)
	return a.records[key], nil
}

// SearchRecords returns every stored record named fqdn.
func (a *API) SearchRecords(_ context.Context, fqdn string) ([]record.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("search", record.Key{Domain: fqdn}, nil)

	if err := a.failure("search", fqdn); err != nil {
		return nil, err
	}
	var out []record.Record
	for k, v := range a.records {
		if k.Domain == fqdn {
			out = append(out, record.Record{Key: k, Values: v})
		}
	}
	return out, nil
}

// Calls returns all calls made so far, oldest first.
func (a *API) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Call, len(a.calls))
	copy(out, a.calls)
	return out
}

// Writes returns the number of update and create calls made so far.
func (a *API) Writes() int {
	n := 0
	for _, c := range a.Calls() {
		if c.Method == "update" || c.Method == "create" {
			n++
		}
	}
	return n
}

// Values returns the stored values of key.
func (a *API) Values(key record.Key) (record.Values, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.records[key]
	return v, ok
}
