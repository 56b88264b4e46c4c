package flipper

import (
	"fmt"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// State tracks a record through a flip.
type State string

const (
	StatePending  State = "pending"
	StateFetched  State = "fetched"
	StateUpdated  State = "updated"
	StateReported State = "reported"
	StateFailed   State = "failed"
)

// Result is the outcome of flipping one record.
type Result struct {
	Key             record.Key
	Desired         record.Values
	Previous        record.Values
	Current         record.Values
	PreviousMissing bool
	Created         bool
	State           State
	Err             error
}

func (r *Result) fail(err error) *Result {
	r.State = StateFailed
	r.Err = err
	return r
}

// Summary collects the per-record results of a batch flip.
type Summary struct {
	App     string
	Site    record.Site
	Results []*Result
}

// Succeeded returns the results that completed.
func (s *Summary) Succeeded() []*Result {
	var out []*Result
	for _, r := range s.Results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Failed returns the results that did not complete.
func (s *Summary) Failed() []*Result {
	var out []*Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Err returns nil when every record flipped, otherwise an error wrapping
// ErrPartialBatch.
func (s *Summary) Err() error {
	failed := len(s.Failed())
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d records failed for %s", record.ErrPartialBatch, failed, len(s.Results), s.App)
}
