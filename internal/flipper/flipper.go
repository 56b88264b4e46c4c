// Package flipper implements the record inspection and failover operations
// on top of a DNS provider API.
package flipper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/catalystcommunity/flipper/v1/internal/flipconfig"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// API is the subset of the provider client the operations need.
type API interface {
	FetchRecord(ctx context.Context, key record.Key) (record.Values, error)
	UpdateRecord(ctx context.Context, key record.Key, values record.Values) (record.Values, error)
	CreateRecord(ctx context.Context, key record.Key, values record.Values) (record.Values, error)
	SearchRecords(ctx context.Context, fqdn string) ([]record.Record, error)
}

// Options tunes the operations.
type Options struct {
	// CheckTypes limits which record types check reports.
	CheckTypes []string
	// CreateMissing creates records the provider does not have instead of
	// attempting an update.
	CreateMissing bool
}

// Service runs check, flip and flip_app against one provider client.
type Service struct {
	api  API
	opts Options
	log  logrus.FieldLogger
}

// New creates a Service. A nil logger discards log output.
func New(api API, opts Options, log logrus.FieldLogger) *Service {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	if len(opts.CheckTypes) == 0 {
		opts.CheckTypes = []string{"A", "CNAME"}
	}
	return &Service{api: api, opts: opts, log: log}
}

// Check returns the records served for fqdn whose type is one of the
// configured check types. It never writes.
func (s *Service) Check(ctx context.Context, fqdn string) ([]record.Record, error) {
	name := record.NormalizeName(fqdn)
	if err := record.ValidateName(name); err != nil {
		return nil, err
	}

	found, err := s.api.SearchRecords(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search records for %s: %w", name, err)
	}

	var matches []record.Record
	for _, r := range found {
		if r.Key.Domain == name && s.checkType(r.Key.Type) {
			matches = append(matches, r)
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no %s records found for %s", record.ErrNotFound, strings.Join(s.opts.CheckTypes, " or "), name)
	}
	return matches, nil
}

func (s *Service) checkType(t string) bool {
	for _, ct := range s.opts.CheckTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Request is a single flip: the record to change and its new answer set.
type Request struct {
	Key    record.Key
	Values record.Values
}

// Validate checks the request before any call is made.
func (r Request) Validate() error {
	if err := r.Key.Validate(); err != nil {
		return err
	}
	return record.ValidateValues(r.Key.Type, r.Values)
}

// Flip fetches the current answers of a record, replaces them and returns
// both. A record the provider does not have is reported as PreviousMissing
// and the write still goes ahead.
func (s *Service) Flip(ctx context.Context, req Request) (*Result, error) {
	res := &Result{Key: req.Key, Desired: req.Values, State: StatePending}

	if err := req.Validate(); err != nil {
		return res.fail(err), err
	}

	log := s.log.WithFields(logrus.Fields{"fqdn": req.Key.Domain, "type": req.Key.Type, "zone": req.Key.Zone})

	prev, err := s.api.FetchRecord(ctx, req.Key)
	switch {
	case err == nil:
		res.Previous = prev
	case errors.Is(err, record.ErrNotFound):
		res.PreviousMissing = true
		log.Warn("record has no previous value at provider")
	default:
		err = fmt.Errorf("failed to fetch %s: %w", req.Key, err)
		return res.fail(err), err
	}
	res.State = StateFetched

	write := s.api.UpdateRecord
	if res.PreviousMissing && s.opts.CreateMissing {
		write = s.api.CreateRecord
		res.Created = true
	}

	current, err := write(ctx, req.Key, req.Values)
	if err != nil {
		err = fmt.Errorf("failed to update %s: %w", req.Key, err)
		return res.fail(err), err
	}
	res.Current = current
	res.State = StateUpdated

	log.WithField("values", current.String()).Info("record flipped")
	return res, nil
}

// FlipApp flips every record of the named application to the answers of the
// given site. Records are processed in file order; a failing record does not
// stop the rest. The returned error wraps ErrPartialBatch when any record
// failed.
func (s *Service) FlipApp(ctx context.Context, defs *flipconfig.File, app string, site record.Site) (*Summary, error) {
	if !site.Valid() {
		return nil, fmt.Errorf("%w: unknown site %q", record.ErrValidation, site)
	}

	application, ok := defs.Lookup(app)
	if !ok {
		return nil, fmt.Errorf("%w: unknown application %q", record.ErrNotFound, app)
	}

	summary := &Summary{App: app, Site: site}
	for _, def := range application.Records {
		s.log.WithFields(logrus.Fields{"app": app, "fqdn": def.FQDN, "site": site}).Info("flipping record")

		res := s.flipDefinition(ctx, def, site)
		if res.Err == nil {
			res.State = StateReported
		}
		summary.Results = append(summary.Results, res)
	}

	return summary, summary.Err()
}

func (s *Service) flipDefinition(ctx context.Context, def flipconfig.Record, site record.Site) *Result {
	values := def.Values(site)

	zone := def.Zone
	if zone == "" {
		resolved, err := s.ResolveZone(ctx, def.FQDN, def.Type)
		if err != nil {
			res := &Result{Key: record.Key{Domain: def.FQDN, Type: def.Type}, Desired: values}
			return res.fail(err)
		}
		zone = resolved
	}

	key, err := record.NewKey(zone, def.FQDN, def.Type)
	if err != nil {
		res := &Result{Key: record.Key{Zone: zone, Domain: def.FQDN, Type: def.Type}, Desired: values}
		return res.fail(err)
	}

	res, _ := s.Flip(ctx, Request{Key: key, Values: values})
	return res
}

// ResolveZone finds the zone serving fqdn by searching the provider. An
// exact name and type match is preferred over a name-only match.
func (s *Service) ResolveZone(ctx context.Context, fqdn, recordType string) (string, error) {
	name := record.NormalizeName(fqdn)
	recordType = record.NormalizeType(recordType)
	found, err := s.api.SearchRecords(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve zone for %s: %w", name, err)
	}

	zone := ""
	for _, r := range found {
		if r.Key.Domain != name {
			continue
		}
		if r.Key.Type == recordType {
			return r.Key.Zone, nil
		}
		if zone == "" {
			zone = r.Key.Zone
		}
	}

	if zone == "" {
		return "", fmt.Errorf("%w: no matching records found for %s", record.ErrNotFound, name)
	}
	return zone, nil
}
