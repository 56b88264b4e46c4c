package flipper

import (
	"fmt"
	"io"

	"github.com/catalystcommunity/flipper/v1/internal/flipconfig"
	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// WriteRecords prints records in the block format used by check.
func WriteRecords(w io.Writer, records []record.Record) {
	for _, r := range records {
		fmt.Fprintf(w, "FQDN: %s\n", r.Key.Domain)
		fmt.Fprintf(w, "Zone: %s\n", r.Key.Zone)
		fmt.Fprintf(w, "Record Type: %s\n", r.Key.Type)
		fmt.Fprintf(w, "Record Values: %s\n\n", r.Values)
	}
}

// WriteResult prints the before/after view of a single flip.
func WriteResult(w io.Writer, res *Result) {
	fmt.Fprintf(w, "Flipping %s %s in zone %s\n", res.Key.Domain, res.Key.Type, res.Key.Zone)
	if res.PreviousMissing {
		fmt.Fprintln(w, "  Previous: (no previous value)")
	} else {
		fmt.Fprintf(w, "  Previous: %s\n", res.Previous)
	}
	fmt.Fprintf(w, "  Current:  %s\n", res.Current)
	if res.Created {
		fmt.Fprintf(w, "✓ Record created\n")
	} else {
		fmt.Fprintf(w, "✓ Record flipped successfully\n")
	}
}

// WriteSummary prints the outcome of a batch flip, failures included.
func WriteSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "\nFlip operation summary for %s (site: %s):\n", s.App, s.Site)
	for _, r := range s.Results {
		if r.Err != nil {
			fmt.Fprintf(w, "  ✗ %s %s: %v\n", r.Key.Domain, r.Key.Type, r.Err)
			continue
		}
		note := ""
		if r.PreviousMissing {
			note = " (no previous value)"
		}
		fmt.Fprintf(w, "  ✓ %s %s -> %s%s\n", r.Key.Domain, r.Key.Type, r.Current, note)
	}
	fmt.Fprintf(w, "\n%d succeeded, %d failed\n", len(s.Succeeded()), len(s.Failed()))
	if len(s.Failed()) == 0 {
		fmt.Fprintln(w, "Flip operation completed successfully.")
	}
}

// WriteApplications lists application names and their records.
func WriteApplications(w io.Writer, defs *flipconfig.File) {
	fmt.Fprintln(w, "Available applications:")
	for _, app := range defs.Apps {
		fmt.Fprintf(w, "  %s\n", app.Name)
		for _, r := range app.Records {
			fmt.Fprintf(w, "    FQDN: %s\n", r.FQDN)
		}
	}
}
