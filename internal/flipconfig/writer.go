package flipconfig

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Write serializes defs in the format Parse reads. Names and types are
// written normalized. Values containing commas, line breaks or surrounding
// whitespace, and record fields that contain whitespace or fail validation,
// are rejected.
func Write(w io.Writer, defs *File) error {
	bw := bufio.NewWriter(w)

	for i, app := range defs.Apps {
		if strings.ContainsAny(app.Name, "[]\n") || strings.TrimSpace(app.Name) != app.Name || app.Name == "" {
			return fmt.Errorf("%w: application name %q cannot be written", record.ErrValidation, app.Name)
		}
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "[%s]\n", app.Name)

		for _, rec := range app.Records {
			primary, err := joinValues(rec.Primary)
			if err != nil {
				return fmt.Errorf("%s primary: %w", rec.FQDN, err)
			}
			secondary, err := joinValues(rec.Secondary)
			if err != nil {
				return fmt.Errorf("%s secondary: %w", rec.FQDN, err)
			}

			line, err := fqdnLine(rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(bw, line)
			fmt.Fprintf(bw, "primary: %s\n", primary)
			fmt.Fprintf(bw, "secondary: %s\n", secondary)
		}
	}

	return bw.Flush()
}

// fqdnLine renders the fqdn entry in the normalized form Parse produces.
func fqdnLine(rec Record) (string, error) {
	for _, field := range []string{rec.FQDN, rec.Type, rec.Zone} {
		if strings.ContainsAny(field, " \t\r\n") {
			return "", fmt.Errorf("%w: field %q of %s cannot be written", record.ErrValidation, field, rec.FQDN)
		}
	}

	fqdn := record.NormalizeName(rec.FQDN)
	if err := record.ValidateName(fqdn); err != nil {
		return "", err
	}
	recordType := record.NormalizeType(rec.Type)
	if err := record.ValidateType(recordType); err != nil {
		return "", fmt.Errorf("%s: %w", fqdn, err)
	}
	if rec.Zone == "" {
		return fmt.Sprintf("fqdn: %s %s", fqdn, recordType), nil
	}

	zone := record.NormalizeName(rec.Zone)
	if err := record.ValidateName(zone); err != nil {
		return "", fmt.Errorf("%s zone: %w", fqdn, err)
	}
	return fmt.Sprintf("fqdn: %s %s %s", fqdn, recordType, zone), nil
}

func joinValues(values record.Values) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("%w: no values", record.ErrValidation)
	}
	for _, v := range values {
		if v == "" || strings.ContainsAny(v, ",\r\n") || strings.TrimSpace(v) != v {
			return "", fmt.Errorf("%w: value %q cannot be written", record.ErrValidation, v)
		}
	}
	return strings.Join(values, ","), nil
}
