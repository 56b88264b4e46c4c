package flipconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/catalystcommunity/flipper/v1/internal/record"
)

// Load reads and parses a definition file from the given path
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: flip definition file is required", record.ErrConfig)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: flip definition file not found: %s", record.ErrConfig, path)
		}
		return nil, fmt.Errorf("%w: failed to open flip definition file %s: %v", record.ErrConfig, path, err)
	}
	defer file.Close()

	defs, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse reads a definition file. Repeated sections for the same application
// are merged in file order.
func Parse(r io.Reader) (*File, error) {
	defs := NewFile()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	var (
		app     string
		current *Record
		hasPri  bool
		hasSec  bool
	)

	flush := func() {
		defs.Add(app, *current)
		current = nil
		hasPri, hasSec = false, false
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if current != nil {
				return nil, parseError(lineNum, "record %s is missing its primary or secondary values", current.FQDN)
			}
			app = strings.TrimSpace(line[1 : len(line)-1])
			if app == "" {
				return nil, parseError(lineNum, "empty application name")
			}
			defs.Add(app)
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, parseError(lineNum, "expected key: value, got: %s", line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if app == "" {
			return nil, parseError(lineNum, "%s appears before any [application] header", key)
		}

		switch key {
		case "fqdn":
			if current != nil {
				return nil, parseError(lineNum, "record %s is missing its primary or secondary values", current.FQDN)
			}
			fields := strings.Fields(value)
			if len(fields) < 2 || len(fields) > 3 {
				return nil, parseError(lineNum, "expected fqdn: <fqdn> <record_type> [zone], got: %s", line)
			}
			current = &Record{
				FQDN: record.NormalizeName(fields[0]),
				Type: record.NormalizeType(fields[1]),
			}
			if len(fields) == 3 {
				current.Zone = record.NormalizeName(fields[2])
			}
			if err := record.ValidateName(current.FQDN); err != nil {
				return nil, parseError(lineNum, "%v", err)
			}
			if err := record.ValidateType(current.Type); err != nil {
				return nil, parseError(lineNum, "%v", err)
			}

		case "primary", "secondary":
			if current == nil {
				return nil, parseError(lineNum, "%s appears before fqdn", key)
			}
			values := splitValues(value)
			if len(values) == 0 {
				return nil, parseError(lineNum, "%s has no values", key)
			}
			if key == "primary" {
				if hasPri {
					return nil, parseError(lineNum, "duplicate primary for %s", current.FQDN)
				}
				current.Primary, hasPri = values, true
			} else {
				if hasSec {
					return nil, parseError(lineNum, "duplicate secondary for %s", current.FQDN)
				}
				current.Secondary, hasSec = values, true
			}
			if hasPri && hasSec {
				flush()
			}

		default:
			return nil, parseError(lineNum, "unknown key %q", key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading flip definitions: %v", record.ErrConfig, err)
	}
	if current != nil {
		return nil, parseError(lineNum, "record %s is missing its primary or secondary values", current.FQDN)
	}

	return defs, nil
}

func splitValues(s string) record.Values {
	var values record.Values
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseError(lineNum int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: invalid flip definition at line %d: %s", record.ErrConfig, lineNum, fmt.Sprintf(format, args...))
}
