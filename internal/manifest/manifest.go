package manifest

import (
	"fmt"
	"strings"
)

// Record is one manifest entry: the OS name and version of a supported
// base image, in file order.
type Record struct {
	OS      string
	Version string
}

// Parse turns raw manifest text into its ordered records. Each line is
// trimmed of surrounding whitespace; whitespace-only lines carry no record
// and are skipped. Every remaining line must contain a ':' separating the
// OS name from the version. Only the first ':' splits, so a version may
// itself contain colons.
func Parse(content string) ([]Record, error) {
	var records []Record
	for n, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		osName, version, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: %q is not an <os>:<version> pair", n+1, line)
		}
		records = append(records, Record{OS: osName, Version: version})
	}
	return records, nil
}
