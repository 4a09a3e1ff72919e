package domain

import "strings"

// ParseFailedSpecs splits a newline-delimited failed-specs record into spec paths.
// Blank lines are dropped, so an empty file (or a single empty line) yields no specs.
func ParseFailedSpecs(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	specs := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		specs = append(specs, line)
	}
	return specs
}

// FormatFailedSpecs renders specs in the failed-specs record format.
func FormatFailedSpecs(specs []string) string {
	return strings.Join(specs, "\n")
}
