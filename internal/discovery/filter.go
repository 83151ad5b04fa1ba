package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test case files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test case files by name pattern using wildcard matching.
// Supports patterns like "*login*" or "signin.test.json"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Flexible fallback for patterns like "*login*": every non-empty
			// segment between wildcards must appear in the name.
			parts := strings.Split(pattern, "*")
			match := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				match = true
				if !strings.Contains(name, part) {
					match = false
					break
				}
			}
			if match {
				filtered = append(filtered, file)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}
