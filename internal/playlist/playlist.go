// Package playlist loads and writes the ordered track list that scanned
// audio files are matched against. Entries are stored in normalized form so
// matching never re-normalizes the playlist side.
package playlist

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"tracksort/internal/textutil"
)

var (
	numberedPattern = regexp.MustCompile(`^\s*\d+\.\s*(.+)`)
	bulletPattern   = regexp.MustCompile(`^\s*-\s*`)
)

// Load reads the playlist file at path and returns its normalized,
// de-duplicated titles in file order.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// Parse extracts titles from playlist content. Each non-blank line may be
// numbered ("12. Title"), bulleted ("- Title"), or a bare title. Titles are
// normalized and de-duplicated keeping the first occurrence, so the returned
// slice preserves playlist order with each title's earliest position. Invalid
// UTF-8 is replaced rather than rejected.
func Parse(content string) []string {
	content = strings.ToValidUTF8(content, "�")

	seen := make(map[string]struct{})
	var titles []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var title string
		switch {
		case numberedPattern.MatchString(line):
			title = numberedPattern.FindStringSubmatch(line)[1]
		case bulletPattern.MatchString(line):
			title = bulletPattern.ReplaceAllString(line, "")
		default:
			title = line
		}

		norm := textutil.Normalize(title)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		titles = append(titles, norm)
	}
	return titles
}

// Write stores titles at path as numbered lines, one per title.
func Write(path string, titles []string) error {
	var b strings.Builder
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	return nil
}
