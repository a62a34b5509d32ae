// Package fileutil provides filename allocation helpers for the rename
// pipeline.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// NextAvailable returns the first path under dir whose name, produced by
// nameFor, does not already exist on disk. Attempt 0 asks nameFor for the
// preferred name; later attempts ask for disambiguated variants.
func NextAvailable(dir string, nameFor func(attempt int) string) (string, error) {
	const maxAttempts = 10000
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := filepath.Join(dir, nameFor(attempt))
		_, err := os.Lstat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("no available filename in %s after %d attempts", dir, maxAttempts)
}
