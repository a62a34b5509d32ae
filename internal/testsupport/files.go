package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteAudio creates a small placeholder audio file named name inside dir,
// creating dir as needed, and returns its full path.
func WriteAudio(t testing.TB, dir, name string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WritePlaylist writes a playlist file with one title per line and returns
// its path.
func WritePlaylist(t testing.TB, path string, titles ...string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var b strings.Builder
	for i, title := range titles {
		b.WriteString(strings.TrimSpace(title))
		if i < len(titles)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
