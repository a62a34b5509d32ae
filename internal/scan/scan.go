package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"tracksort/internal/textutil"
)

// DefaultExtensions lists the recognized audio file extensions.
var DefaultExtensions = []string{".flac", ".mp3", ".m4a", ".wav", ".ogg", ".fla"}

// Record describes one scanned audio file. Records are built once per run
// from a directory snapshot and never mutated afterwards.
type Record struct {
	Path             string
	OriginalFilename string
	DisplayTitle     string // filename without extension
	CleanTitle       string // normalized, artist-stripped candidate title
	Artist           string // best-effort, may be empty
}

var (
	leadingIndexPattern = regexp.MustCompile(`^\d+\s*[-_.]?\s*`)
	notFoundPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\(\s*Not Found\s*\)`),
		regexp.MustCompile(`（\s*未找到\s*）`),
		regexp.MustCompile(`(?i)\s*\[Not Matched\]`),
	}

	// artistTitlePatterns split a cleaned filename into artist and title,
	// tried in order; the first pattern yielding a non-empty title wins.
	artistTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(.*?)\s*[-~–—]{1,3}\s*(.*?)$`),
		regexp.MustCompile(`(?i)^(.*?)\s*[(（]\s*(.*?)\s*[)）]$`),
		regexp.MustCompile(`(?i)^(.*?)\s{2,}(.*?)$`),
		regexp.MustCompile(`(?i)^(.*?)\s*by\s*(.*?)$`),
		regexp.MustCompile(`(?i)^(.*?)\s*-\s*(.*?)$`),
	}
)

// ReadRecord derives a Record from a single audio file path. The filename is
// stripped of leading index numbers and unmatched markers before the
// artist/title split, and the resulting title is normalized into CleanTitle.
func ReadRecord(path string) Record {
	filename := filepath.Base(path)
	display := strings.TrimSuffix(filename, filepath.Ext(filename))

	cleaned := leadingIndexPattern.ReplaceAllString(display, "")
	for _, pattern := range notFoundPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	title, artist := cleaned, ""
	for _, pattern := range artistTitlePatterns {
		groups := pattern.FindStringSubmatch(cleaned)
		if len(groups) >= 3 && groups[2] != "" {
			title = strings.TrimSpace(groups[2])
			artist = strings.TrimSpace(groups[1])
			break
		}
	}

	return Record{
		Path:             path,
		OriginalFilename: filename,
		DisplayTitle:     display,
		CleanTitle:       textutil.Normalize(title),
		Artist:           artist,
	}
}

// Dir lists the audio files in dir (non-recursive) and builds a Record for
// each. Files whose extension is not in exts are ignored entirely; exts is
// matched case-insensitively. The returned records preserve directory
// listing order.
func Dir(dir string, exts []string) ([]Record, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !HasAudioExtension(entry.Name(), exts) {
			continue
		}
		records = append(records, ReadRecord(filepath.Join(dir, entry.Name())))
	}
	return records, nil
}

// HasAudioExtension reports whether name carries one of the recognized audio
// extensions, compared case-insensitively.
func HasAudioExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range exts {
		if ext == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
