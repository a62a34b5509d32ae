// Package rename applies playlist positions to audio filenames in place.
// Matched files gain a zero-padded position prefix; unmatched files gain a
// marker prefix so repeated runs can recognize and skip them.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"tracksort/internal/fileutil"
	"tracksort/internal/match"
	"tracksort/internal/scan"
)

// DefaultUnmatchedMarker is the prefix applied to files that matched no
// playlist entry.
const DefaultUnmatchedMarker = "（未匹配）"

// markerVariants are the marker spellings accepted from earlier runs; a
// filename starting with any of them counts as already marked.
var markerVariants = []string{"(未匹配)", "（未匹配）", "[未匹配]", "（未找到）", "(unmatched)"}

// Action classifies what happened to a single file.
type Action int

const (
	ActionRenamed Action = iota
	ActionAlreadyPrefixed
	ActionMarked
	ActionAlreadyMarked
	ActionUnchanged
	ActionFailed
)

func (a Action) String() string {
	switch a {
	case ActionRenamed:
		return "renamed"
	case ActionAlreadyPrefixed:
		return "already prefixed"
	case ActionMarked:
		return "marked unmatched"
	case ActionAlreadyMarked:
		return "already marked"
	case ActionUnchanged:
		return "unchanged"
	case ActionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileOutcome records the decision for one file.
type FileOutcome struct {
	OriginalName string
	NewName      string
	Action       Action
	Err          error
}

// Result aggregates per-file outcomes with the run counters. A failure on
// one file never aborts the rest of the pass.
type Result struct {
	Outcomes []FileOutcome
	Renamed  int
	Skipped  int
}

func (r *Result) add(o FileOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Action {
	case ActionRenamed, ActionMarked:
		r.Renamed++
	default:
		r.Skipped++
	}
}

// Apply renames matched files to carry their playlist position and unmatched
// files to carry the marker prefix. Matched positions are renumbered to a
// contiguous 1..N sequence in position order before prefixes are built, so
// duplicate or gapped positions from matching never reach the filesystem.
func Apply(matched []match.Result, unmatched []scan.Record, marker string) Result {
	if marker == "" {
		marker = DefaultUnmatchedMarker
	}

	ordered := make([]match.Result, len(matched))
	copy(ordered, matched)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })
	for i := range ordered {
		ordered[i].Position = i + 1
	}

	var res Result
	for _, m := range ordered {
		rec := m.Record
		prefix := fmt.Sprintf("%03d_", m.Position)
		if strings.HasPrefix(rec.OriginalFilename, prefix) {
			res.add(FileOutcome{OriginalName: rec.OriginalFilename, NewName: rec.OriginalFilename, Action: ActionAlreadyPrefixed})
			continue
		}

		position := m.Position
		res.add(renameTo(rec, func(attempt int) string {
			if attempt == 0 {
				return prefix + rec.OriginalFilename
			}
			return fmt.Sprintf("%03d_%d_%s", position, attempt, rec.OriginalFilename)
		}, ActionRenamed))
	}

	for _, rec := range unmatched {
		if hasMarker(rec.OriginalFilename, marker) {
			res.add(FileOutcome{OriginalName: rec.OriginalFilename, NewName: rec.OriginalFilename, Action: ActionAlreadyMarked})
			continue
		}

		name := rec.OriginalFilename
		res.add(renameTo(rec, func(attempt int) string {
			if attempt == 0 {
				return marker + name
			}
			return fmt.Sprintf("%s_%d_%s", marker, attempt, name)
		}, ActionMarked))
	}

	return res
}

func renameTo(rec scan.Record, nameFor func(attempt int) string, ok Action) FileOutcome {
	target, err := fileutil.NextAvailable(filepath.Dir(rec.Path), nameFor)
	if err == nil {
		err = os.Rename(rec.Path, target)
	}
	if err != nil {
		return FileOutcome{OriginalName: rec.OriginalFilename, Action: ActionFailed, Err: err}
	}
	return FileOutcome{OriginalName: rec.OriginalFilename, NewName: filepath.Base(target), Action: ok}
}

// hasMarker recognizes the active marker alongside the legacy variants, so a
// configured marker survives repeated runs without stacking.
func hasMarker(name, marker string) bool {
	if marker != "" && strings.HasPrefix(name, marker) {
		return true
	}
	for _, variant := range markerVariants {
		if strings.HasPrefix(name, variant) {
			return true
		}
	}
	return false
}

var numericPrefixPattern = regexp.MustCompile(`^\d+_`)

// StripName removes the prefixes a previous run may have applied: the
// numeric position prefix, any unmatched marker variant, and a leftover
// leading underscore or hyphen. It returns the name unchanged when no prefix
// is present.
func StripName(name string) string {
	stripped := numericPrefixPattern.ReplaceAllString(name, "")
	for _, variant := range markerVariants {
		stripped = strings.TrimPrefix(stripped, variant)
	}
	stripped = strings.TrimPrefix(stripped, "_")
	stripped = strings.TrimPrefix(stripped, "-")
	return stripped
}

// StripPrefixes walks the audio files in dir (non-recursive) and removes
// position and marker prefixes from their names. Files whose names carry no
// prefix are reported unchanged. A name collision or rename failure is
// recorded per file and the pass continues.
func StripPrefixes(dir string, exts []string) (Result, error) {
	if len(exts) == 0 {
		exts = scan.DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var res Result
	for _, entry := range entries {
		if entry.IsDir() || !scan.HasAudioExtension(entry.Name(), exts) {
			continue
		}

		name := entry.Name()
		stripped := StripName(name)
		if stripped == name {
			res.add(FileOutcome{OriginalName: name, NewName: name, Action: ActionUnchanged})
			continue
		}

		target := filepath.Join(dir, stripped)
		if _, statErr := os.Lstat(target); statErr == nil {
			res.add(FileOutcome{OriginalName: name, Action: ActionFailed, Err: fmt.Errorf("target %s already exists", stripped)})
			continue
		}
		if renameErr := os.Rename(filepath.Join(dir, name), target); renameErr != nil {
			res.add(FileOutcome{OriginalName: name, Action: ActionFailed, Err: renameErr})
			continue
		}
		res.add(FileOutcome{OriginalName: name, NewName: stripped, Action: ActionRenamed})
	}
	return res, nil
}

// Report renders the rename pass as the human-readable report section.
func (r Result) Report() string {
	var b strings.Builder
	for _, o := range r.Outcomes {
		switch o.Action {
		case ActionRenamed, ActionMarked:
			fmt.Fprintf(&b, "  %s: %s -> %s\n", o.Action, o.OriginalName, o.NewName)
		case ActionFailed:
			fmt.Fprintf(&b, "  failed: %s: %v\n", o.OriginalName, o.Err)
		default:
			fmt.Fprintf(&b, "  %s: %s\n", o.Action, o.OriginalName)
		}
	}
	fmt.Fprintf(&b, "Renamed %d files, skipped %d\n", r.Renamed, r.Skipped)
	return b.String()
}
