// Package organize runs the end-to-end ordering pipeline: load the playlist,
// scan the music directory, match files to playlist positions, and rename the
// files in place.
package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tracksort/internal/config"
	"tracksort/internal/logging"
	"tracksort/internal/match"
	"tracksort/internal/playlist"
	"tracksort/internal/rename"
	"tracksort/internal/scan"
)

const lockFileName = ".tracksort.lock"

// ErrLocked reports that another run already holds the music directory lock.
var ErrLocked = errors.New("another tracksort run is already in progress")

// Organizer coordinates a single organize or preview run over the configured
// music directory.
type Organizer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs an Organizer. A nil logger falls back to a no-op logger.
func New(cfg *config.Config, logger *slog.Logger) (*Organizer, error) {
	if cfg == nil {
		return nil, errors.New("organize requires config")
	}
	return &Organizer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "organize"),
	}, nil
}

// Summary captures the outcome of one run.
type Summary struct {
	RunID        string
	Dir          string
	PlaylistSize int
	Scanned      int
	// Aborted carries the reason when the run stopped before matching or
	// renaming; empty for completed runs.
	Aborted string
	Match   match.Outcome
	Rename  rename.Result
}

// Run executes the full pipeline and renames files on disk. Only one run may
// operate on a directory at a time; concurrent runs fail with ErrLocked.
func (o *Organizer) Run(ctx context.Context) (*Summary, error) {
	dir := o.cfg.Paths.MusicDir
	lock := flock.New(filepath.Join(dir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			o.logger.Warn("failed to release run lock", logging.Error(unlockErr))
		}
	}()

	summary, err := o.prepare(ctx)
	if err != nil || summary.Aborted != "" {
		return summary, err
	}

	summary.Rename = rename.Apply(summary.Match.Matched, summary.Match.Unmatched, o.cfg.Rename.UnmatchedMarker)
	o.logger.Info("run complete",
		logging.String(logging.FieldRunID, summary.RunID),
		logging.Int("matched", len(summary.Match.Matched)),
		logging.Int("unmatched", len(summary.Match.Unmatched)),
		logging.Int("renamed", summary.Rename.Renamed),
		logging.Int("skipped", summary.Rename.Skipped),
	)
	return summary, nil
}

// Preview executes the pipeline up to matching without touching any file.
func (o *Organizer) Preview(ctx context.Context) (*Summary, error) {
	return o.prepare(ctx)
}

func (o *Organizer) prepare(ctx context.Context) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID: uuid.NewString(),
		Dir:   o.cfg.Paths.MusicDir,
	}
	logger := o.logger.With(logging.String(logging.FieldRunID, summary.RunID))
	logger.Info("run started", logging.String("dir", summary.Dir))

	playlistPath := o.cfg.PlaylistPath()
	entries, err := playlist.Load(playlistPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			summary.Aborted = fmt.Sprintf("playlist file not found: %s", playlistPath)
			logger.Warn("playlist file missing", logging.String("path", playlistPath))
			return summary, nil
		}
		return nil, err
	}
	summary.PlaylistSize = len(entries)

	records, err := scan.Dir(summary.Dir, o.cfg.Matching.Extensions)
	if err != nil {
		return nil, fmt.Errorf("scan music directory: %w", err)
	}
	summary.Scanned = len(records)
	if len(records) == 0 {
		summary.Aborted = "no audio files found"
		logger.Warn("nothing to organize", logging.String("dir", summary.Dir))
		return summary, nil
	}
	if len(entries) == 0 {
		summary.Aborted = "playlist has no usable titles"
		logger.Warn("empty playlist", logging.String("path", playlistPath))
		return summary, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary.Match = match.All(records, entries, o.cfg.Matching.Threshold)
	logger.Info("matching complete",
		logging.Int("playlist", summary.PlaylistSize),
		logging.Int("scanned", summary.Scanned),
		logging.Int("matched", len(summary.Match.Matched)),
	)
	return summary, nil
}

// Report renders the run as a human-readable block.
func (s *Summary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Directory: %s\n", s.Dir)
	if s.Aborted != "" {
		fmt.Fprintf(&b, "Aborted: %s\n", s.Aborted)
		return b.String()
	}
	fmt.Fprintf(&b, "Playlist entries: %d\n", s.PlaylistSize)
	b.WriteString(s.Match.Report())
	if len(s.Rename.Outcomes) > 0 {
		b.WriteString(s.Rename.Report())
	}
	return b.String()
}
