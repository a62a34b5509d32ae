// Package testsupport provides shared helpers for package tests: canned
// configurations and music directory fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"tracksort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.MusicDir = filepath.Join(base, "music")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithThreshold overrides the matching threshold on the test config.
func WithThreshold(threshold float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.Threshold = threshold
	}
}

// WithUnmatchedMarker overrides the rename marker on the test config.
func WithUnmatchedMarker(marker string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rename.UnmatchedMarker = marker
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.MusicDir)
}
