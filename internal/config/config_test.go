package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracksort/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("NETEASE_COOKIE", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if !filepath.IsAbs(cfg.Paths.MusicDir) {
		t.Fatalf("music dir not expanded: %q", cfg.Paths.MusicDir)
	}
	wantLogDir := filepath.Join(tempHome, ".local", "share", "tracksort", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Matching.Threshold != 0.68 {
		t.Fatalf("unexpected threshold: %v", cfg.Matching.Threshold)
	}
	if len(cfg.Matching.Extensions) == 0 || cfg.Matching.Extensions[0] != ".flac" {
		t.Fatalf("unexpected extensions: %v", cfg.Matching.Extensions)
	}
	if cfg.Rename.UnmatchedMarker != "（未匹配）" {
		t.Fatalf("unexpected marker: %q", cfg.Rename.UnmatchedMarker)
	}
	if cfg.NetEase.BaseURL != config.Default().NetEase.BaseURL {
		t.Fatalf("unexpected netease base url: %q", cfg.NetEase.BaseURL)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
music_dir = "` + dir + `"
playlist_file = "list.txt"

[matching]
threshold = 0.8
extensions = ["FLAC", ".Mp3", "", ".flac"]

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing config, got exists=%v resolved=%q", exists, resolved)
	}

	if cfg.Matching.Threshold != 0.8 {
		t.Fatalf("threshold = %v, want 0.8", cfg.Matching.Threshold)
	}
	want := []string{".flac", ".mp3"}
	if len(cfg.Matching.Extensions) != len(want) {
		t.Fatalf("extensions = %v, want %v", cfg.Matching.Extensions, want)
	}
	for i := range want {
		if cfg.Matching.Extensions[i] != want[i] {
			t.Fatalf("extensions = %v, want %v", cfg.Matching.Extensions, want)
		}
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if got := cfg.PlaylistPath(); got != filepath.Join(dir, "list.txt") {
		t.Fatalf("PlaylistPath = %q", got)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[matching]\nthreshold = 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "matching.threshold") {
		t.Fatalf("expected threshold validation error, got %v", err)
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected level validation error, got %v", err)
	}
}

func TestNetEaseCookieFromEnv(t *testing.T) {
	t.Setenv("NETEASE_COOKIE", "MUSIC_U=token")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.NetEase.Cookie != "MUSIC_U=token" {
		t.Fatalf("cookie = %q, want env value", cfg.NetEase.Cookie)
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Matching.Threshold != 0.68 {
		t.Fatalf("sample threshold = %v", cfg.Matching.Threshold)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/music")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "music") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
