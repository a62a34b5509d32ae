package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeRename()
	c.normalizeNetEase()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		c.Paths.MusicDir = defaultMusicDir
	}
	if c.Paths.MusicDir, err = expandPath(c.Paths.MusicDir); err != nil {
		return fmt.Errorf("paths.music_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.PlaylistFile) == "" {
		c.Paths.PlaylistFile = defaultPlaylistFile
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.Threshold == 0 {
		c.Matching.Threshold = defaultMatchThreshold
	}
	if len(c.Matching.Extensions) == 0 {
		c.Matching.Extensions = defaultExtensions()
		return
	}
	exts := make([]string, 0, len(c.Matching.Extensions))
	seen := make(map[string]struct{}, len(c.Matching.Extensions))
	for _, ext := range c.Matching.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = defaultExtensions()
	}
	c.Matching.Extensions = exts
}

func (c *Config) normalizeRename() {
	if strings.TrimSpace(c.Rename.UnmatchedMarker) == "" {
		c.Rename.UnmatchedMarker = defaultUnmatchedMarker
	}
}

func (c *Config) normalizeNetEase() {
	c.NetEase.BaseURL = strings.TrimSpace(c.NetEase.BaseURL)
	if c.NetEase.BaseURL == "" {
		c.NetEase.BaseURL = defaultNetEaseBaseURL
	}
	c.NetEase.Cookie = strings.TrimSpace(c.NetEase.Cookie)
	if c.NetEase.Cookie == "" {
		if value, ok := os.LookupEnv("NETEASE_COOKIE"); ok {
			c.NetEase.Cookie = strings.TrimSpace(value)
		}
	}
	if c.NetEase.RequestTimeout <= 0 {
		c.NetEase.RequestTimeout = defaultNetEaseRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
