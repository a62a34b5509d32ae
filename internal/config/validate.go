package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateNetEase(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		return errors.New("paths.music_dir must be set")
	}
	if strings.TrimSpace(c.Paths.PlaylistFile) == "" {
		return errors.New("paths.playlist_file must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Threshold <= 0 || c.Matching.Threshold > 1 {
		return errors.New("matching.threshold must be between 0 and 1")
	}
	if len(c.Matching.Extensions) == 0 {
		return errors.New("matching.extensions must list at least one extension")
	}
	for _, ext := range c.Matching.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("matching.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}

func (c *Config) validateRename() error {
	if strings.TrimSpace(c.Rename.UnmatchedMarker) == "" {
		return errors.New("rename.unmatched_marker must be set")
	}
	return nil
}

func (c *Config) validateNetEase() error {
	if strings.TrimSpace(c.NetEase.BaseURL) == "" {
		return errors.New("netease.base_url must be set")
	}
	if c.NetEase.RequestTimeout <= 0 {
		return errors.New("netease.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
