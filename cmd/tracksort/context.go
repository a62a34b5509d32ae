package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"tracksort/internal/config"
	"tracksort/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runConfig returns a copy of the loaded config with per-invocation overrides
// applied. dir overrides the music directory, playlistFile the playlist path.
func (c *commandContext) runConfig(dir, playlistFile string) (*config.Config, error) {
	base, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	cfg := *base
	if dir = strings.TrimSpace(dir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, err
		}
		cfg.Paths.MusicDir = expanded
	}
	if playlistFile = strings.TrimSpace(playlistFile); playlistFile != "" {
		cfg.Paths.PlaylistFile = playlistFile
	}
	return &cfg, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
