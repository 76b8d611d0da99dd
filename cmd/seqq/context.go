package main

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"seqq/internal/config"
	"seqq/internal/logging"
	"seqq/internal/seqfile"
)

type commandContext struct {
	configFlag *string
	dirFlag    *string
	jsonFlag   *bool

	initOnce sync.Once
	config   *config.Config
	logger   *slog.Logger
	registry *seqfile.Registry
	initErr  error
}

func newCommandContext(configFlag, dirFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dirFlag:    dirFlag,
		jsonFlag:   jsonFlag,
		registry:   seqfile.NewRegistry(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.initOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.initErr = err
			return
		}

		if c.dirFlag != nil && strings.TrimSpace(*c.dirFlag) != "" {
			expanded, err := config.ExpandPath(strings.TrimSpace(*c.dirFlag))
			if err != nil {
				c.initErr = err
				return
			}
			cfg.Queue.Dir = strings.TrimRight(expanded, "/")
			if strings.TrimSpace(cfg.Queue.LockFile) == "" {
				cfg.Queue.LockFile = cfg.Queue.Dir + ".lock"
			}
		}

		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.initErr = err
			return
		}

		c.config = cfg
		c.logger = logger
	})
	return c.config, c.initErr
}

// queue returns the shared queue instance for the configured directory.
func (c *commandContext) queue() (*seqfile.Queue, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Queue.Dir == "" {
		return nil, errors.New("queue directory not set; pass --dir or set queue.dir in the config")
	}
	return c.registry.Instance(
		cfg.Queue.Dir,
		seqfile.WithPattern(cfg.Queue.Pattern),
		seqfile.WithExtension(cfg.Queue.Extension),
		seqfile.WithLogger(logging.NewComponentLogger(c.logger, "seqfile")),
	)
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}
