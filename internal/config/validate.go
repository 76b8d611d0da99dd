package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. The queue directory may be
// empty here: commands can supply it with --dir, and the queue engine rejects
// unconfigured directories on first use.
func (c *Config) Validate() error {
	if err := c.validateQueue(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateQueue() error {
	if c.Queue.Dir != "" && len(c.Queue.Dir) <= 1 {
		return errors.New("queue.dir must not be the filesystem root")
	}
	if !strings.Contains(c.Queue.Pattern, "%") {
		return fmt.Errorf("queue.pattern %q has no conversion verb", c.Queue.Pattern)
	}
	if strings.Contains(c.Queue.Extension, "/") {
		return fmt.Errorf("queue.extension %q must not contain path separators", c.Queue.Extension)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	return nil
}
