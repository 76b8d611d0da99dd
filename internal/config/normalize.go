package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeQueue(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeQueue() error {
	c.Queue.Dir = strings.TrimSpace(c.Queue.Dir)
	if c.Queue.Dir != "" {
		expanded, err := expandPath(c.Queue.Dir)
		if err != nil {
			return fmt.Errorf("queue.dir: %w", err)
		}
		trimmed := strings.TrimRight(expanded, "/")
		if trimmed == "" {
			// Keep "/" visible so validation can reject it explicitly.
			trimmed = "/"
		}
		c.Queue.Dir = trimmed
	}

	if strings.TrimSpace(c.Queue.Pattern) == "" {
		c.Queue.Pattern = defaultPattern
	}

	c.Queue.Extension = strings.TrimPrefix(strings.TrimSpace(c.Queue.Extension), ".")

	c.Queue.LockFile = strings.TrimSpace(c.Queue.LockFile)
	if c.Queue.LockFile == "" && c.Queue.Dir != "" {
		c.Queue.LockFile = c.Queue.Dir + ".lock"
	}
	if c.Queue.LockFile != "" {
		expanded, err := expandPath(c.Queue.LockFile)
		if err != nil {
			return fmt.Errorf("queue.lock_file: %w", err)
		}
		c.Queue.LockFile = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
