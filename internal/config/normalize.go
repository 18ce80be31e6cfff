package config

import (
	"fmt"
	"os"
	"strings"

	"filesort/internal/extensions"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeBenchmark()
	c.normalizeLogging()
	c.normalizeExtensions()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir
	}
	if c.Paths.LockDir, err = expandPath(strings.TrimSpace(c.Paths.LockDir)); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeBenchmark() {
	c.Benchmark.DirName = strings.TrimSpace(c.Benchmark.DirName)
	if c.Benchmark.DirName == "" {
		c.Benchmark.DirName = defaultBenchmarkDir
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
	if value, ok := os.LookupEnv("FILESORT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeExtensions() {
	for i := range c.Extensions {
		ext := &c.Extensions[i]
		ext.Extension = extensions.Normalize(ext.Extension)
		ext.Category = strings.TrimSpace(ext.Category)
		ext.AltName = strings.TrimSpace(ext.AltName)
		ext.SortDir = strings.TrimSpace(ext.SortDir)
	}
}
