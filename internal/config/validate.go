package config

import (
	"errors"
	"fmt"

	"filesort/internal/classify"
	"filesort/internal/fileutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSort(); err != nil {
		return err
	}
	if err := c.validateBenchmark(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateExtensions(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSort() error {
	if _, err := classify.ParseNestingLevel(c.Sort.NestingLevel); err != nil {
		return fmt.Errorf("sort.nesting_level: %w", err)
	}
	return nil
}

func (c *Config) validateBenchmark() error {
	if c.Benchmark.Files <= 0 {
		return errors.New("benchmark.files must be positive")
	}
	if err := fileutil.ValidateChildName(c.Benchmark.DirName); err != nil {
		return fmt.Errorf("benchmark.dir_name: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
}

func (c *Config) validateExtensions() error {
	if _, err := c.ExtensionTable(); err != nil {
		return err
	}
	return nil
}
