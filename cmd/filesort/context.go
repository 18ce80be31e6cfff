package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filesort/internal/classify"
	"filesort/internal/config"
	"filesort/internal/extensions"
	"filesort/internal/logging"
	"filesort/internal/organizer"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	noColorFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, noColorFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		noColorFlag:  noColorFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
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
		var override string
		if c.logLevelFlag != nil {
			override = strings.TrimSpace(*c.logLevelFlag)
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, override)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) extensionTable() (*extensions.Table, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ExtensionTable()
}

// newOrganizer wires the configured table, lock directory, and logger into an
// organizer. moveLog forces the per-directory move log on.
func (c *commandContext) newOrganizer(moveLog bool, obs organizer.Observer) (*organizer.Organizer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return c.organizerWith(organizer.Options{
		MoveLog:               moveLog || cfg.Sort.MoveLog,
		OutputRelativeToInput: cfg.Sort.OutputRelativeToInput,
		LockDir:               cfg.Paths.LockDir,
		Observer:              obs,
	})
}

func (c *commandContext) organizerWith(opts organizer.Options) (*organizer.Organizer, error) {
	table, err := c.extensionTable()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return organizer.New(classify.NewResolver(table), opts, logger), nil
}

// runContext tags the command context with a fresh run ID.
func runContext(cmd *cobra.Command) (context.Context, string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	return logging.WithRunID(ctx, runID), runID
}

func nestingLevelFlag(cmd *cobra.Command, flagValue int, cfg *config.Config) (classify.NestingLevel, error) {
	value := cfg.Sort.NestingLevel
	if cmd.Flags().Changed("nesting-level") {
		value = flagValue
	}
	level, err := classify.ParseNestingLevel(value)
	if err != nil {
		return 0, fmt.Errorf("--nesting-level: %w", err)
	}
	return level, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
