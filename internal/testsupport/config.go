package testsupport

import (
	"path/filepath"
	"testing"

	"filesort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Log and lock directories live under one temp root that BaseDir returns.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")
	cfgVal.Benchmark.Files = 50

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithNestingLevel overrides sort.nesting_level.
func WithNestingLevel(level int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sort.NestingLevel = level
	}
}

// WithMoveLog enables the per-directory move log.
func WithMoveLog() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sort.MoveLog = true
	}
}

// WithExtensions appends custom extension records.
func WithExtensions(exts ...config.Extension) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Extensions = append(b.cfg.Extensions, exts...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
