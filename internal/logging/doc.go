// Package logging assembles structured slog loggers and formatting helpers used
// across filesort.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so sort runs can tag every log
// line with their run ID. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// The application log is diagnostic output only. The per-directory move log
// that users rely on lives in the movelog package.
package logging
