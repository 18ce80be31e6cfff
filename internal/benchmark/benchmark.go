// Package benchmark times a full generate-and-sort cycle in an empty
// directory.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"filesort/internal/classify"
	"filesort/internal/extensions"
	"filesort/internal/fileutil"
	"filesort/internal/generate"
	"filesort/internal/logging"
	"filesort/internal/organizer"
)

const (
	// DefaultFiles is the number of files generated when Options.Files is zero.
	DefaultFiles = 10000
	// DefaultOutputName is the sort destination created inside Options.Dir.
	DefaultOutputName = "benchmark"
)

// ErrDirectoryNotEmpty marks a benchmark that refused to run.
var ErrDirectoryNotEmpty = errors.New("benchmark must run in an empty directory")

// Options configures a benchmark run.
type Options struct {
	Dir        string
	Files      int
	OutputName string
	Organizer  *organizer.Organizer
	Table      *extensions.Table
	Rand       *rand.Rand
	Logger     *slog.Logger
}

// Result reports a benchmark run. A skipped run has zero Duration and its
// Reason wraps ErrDirectoryNotEmpty.
type Result struct {
	Skipped  bool              `json:"skipped"`
	Reason   error             `json:"-"`
	Dir      string            `json:"dir"`
	Files    int               `json:"files"`
	Duration time.Duration     `json:"duration_ns"`
	Summary  organizer.Summary `json:"-"`
}

// Run generates Files files in Dir, sorts them into Dir/OutputName at the
// deepest nesting level without alternate names, and removes the sorted tree
// again. The measured duration covers generation and sorting.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Files <= 0 {
		opts.Files = DefaultFiles
	}
	if opts.OutputName == "" {
		opts.OutputName = DefaultOutputName
	}
	if err := fileutil.ValidateChildName(opts.OutputName); err != nil {
		return Result{Dir: opts.Dir}, fmt.Errorf("benchmark output name: %w", err)
	}
	if opts.Table == nil {
		opts.Table = extensions.Default()
	}
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "benchmark"))
	if opts.Organizer == nil {
		opts.Organizer = organizer.New(classify.NewResolver(opts.Table), organizer.Options{}, opts.Logger)
	}

	result := Result{Dir: opts.Dir}
	if err := fileutil.EnsureDir(opts.Dir); err != nil {
		return result, err
	}
	empty, err := fileutil.IsDirEmpty(opts.Dir)
	if err != nil {
		return result, err
	}
	if !empty {
		result.Skipped = true
		result.Reason = fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, opts.Dir)
		logger.Warn("benchmark skipped", logging.Args(logging.Error(result.Reason))...)
		return result, nil
	}

	output := filepath.Join(opts.Dir, opts.OutputName)
	started := time.Now()

	paths, err := generate.Files(opts.Dir, opts.Files, opts.Table, opts.Rand)
	if err != nil {
		return result, fmt.Errorf("generate files: %w", err)
	}
	result.Files = len(paths)

	summary, err := opts.Organizer.Sort(ctx, organizer.Request{
		InputDir:  opts.Dir,
		OutputDir: output,
		Level:     classify.LevelAltSubdir,
		UseAlt:    false,
	})
	result.Duration = time.Since(started)
	result.Summary = summary
	if err != nil {
		return result, fmt.Errorf("sort generated files: %w", err)
	}

	if !fileutil.IsDirectChild(opts.Dir, output) {
		return result, fmt.Errorf("refusing to remove %s: not inside %s", output, opts.Dir)
	}
	if err := os.RemoveAll(output); err != nil {
		return result, fmt.Errorf("remove %s: %w", output, err)
	}
	logger.Info("benchmark finished",
		logging.Args(
			logging.Int("files", result.Files),
			logging.Duration("elapsed", result.Duration),
		)...)
	return result, nil
}
