package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"filesort/internal/classify"
	"filesort/internal/dirlock"
	"filesort/internal/fileutil"
	"filesort/internal/logging"
	"filesort/internal/movelog"
	"filesort/internal/preflight"
)

// ErrEmptyExtension is returned by CustomSort when no extension is given.
var ErrEmptyExtension = errors.New("custom sort requires a non-empty extension")

// Options configures an Organizer.
type Options struct {
	// MoveLog appends every move to <input>/sorter-logs/sorter.log.
	MoveLog bool
	// OutputRelativeToInput joins a relative output directory onto the
	// input directory instead of the working directory.
	OutputRelativeToInput bool
	// LockDir holds per-input advisory locks. Empty disables locking.
	LockDir string
	// Observer receives progress events. Nil means NopObserver.
	Observer Observer
}

// Request describes one category sort.
type Request struct {
	InputDir  string
	OutputDir string
	Level     classify.NestingLevel
	UseAlt    bool
}

// CustomRequest describes one single-extension sort.
type CustomRequest struct {
	InputDir  string
	OutputDir string
	Extension string
}

// Organizer moves files from an input directory into resolved destinations.
type Organizer struct {
	resolver *classify.Resolver
	opts     Options
	logger   *slog.Logger
}

// New constructs an organizer.
func New(resolver *classify.Resolver, opts Options, logger *slog.Logger) *Organizer {
	if resolver == nil {
		resolver = classify.NewResolver(nil)
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	return &Organizer{
		resolver: resolver,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "organizer"),
	}
}

// WithObserver returns a copy of o that reports to obs.
func (o *Organizer) WithObserver(obs Observer) *Organizer {
	clone := *o
	if obs == nil {
		obs = NopObserver{}
	}
	clone.opts.Observer = obs
	return &clone
}

// candidate is a top-level file selected for moving.
type candidate struct {
	name string
	ext  string
}

// destinationFunc maps a candidate to its destination directory relative to
// the output directory (slash separated) and the category it is counted under.
type destinationFunc func(c candidate) (resolved, category string)

// Sort moves every top-level file of req.InputDir that has an extension into
// the directory its extension resolves to under req.OutputDir.
func (o *Organizer) Sort(ctx context.Context, req Request) (Summary, error) {
	if !req.Level.Valid() {
		return Summary{}, fmt.Errorf("sort %s: %w (got %d)", req.InputDir, classify.ErrInvalidNestingLevel, int(req.Level))
	}
	logger := logging.WithContext(ctx, o.logger).With(
		logging.Int("nesting_level", int(req.Level)),
		logging.Bool("use_alt", req.UseAlt),
	)

	include := func(string) bool { return true }
	dest := func(c candidate) (string, string) {
		resolved := o.resolver.Resolve(strings.ToLower(c.ext), req.Level, req.UseAlt)
		return resolved, classify.Category(resolved)
	}
	return o.run(ctx, logger, req.InputDir, req.OutputDir, include, dest)
}

// CustomSort moves every top-level file whose extension equals ext exactly
// into outputDir without any category nesting. A leading dot on ext is
// ignored and comparison is case-sensitive.
func (o *Organizer) CustomSort(ctx context.Context, req CustomRequest) (Summary, error) {
	ext := strings.TrimPrefix(strings.TrimSpace(req.Extension), ".")
	if ext == "" {
		return Summary{}, ErrEmptyExtension
	}
	logger := logging.WithContext(ctx, o.logger).With(logging.String("extension", ext))

	include := func(e string) bool { return e == ext }
	dest := func(candidate) (string, string) { return "", ext }
	return o.run(ctx, logger, req.InputDir, req.OutputDir, include, dest)
}

func (o *Organizer) run(
	ctx context.Context,
	logger *slog.Logger,
	inputDir, outputDir string,
	include func(ext string) bool,
	dest destinationFunc,
) (summary Summary, err error) {
	started := time.Now()
	observer := o.opts.Observer

	if strings.TrimSpace(inputDir) == "" {
		return Summary{}, errors.New("input directory is required")
	}
	outputDir = o.outputDir(inputDir, outputDir)
	summary = Summary{InputDir: inputDir, OutputDir: outputDir, ByCategory: map[string]int{}}

	defer func() {
		summary.Duration = time.Since(started)
		observer.OnFinish(summary, err)
	}()

	if err := preflight.Err(preflight.ForSort(inputDir, outputDir)); err != nil {
		return summary, err
	}

	if o.opts.LockDir != "" {
		lock, err := dirlock.Acquire(o.opts.LockDir, inputDir)
		if err != nil {
			return summary, err
		}
		defer func() {
			if relErr := lock.Release(); relErr != nil {
				logger.Warn("release directory lock", logging.Args(logging.Error(relErr))...)
			}
		}()
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return summary, fmt.Errorf("read input directory %s: %w", inputDir, err)
	}

	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			summary.Ignored++
			continue
		}
		ext, ok := Extension(entry.Name())
		if !ok || !include(ext) {
			summary.Ignored++
			continue
		}
		candidates = append(candidates, candidate{name: entry.Name(), ext: ext})
	}
	summary.Candidates = len(candidates)
	observer.OnStart(len(candidates))
	logger.Info("sort started",
		logging.Args(
			logging.String(logging.FieldEventType, "sort_started"),
			logging.String(logging.FieldSource, inputDir),
			logging.String(logging.FieldDestination, outputDir),
			logging.Int("candidates", len(candidates)),
			logging.Int("ignored", summary.Ignored),
		)...)

	var mlog *movelog.Writer
	defer func() {
		if mlog == nil {
			return
		}
		if closeErr := mlog.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		resolved, category := dest(c)
		dstDir := filepath.Join(outputDir, filepath.FromSlash(resolved))
		src := filepath.Join(inputDir, c.name)
		dst := filepath.Join(dstDir, c.name)

		if fileutil.SamePath(src, dst) {
			summary.Skipped++
			observer.OnSkip(src)
			logger.Debug("already in place", logging.Args(logging.String(logging.FieldSource, src))...)
			continue
		}

		if err := fileutil.EnsureDir(dstDir); err != nil {
			return summary, err
		}
		if err := fileutil.MoveNoReplace(src, dst); err != nil {
			return summary, err
		}

		if o.opts.MoveLog {
			if mlog == nil {
				if mlog, err = movelog.Open(inputDir); err != nil {
					return summary, err
				}
				summary.MoveLogPath = mlog.Path()
			}
			if err := mlog.Record(src, dstDir); err != nil {
				return summary, err
			}
		}

		move := Move{Source: src, Destination: dst, Dir: dstDir, Resolved: resolved, Category: category}
		summary.record(move)
		observer.OnMove(move)
		logger.Debug("moved file",
			logging.Args(
				logging.String(logging.FieldSource, src),
				logging.String(logging.FieldDestination, dstDir),
				logging.String(logging.FieldCategory, category),
			)...)
	}

	logger.Info("sort finished",
		logging.Args(
			logging.String(logging.FieldEventType, "sort_finished"),
			logging.Int("moved", summary.Moved),
			logging.Int("skipped", summary.Skipped),
			logging.Int("ignored", summary.Ignored),
			logging.Duration("elapsed", time.Since(started)),
		)...)
	return summary, nil
}

func (o *Organizer) outputDir(inputDir, outputDir string) string {
	outputDir = strings.TrimSpace(outputDir)
	if outputDir == "" {
		return inputDir
	}
	if o.opts.OutputRelativeToInput && !filepath.IsAbs(outputDir) {
		return filepath.Join(inputDir, outputDir)
	}
	return outputDir
}

// Extension returns the text after the last dot of a file name. Names with
// no dot, a dot only in leading position (".bashrc"), or a trailing dot
// ("name.") have no extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}
