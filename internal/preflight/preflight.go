package preflight

import (
	"errors"
	"fmt"
	"strings"

	"filesort/internal/config"
)

// ErrFailed wraps the details of failed checks.
var ErrFailed = errors.New("preflight check failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the directories named in cfg.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	results = append(results, CheckDirectoryAccess("Lock directory", cfg.Paths.LockDir))
	return results
}

// ForSort checks that input can be sorted into output.
func ForSort(input, output string) []Result {
	return []Result{
		CheckDirectoryAccess("Input directory", input),
		CheckOutputDirectory("Output directory", output),
	}
}

// Err returns nil when every result passed, otherwise an ErrFailed error
// describing each failure.
func Err(results []Result) error {
	var failures []string
	for _, r := range results {
		if !r.Passed {
			failures = append(failures, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFailed, strings.Join(failures, "; "))
}
