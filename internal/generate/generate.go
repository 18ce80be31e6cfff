// Package generate creates throwaway files with random known extensions for
// benchmarks and manual testing.
package generate

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"filesort/internal/extensions"
)

// ErrEmptyTable is returned when there are no extensions to draw from.
var ErrEmptyTable = errors.New("extension table is empty")

// Files creates count empty files named 1.<ext> through count.<ext> in dir,
// drawing each extension uniformly from table. A nil rng uses a randomly
// seeded source. Existing files are never overwritten; the first collision
// aborts with an error wrapping os.ErrExist. The created paths are returned
// in creation order, including those created before a failure.
func Files(dir string, count int, table *extensions.Table, rng *rand.Rand) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("file count must not be negative (got %d)", count)
	}
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	created := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		ext := table.At(rng.IntN(table.Len())).Extension
		path := filepath.Join(dir, strconv.Itoa(i)+"."+ext)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return created, fmt.Errorf("create %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return created, fmt.Errorf("close %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
