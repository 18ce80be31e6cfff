package classify

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"filesort/internal/extensions"
)

// Other is the bucket for extensions absent from the table.
const Other = "other"

// NestingLevel is the number of directory segments a resolved path may use.
type NestingLevel int

const (
	LevelCategory  NestingLevel = 1
	LevelSubdir    NestingLevel = 2
	LevelAltSubdir NestingLevel = 3
)

// MinNestingLevel and MaxNestingLevel bound valid nesting levels.
const (
	MinNestingLevel = LevelCategory
	MaxNestingLevel = LevelAltSubdir
)

// ErrInvalidNestingLevel reports user input outside 1..3.
var ErrInvalidNestingLevel = errors.New("nesting level must be 1, 2, or 3")

// Valid reports whether l is within range.
func (l NestingLevel) Valid() bool {
	return l >= MinNestingLevel && l <= MaxNestingLevel
}

// ParseNestingLevel validates a user-supplied nesting level.
func ParseNestingLevel(value int) (NestingLevel, error) {
	level := NestingLevel(value)
	if !level.Valid() {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidNestingLevel, value)
	}
	return level, nil
}

// Resolver maps extensions to relative destination directories.
type Resolver struct {
	table *extensions.Table
}

// NewResolver returns a resolver over table. A nil table resolves every
// extension to Other.
func NewResolver(table *extensions.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the slash-separated relative directory for ext. ext must
// already be normalized; see extensions.Normalize. Resolve panics when level
// is outside 1..3.
func (r *Resolver) Resolve(ext string, level NestingLevel, useAlt bool) string {
	return Resolve(r.table, ext, level, useAlt)
}

// ResolvePath is Resolve using the operating system's path separator.
func (r *Resolver) ResolvePath(ext string, level NestingLevel, useAlt bool) string {
	return filepath.FromSlash(r.Resolve(ext, level, useAlt))
}

// Resolve is the table-explicit form of (*Resolver).Resolve.
//
// Levels 2 and 3 produce the same two-segment path when useAlt is false.
func Resolve(table *extensions.Table, ext string, level NestingLevel, useAlt bool) string {
	if !level.Valid() {
		panic(fmt.Sprintf("classify: nesting level %d out of range [%d,%d]", level, MinNestingLevel, MaxNestingLevel))
	}

	rec, ok := table.Lookup(ext)
	if !ok {
		return Other
	}

	// sort dir, else the extension itself
	leaf := ext
	if rec.HasSortDir() {
		leaf = rec.SortDir
	}

	switch {
	case level == LevelCategory:
		return rec.Category
	case !useAlt:
		return path.Join(rec.Category, leaf)
	case level == LevelSubdir:
		if rec.HasAltName() {
			return path.Join(rec.Category, rec.AltName)
		}
		return path.Join(rec.Category, leaf)
	default:
		if rec.HasAltName() {
			return path.Join(rec.Category, rec.AltName, leaf)
		}
		return path.Join(rec.Category, leaf)
	}
}

// Category returns the first segment of a resolved path.
func Category(resolved string) string {
	category, _, _ := strings.Cut(resolved, "/")
	return category
}
