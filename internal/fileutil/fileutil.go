package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// renameFunc is swapped in tests to simulate rename failures.
var renameFunc = os.Rename

// ErrDestinationExists is returned by MoveNoReplace when dst is occupied.
var ErrDestinationExists = errors.New("destination already exists")

// ErrInvalidChildName is returned by ValidateChildName.
var ErrInvalidChildName = errors.New("not a single path element")

// CrossDeviceError marks a rename that failed because src and dst live on
// different filesystems. Files are never copied across devices.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("move %q to %q crosses filesystems; keep input and output on the same device: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a CrossDeviceError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// MoveNoReplace renames src to dst, refusing to replace an existing dst.
func MoveNoReplace(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}
	return Rename(src, dst)
}

// Rename wraps os.Rename, surfacing EXDEV as a CrossDeviceError.
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if errors.Is(err, unix.EXDEV) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

// IsDirEmpty reports whether dir has no entries. It reads at most one entry.
func IsDirEmpty(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

// SamePath reports whether a and b name the same file on disk. Missing files
// are never the same.
func SamePath(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// ValidateChildName checks that name, joined onto a directory, stays a direct
// child of it.
func ValidateChildName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidChildName, name)
	}
	return nil
}

// IsDirectChild reports whether path sits directly inside dir.
func IsDirectChild(dir, path string) bool {
	dir, path = filepath.Clean(dir), filepath.Clean(path)
	return path != dir && filepath.Dir(path) == dir
}
