package generate_test

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"filesort/internal/extensions"
	"filesort/internal/generate"
	"filesort/internal/organizer"
	"filesort/internal/testsupport"
)

func TestFilesCreatesNumberedKnownExtensions(t *testing.T) {
	dir := t.TempDir()
	table := extensions.Default()

	paths, err := generate.Files(dir, 25, table, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Files returned error: %v", err)
	}
	if len(paths) != 25 {
		t.Fatalf("expected 25 paths, got %d", len(paths))
	}
	for i, path := range paths {
		name := filepath.Base(path)
		stem, ext, ok := strings.Cut(name, ".")
		if !ok {
			t.Fatalf("file %q has no extension", name)
		}
		if want := i + 1; stem != strconv.Itoa(want) {
			t.Fatalf("file %d named %q", want, name)
		}
		if _, found := table.Lookup(ext); !found {
			t.Fatalf("extension %q not in table", ext)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() != 0 {
			t.Fatalf("expected empty file %s: %v", path, err)
		}
	}
	if got := len(testsupport.ListFiles(t, dir)); got != 25 {
		t.Fatalf("expected 25 files on disk, got %d", got)
	}
}

func TestFilesDeterministicWithSeed(t *testing.T) {
	table := extensions.Default()
	a, err := generate.Files(t.TempDir(), 10, table, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	b, err := generate.Files(t.TempDir(), 10, table, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if !reflect.DeepEqual(baseNames(a), baseNames(b)) {
		t.Fatalf("same seed produced different names: %v vs %v", baseNames(a), baseNames(b))
	}
}

func TestFilesNeverClobbers(t *testing.T) {
	dir := t.TempDir()
	table := extensions.MustNew(extensions.Record{Extension: "txt", Category: "document"})
	testsupport.WriteFile(t, filepath.Join(dir, "2.txt"), 8)

	paths, err := generate.Files(dir, 3, table, nil)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected ErrExist, got %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected one file created before the collision, got %v", paths)
	}
	info, err := os.Stat(filepath.Join(dir, "2.txt"))
	if err != nil || info.Size() != 8 {
		t.Fatalf("existing file was modified: %v", err)
	}
}

func TestFilesRejectsBadInput(t *testing.T) {
	if _, err := generate.Files(t.TempDir(), 1, nil, nil); !errors.Is(err, generate.ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
	if _, err := generate.Files(t.TempDir(), -1, extensions.Default(), nil); err == nil {
		t.Fatal("expected error for negative count")
	}
	paths, err := generate.Files(t.TempDir(), 0, extensions.Default(), nil)
	if err != nil || len(paths) != 0 {
		t.Fatalf("zero count should be a no-op, got %v %v", paths, err)
	}
}

func TestGeneratedNamesHaveSortableExtensions(t *testing.T) {
	paths, err := generate.Files(t.TempDir(), 5, extensions.Default(), nil)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	for _, path := range paths {
		if _, ok := organizer.Extension(filepath.Base(path)); !ok {
			t.Fatalf("organizer would ignore %s", path)
		}
	}
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
