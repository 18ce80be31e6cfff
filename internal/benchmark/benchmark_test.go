package benchmark_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"filesort/internal/benchmark"
	"filesort/internal/fileutil"
	"filesort/internal/testsupport"
)

func TestRunSkipsNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	testsupport.Touch(t, dir, "keep.txt")

	result, err := benchmark.Run(context.Background(), benchmark.Options{Dir: dir, Files: 5})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.Skipped || result.Duration != 0 {
		t.Fatalf("expected skipped run with zero duration, got %+v", result)
	}
	if !errors.Is(result.Reason, benchmark.ErrDirectoryNotEmpty) {
		t.Fatalf("expected ErrDirectoryNotEmpty reason, got %v", result.Reason)
	}
	if got := testsupport.ListFiles(t, dir); len(got) != 1 || got[0] != "keep.txt" {
		t.Fatalf("directory must be untouched, got %v", got)
	}
}

func TestRunSortsAndCleansUp(t *testing.T) {
	dir := t.TempDir()

	result, err := benchmark.Run(context.Background(), benchmark.Options{
		Dir:   dir,
		Files: 40,
		Rand:  rand.New(rand.NewPCG(3, 4)),
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Skipped {
		t.Fatalf("unexpected skip: %v", result.Reason)
	}
	if result.Files != 40 || result.Summary.Moved != 40 {
		t.Fatalf("expected 40 files generated and moved, got %+v", result)
	}
	if result.Duration <= 0 {
		t.Fatalf("expected positive duration, got %v", result.Duration)
	}
	testsupport.RequireMissing(t, filepath.Join(dir, benchmark.DefaultOutputName))
	if got := testsupport.ListFiles(t, dir); len(got) != 0 {
		t.Fatalf("expected empty directory after cleanup, got %v", got)
	}
	for _, m := range result.Summary.Moves {
		if strings.Count(m.Resolved, "/") != 1 {
			t.Fatalf("level 3 without alt should produce category/leaf, got %q", m.Resolved)
		}
	}
}

func TestRunCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	result, err := benchmark.Run(context.Background(), benchmark.Options{Dir: dir, Files: 3, OutputName: "out"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Skipped || result.Files != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	testsupport.RequireMissing(t, filepath.Join(dir, "out"))
}

func TestRunRejectsOutputNameOutsideDirectory(t *testing.T) {
	parent := t.TempDir()
	testsupport.Touch(t, parent, "keep.txt")
	dir := filepath.Join(parent, "work")

	for _, name := range []string{"..", ".", "nested/out"} {
		_, err := benchmark.Run(context.Background(), benchmark.Options{Dir: dir, Files: 3, OutputName: name})
		if !errors.Is(err, fileutil.ErrInvalidChildName) {
			t.Fatalf("output name %q: expected ErrInvalidChildName, got %v", name, err)
		}
	}
	testsupport.RequireFile(t, filepath.Join(parent, "keep.txt"))
	testsupport.RequireMissing(t, dir)
}
