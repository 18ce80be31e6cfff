package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filesort/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputDirectory_Missing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b")
	result := CheckOutputDirectory("out", target)
	if !result.Passed {
		t.Fatalf("expected missing output under writable parent to pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckOutputDirectory_UnderFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckOutputDirectory("out", f); result.Passed {
		t.Fatal("expected failure when output is a file")
	}
	if result := CheckOutputDirectory("out", filepath.Join(f, "sub")); result.Passed {
		t.Fatal("expected failure when output sits under a file")
	}
}

func TestForSortAndErr(t *testing.T) {
	input := t.TempDir()
	if err := Err(ForSort(input, filepath.Join(input, "sorted"))); err != nil {
		t.Fatalf("expected checks to pass: %v", err)
	}

	err := Err(ForSort(filepath.Join(input, "missing"), input))
	if !errors.Is(err, ErrFailed) {
		t.Fatalf("expected ErrFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "Input directory") {
		t.Fatalf("expected failing check name in error, got %v", err)
	}
}

func TestRunAll(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Paths.LockDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("log dir should pass: %s", results[0].Detail)
	}
	if results[1].Passed {
		t.Fatal("missing lock dir should fail")
	}
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
