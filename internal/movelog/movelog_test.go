package movelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordAppendsLines(t *testing.T) {
	input := t.TempDir()

	w, err := Open(input)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Record(filepath.Join(input, "a.gif"), filepath.Join("out", "image", "gif")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// reopening appends instead of truncating
	w, err = Open(input)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := w.Record("b.pdf", "document"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(input, DirName, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), content)
	}
	want := `"` + filepath.Join(input, "a.gif") + `" Moved to "` + filepath.Join("out", "image", "gif") + `"`
	if lines[0] != want {
		t.Fatalf("line 1: got %q want %q", lines[0], want)
	}
	if lines[1] != `"b.pdf" Moved to "document"` {
		t.Fatalf("line 2: got %q", lines[1])
	}
}

func TestFormatLineQuotesSpecialCharacters(t *testing.T) {
	got := FormatLine("my \"odd\"\nname.txt", "document/txt")
	want := `"my \"odd\"\nname.txt" Moved to "document/txt"` + "\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("expected exactly one newline, got %q", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestOpenFailsWhenLogDirIsAFile(t *testing.T) {
	input := t.TempDir()
	if err := os.WriteFile(filepath.Join(input, DirName), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(input); err == nil {
		t.Fatal("expected error when sorter-logs is a regular file")
	}
}
