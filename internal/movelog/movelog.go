// Package movelog appends one human-readable line per moved file to a plain
// text log kept inside the sorted input directory.
//
// Each line reads
//
//	"<source path>" Moved to "<destination directory>"
//
// with both paths Go-quoted so names containing spaces, quotes, or newlines
// stay on a single unambiguous line. The log is append-only; it is never
// rotated or rewritten.
package movelog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const (
	// DirName is the subdirectory of the input directory holding the log.
	DirName = "sorter-logs"
	// FileName is the log file inside DirName.
	FileName = "sorter.log"
)

// Path returns the move log location for inputDir.
func Path(inputDir string) string {
	return filepath.Join(inputDir, DirName, FileName)
}

// FormatLine renders a single log line, including the trailing newline.
func FormatLine(src, dstDir string) string {
	return strconv.Quote(src) + " Moved to " + strconv.Quote(dstDir) + "\n"
}

// Writer appends move records to a log file.
type Writer struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	path string
}

// Open creates <inputDir>/sorter-logs when needed and opens the log for appending.
func Open(inputDir string) (*Writer, error) {
	path := Path(inputDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create move log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open move log: %w", err)
	}
	return &Writer{file: file, buf: bufio.NewWriter(file), path: path}, nil
}

// Path returns the file being written.
func (w *Writer) Path() string {
	return w.path
}

// Record appends one line and flushes it, so a later failure never loses
// moves that already happened.
func (w *Writer) Record(src, dstDir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.buf.WriteString(FormatLine(src, dstDir)); err != nil {
		return fmt.Errorf("write move log: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("write move log: %w", err)
	}
	return nil
}

// Close flushes and closes the log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	w.file = nil
	if flushErr != nil {
		return fmt.Errorf("flush move log: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close move log: %w", closeErr)
	}
	return nil
}
