package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"filesort/internal/organizer"
)

// sortReport is the --json shape for sort and customsort.
type sortReport struct {
	RunID     string            `json:"run_id"`
	Summary   organizer.Summary `json:"summary"`
	TimeTaken string            `json:"time_taken"`
}

func printSortSummary(out io.Writer, summary organizer.Summary, colorize bool) {
	if summary.Moved > 0 {
		rows := make([][]string, 0, len(summary.ByCategory))
		for _, row := range summary.Categories() {
			rows = append(rows, []string{categoryLabel(row.Category), humanize.Comma(int64(row.Files))})
		}
		fmt.Fprintln(out, renderTable([]string{"Category", "Files"}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	kind := statusOK
	if summary.Moved == 0 {
		kind = statusInfo
	}
	fmt.Fprintln(out, renderStatusLine("Moved", kind, humanize.Comma(int64(summary.Moved))+" "+pluralFiles(summary.Moved), colorize))
	if summary.Skipped > 0 {
		fmt.Fprintln(out, renderStatusLine("Already in place", statusInfo, humanize.Comma(int64(summary.Skipped)), colorize))
	}
	if summary.Ignored > 0 {
		fmt.Fprintln(out, renderStatusLine("Ignored", statusInfo, humanize.Comma(int64(summary.Ignored)), colorize))
	}
	if summary.MoveLogPath != "" {
		fmt.Fprintln(out, renderStatusLine("Move log", statusInfo, summary.MoveLogPath, colorize))
	}
}

func printTimeTaken(out io.Writer, elapsed time.Duration) {
	fmt.Fprintf(out, "Time taken: %s\n", elapsed)
}

func pluralFiles(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
