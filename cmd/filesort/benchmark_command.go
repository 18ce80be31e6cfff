package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"filesort/internal/benchmark"
	"filesort/internal/organizer"
)

type benchmarkReport struct {
	RunID     string `json:"run_id"`
	Skipped   bool   `json:"skipped"`
	Reason    string `json:"reason,omitempty"`
	Dir       string `json:"dir"`
	Files     int    `json:"files"`
	Moved     int    `json:"moved"`
	TimeTaken string `json:"time_taken"`
	Duration  int64  `json:"duration_ns"`
}

func newBenchmarkCommand(ctx *commandContext) *cobra.Command {
	var files int
	var dir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Time generating and sorting files (run in an empty directory)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			count := cfg.Benchmark.Files
			if cmd.Flags().Changed("files") {
				count = files
			}
			if count <= 0 {
				return fmt.Errorf("--files must be greater than zero (got %d)", count)
			}
			table, err := ctx.extensionTable()
			if err != nil {
				return err
			}
			org, err := ctx.organizerWith(organizer.Options{LockDir: cfg.Paths.LockDir})
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx, runID := runContext(cmd)
			result, err := benchmark.Run(runCtx, benchmark.Options{
				Dir:        dir,
				Files:      count,
				OutputName: cfg.Benchmark.DirName,
				Organizer:  org,
				Table:      table,
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				report := benchmarkReport{
					RunID:     runID,
					Skipped:   result.Skipped,
					Dir:       result.Dir,
					Files:     result.Files,
					Moved:     result.Summary.Moved,
					TimeTaken: result.Duration.String(),
					Duration:  int64(result.Duration),
				}
				if result.Reason != nil {
					report.Reason = result.Reason.Error()
				}
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if result.Skipped {
				fmt.Fprintln(out, renderStatusLine("Benchmark", statusWarn, "Please run benchmark in an empty directory.", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Benchmark", statusOK,
					fmt.Sprintf("generated and sorted %s files", humanize.Comma(int64(result.Files))), colorize))
			}
			printTimeTaken(out, result.Duration.Round(time.Microsecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&files, "files", benchmark.DefaultFiles, "Number of files to generate (default from config)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Empty directory to run in")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	return cmd
}
