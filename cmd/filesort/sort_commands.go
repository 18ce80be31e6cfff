package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"filesort/internal/organizer"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var inputDir, outputDir string
	var nestingLevel int
	var useAlt, verbose, moveLog, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort files into category directories by extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			level, err := nestingLevelFlag(cmd, nestingLevel, cfg)
			if err != nil {
				return err
			}
			alt := cfg.Sort.UseAlt
			if cmd.Flags().Changed("use-alt") {
				alt = useAlt
			}

			out := cmd.OutOrStdout()
			org, err := ctx.newOrganizer(moveLog, selectObserver(out, verbose, jsonOutput, "sorting"))
			if err != nil {
				return err
			}
			runCtx, runID := runContext(cmd)
			summary, err := org.Sort(runCtx, organizer.Request{
				InputDir:  inputDir,
				OutputDir: outputDir,
				Level:     level,
				UseAlt:    alt,
			})
			if err != nil {
				return err
			}
			return reportSort(cmd, runID, summary, jsonOutput, time.Since(started))
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory whose files are sorted")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Root of the sorted tree")
	cmd.Flags().IntVarP(&nestingLevel, "nesting-level", "n", 2, "Directory depth 1-3 (default from config)")
	cmd.Flags().BoolVarP(&useAlt, "use-alt", "a", false, "Use alternate directory names")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every move")
	cmd.Flags().BoolVarP(&moveLog, "log", "l", false, "Append moves to <input>/sorter-logs/sorter.log")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run summary as JSON")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newCustomSortCommand(ctx *commandContext) *cobra.Command {
	var inputDir, outputDir, extension string
	var verbose, moveLog, jsonOutput bool

	cmd := &cobra.Command{
		Use:   "customsort",
		Short: "Move every file with one exact extension into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			if strings.TrimPrefix(strings.TrimSpace(extension), ".") == "" {
				return errors.New("--extension must not be empty")
			}

			out := cmd.OutOrStdout()
			org, err := ctx.newOrganizer(moveLog, selectObserver(out, verbose, jsonOutput, "moving"))
			if err != nil {
				return err
			}
			runCtx, runID := runContext(cmd)
			summary, err := org.CustomSort(runCtx, organizer.CustomRequest{
				InputDir:  inputDir,
				OutputDir: outputDir,
				Extension: extension,
			})
			if err != nil {
				return err
			}
			return reportSort(cmd, runID, summary, jsonOutput, time.Since(started))
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Directory whose files are moved")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory that receives the files")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Extension to move, compared case-sensitively")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every move")
	cmd.Flags().BoolVarP(&moveLog, "log", "l", false, "Append moves to <input>/sorter-logs/sorter.log")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run summary as JSON")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("extension")
	return cmd
}

func reportSort(cmd *cobra.Command, runID string, summary organizer.Summary, jsonOutput bool, elapsed time.Duration) error {
	if jsonOutput {
		return writeJSON(cmd, sortReport{RunID: runID, Summary: summary, TimeTaken: elapsed.String()})
	}
	out := cmd.OutOrStdout()
	printSortSummary(out, summary, shouldColorize(out))
	printTimeTaken(out, elapsed)
	return nil
}
