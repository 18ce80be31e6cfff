package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"filesort/internal/generate"
	"filesort/internal/logging"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var amount int
	var dir string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create empty files with random known extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			if amount <= 0 {
				return errors.New("--amount must be greater than zero")
			}
			table, err := ctx.extensionTable()
			if err != nil {
				return err
			}
			paths, err := generate.Files(dir, amount, table, nil)
			if err != nil {
				return err
			}
			if logger, err := ctx.ensureLogger(); err == nil {
				logger.Info("created files", logging.Args(logging.String("dir", dir), logging.Int("count", len(paths)))...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderStatusLine("Created", statusOK,
				fmt.Sprintf("%s %s in %s", humanize.Comma(int64(len(paths))), pluralFiles(len(paths)), dir),
				shouldColorize(out)))
			printTimeTaken(out, time.Since(started))
			return nil
		},
	}

	cmd.Flags().IntVarP(&amount, "amount", "a", 0, "Number of files to create")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the files in")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
