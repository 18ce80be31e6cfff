package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"filesort/internal/classify"
	"filesort/internal/extensions"
)

type extensionRow struct {
	Extension string `json:"extension"`
	Category  string `json:"category"`
	AltName   string `json:"alt_name,omitempty"`
	SortDir   string `json:"sort_dir,omitempty"`
}

func newExtensionsCommand(ctx *commandContext) *cobra.Command {
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the extension table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.extensionTable()
			if err != nil {
				return err
			}
			category = strings.ToLower(strings.TrimSpace(category))

			var records []extensions.Record
			for _, rec := range table.Records() {
				if category == "" || rec.Category == category {
					records = append(records, rec)
				}
			}
			if category != "" && len(records) == 0 {
				return fmt.Errorf("unknown category %q (known: %s)", category, strings.Join(table.Categories(), ", "))
			}

			if jsonOutput {
				rows := make([]extensionRow, 0, len(records))
				for _, rec := range records {
					rows = append(rows, extensionRow(rec))
				}
				return writeJSON(cmd, rows)
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{rec.Extension, categoryLabel(rec.Category), rec.AltName, rec.SortDir})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Extension", "Category", "Alternate", "Sort Dir"}, rows, nil))
			fmt.Fprintf(out, "%s extensions\n", humanize.Comma(int64(len(records))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list one category")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var nestingLevel int
	var useAlt bool

	cmd := &cobra.Command{
		Use:   "resolve <extension>",
		Short: "Print the directory an extension sorts into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			table, err := ctx.extensionTable()
			if err != nil {
				return err
			}
			resolved := classify.Resolve(table, extensions.Normalize(args[0]), level, alt)
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}

	cmd.Flags().IntVarP(&nestingLevel, "nesting-level", "n", 2, "Directory depth 1-3 (default from config)")
	cmd.Flags().BoolVarP(&useAlt, "use-alt", "a", false, "Use alternate directory names")
	return cmd
}
