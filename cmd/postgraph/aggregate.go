package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/export"
	"github.com/shoesandsocks/postgraph/internal/output"
)

// newAggregateCmd creates the aggregate command.
func newAggregateCmd() *cobra.Command {
	flags := &graphFlags{}
	var formatFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Export the post counts per day",
		Long: `Export the aggregated post counts in the data-file format.

The output lists every year's layout and the number of posts on each day with
activity. Pass it back with --data (or the data option) to render without
reading posts again.

Examples:
  postgraph aggregate --content ./src/posts      # JSON to stdout
  postgraph aggregate --format yaml
  postgraph aggregate --out _data/postgraph.json # Format from the extension`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAggregate(cmd, flags, formatFlag, outFlag)
		},
	}

	flags.bindSource(cmd)
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: json or yaml (default: from --out extension, else json)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write to a file instead of stdout")

	return cmd
}

// runAggregate executes the aggregate command.
func runAggregate(cmd *cobra.Command, flags *graphFlags, formatFlag, outFlag string) error {
	printer := newPrinter(cmd)

	format, err := export.ParseFormat(formatFlag, outFlag)
	if err != nil {
		return reportError(printer, err)
	}

	agg, _, err := loadGraph(cmd, flags)
	if err != nil {
		return reportError(printer, err)
	}
	data := agg.Data()

	if outFlag != "" {
		if err := export.WriteFile(data, outFlag, format); err != nil {
			return reportError(printer, err)
		}
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("Wrote %d days across %d years to %s", len(data.Counts), len(data.Years), outFlag),
			"path":    outFlag,
			"format":  string(format),
		})
	}

	if printer.IsJSON() || format == export.JSON {
		return export.FormatJSON(printer, data)
	}

	raw, err := export.Marshal(data, format)
	if err != nil {
		return reportError(printer, output.NewSystemErrorWithCause("failed to encode aggregate", err))
	}
	printer.Print("%s", raw)
	return nil
}
