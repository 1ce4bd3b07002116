package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// newYearsCmd creates the years command.
func newYearsCmd() *cobra.Command {
	flags := &graphFlags{}

	cmd := &cobra.Command{
		Use:   "years",
		Short: "List the years a graph would render",
		Long: `List the years a graph would render, after --only, --sort and --limit.

Examples:
  postgraph years                                # Every year with posts
  postgraph years --sort desc --limit 3          # The three latest years
  postgraph years --only 2020,2024 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runYears(cmd, flags)
		},
	}

	flags.bindSource(cmd)
	flags.bindSelection(cmd)

	return cmd
}

// runYears executes the years command.
func runYears(cmd *cobra.Command, flags *graphFlags) error {
	printer := newPrinter(cmd)

	agg, cfg, err := loadGraph(cmd, flags)
	if err != nil {
		return reportError(printer, err)
	}

	stats := agg.Stats(postgraph.SelectYears(agg.Years, cfg))

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"years": stats})
	}

	if len(stats) == 0 {
		printer.Warn("no years selected")
		return nil
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Posts),
			strconv.Itoa(s.ActiveDays),
			strconv.Itoa(s.Days),
			weekdayName(s.Offset),
		})
	}
	printer.Table([]string{"YEAR", "POSTS", "ACTIVE DAYS", "DAYS", "STARTS"}, rows)
	return nil
}

// weekdayName names the weekday of January 1. Offsets from hand-written data
// files are not validated, so they are wrapped into range.
func weekdayName(offset int) string {
	weekdays := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	n := len(weekdays)
	return weekdays[(offset%n+n)%n]
}
