package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	flags := &graphFlags{}
	var outFlag string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the post graph as an HTML fragment",
		Long: `Render the post graph as an inline HTML and CSS fragment.

The fragment is a <style> block followed by one grid per year, ready to paste
into a page or include from a template.

Examples:
  postgraph render                               # Use the source from postgraph.yaml
  postgraph render --content ./src/posts         # Read front matter dates
  postgraph render --posts posts.yaml --sort desc --limit 3
  postgraph render --data graph.json --out _includes/graph.html
  postgraph render --hyperlinks --prefix blog    # Links, classes blog-epg__*`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, flags, outFlag)
		},
	}

	flags.bindSource(cmd)
	flags.bindSelection(cmd)
	flags.bindTheme(cmd)
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the fragment to a file instead of stdout")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, flags *graphFlags, outFlag string) error {
	printer := newPrinter(cmd)

	agg, cfg, err := loadGraph(cmd, flags)
	if err != nil {
		return reportError(printer, err)
	}

	html := postgraph.Render(agg, cfg)
	years := postgraph.SelectYears(agg.Years, cfg)

	if outFlag != "" {
		if err := os.WriteFile(outFlag, []byte(html), 0o644); err != nil { //nolint:gosec // generated markup is public
			return reportError(printer, output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s", outFlag), err))
		}
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("Wrote %s to %s", pluralYears(len(years)), outFlag),
			"path":    outFlag,
			"years":   nonNilYears(years),
		})
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"html":  html,
			"years": nonNilYears(years),
		})
	}

	printer.Print("%s", html)
	return nil
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// nonNilYears keeps JSON output an array when no year is selected.
func nonNilYears(years []int) []int {
	if years == nil {
		return []int{}
	}
	return years
}
