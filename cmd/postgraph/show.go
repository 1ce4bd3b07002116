package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
	"github.com/shoesandsocks/postgraph/internal/termgraph"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	flags := &graphFlags{}
	var schemeFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the post graph in the terminal",
		Long: `Draw the post graph in the terminal.

Each year is a grid with one row per weekday (Monday first) and one column per
week, colored with the configured light or dark palette.

Examples:
  postgraph show                                 # All years, oldest first
  postgraph show --sort desc --limit 1           # Just the latest year
  postgraph show --scheme light                  # Use the light palette
  postgraph show --json                          # Per-year stats as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, flags, schemeFlag)
		},
	}

	flags.bindSource(cmd)
	flags.bindSelection(cmd)
	flags.bindTheme(cmd)
	cmd.Flags().StringVar(&schemeFlag, "scheme", "auto", "Palette: auto, light, or dark")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, flags *graphFlags, schemeFlag string) error {
	printer := newPrinter(cmd)

	dark, err := resolveScheme(schemeFlag)
	if err != nil {
		return reportError(printer, err)
	}

	agg, cfg, err := loadGraph(cmd, flags)
	if err != nil {
		return reportError(printer, err)
	}

	years := postgraph.SelectYears(agg.Years, cfg)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"years": agg.Stats(years)})
	}

	if len(years) == 0 {
		printer.Warn("no years to show")
		return nil
	}

	out := cmd.OutOrStdout()
	graph := termgraph.New(out, cfg, dark).WithColor(useColor(cmd, out))
	printer.Println(graph.Render(agg, years))
	return nil
}

// resolveScheme maps --scheme onto the dark palette switch.
func resolveScheme(scheme string) (bool, error) {
	switch scheme {
	case "", "auto":
		return lipgloss.HasDarkBackground(), nil
	case "dark":
		return true, nil
	case "light":
		return false, nil
	default:
		return false, output.NewUserError("--scheme must be auto, light, or dark")
	}
}
