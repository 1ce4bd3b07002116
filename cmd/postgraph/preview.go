package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/page"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// previewFlags holds the command-line flags for the preview command.
type previewFlags struct {
	graph    graphFlags
	template string
	intro    string
	title    string
	out      string
	list     bool
}

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Write a standalone HTML page showing the graph",
		Long: `Write a standalone HTML page showing the post graph.

The page is an html/template that calls postGraph, so it exercises the same
path a site template does. Templates are looked up by name in
.postgraph/templates, then the user config dir, then the built-ins
(default, archive, minimal). A path to an .html file is used directly.

Examples:
  postgraph preview --out preview.html
  postgraph preview --template archive --title "Writing" --intro intro.md
  postgraph preview --template ./layouts/graph.html
  postgraph preview --list                       # Show available templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, flags)
		},
	}

	flags.graph.bindSource(cmd)
	flags.graph.bindSelection(cmd)
	flags.graph.bindTheme(cmd)
	cmd.Flags().StringVarP(&flags.template, "template", "t", "default", "Template name or path to an .html template")
	cmd.Flags().StringVar(&flags.intro, "intro", "", "Markdown file rendered above the graph")
	cmd.Flags().StringVar(&flags.title, "title", "Posts", "Page title")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.list, "list", false, "List available templates")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, flags *previewFlags) error {
	printer := newPrinter(cmd)

	if flags.list {
		return listTemplates(printer)
	}

	tmpl, err := loadPageTemplate(flags.template)
	if err != nil {
		return reportError(printer, err)
	}

	var intro []byte
	if flags.intro != "" {
		intro, err = os.ReadFile(flags.intro)
		if err != nil {
			return reportError(printer, classifyError("reading intro", err))
		}
	}

	input, file, err := loadInput(cmd, &flags.graph)
	if err != nil {
		return reportError(printer, err)
	}

	defaults := file.Options.Merge(flags.graph.options(cmd))
	if input.Data != nil {
		defaults = defaults.Merge(postgraph.Options{Data: input.Data})
	}

	var buf bytes.Buffer
	view := page.Page{Title: flags.title, Posts: input.Posts}
	if intro != nil {
		view.Intro = page.RenderMarkdown(intro)
	}
	if err := tmpl.Execute(&buf, view, postgraph.FuncMap(defaults)); err != nil {
		return reportError(printer, output.NewUserErrorWithCause(err.Error(), err))
	}

	if flags.out == "" {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"html":     buf.String(),
				"template": tmpl.Name,
				"source":   tmpl.Source,
			})
		}
		printer.Print("%s", buf.String())
		return nil
	}

	if err := os.WriteFile(flags.out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // generated page is public
		return reportError(printer, output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s", flags.out), err))
	}
	return printer.Success(map[string]any{
		"message":  fmt.Sprintf("Wrote preview to %s", flags.out),
		"path":     flags.out,
		"template": tmpl.Name,
	})
}

// loadPageTemplate treats names ending in .html or containing a path
// separator as files, and everything else as a template name.
func loadPageTemplate(name string) (*page.Template, error) {
	if strings.HasSuffix(name, page.Ext) || strings.ContainsAny(name, `/\`) {
		tmpl, err := page.LoadFile(name)
		if err != nil {
			return nil, classifyError("loading template", err)
		}
		return tmpl, nil
	}

	tmpl, err := page.Load(name)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error()+". Run 'postgraph preview --list' for available templates", err)
	}
	return tmpl, nil
}

// listTemplates prints the available page templates.
func listTemplates(printer *output.Printer) error {
	infos := page.List()
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"templates": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overridden by " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, source, info.Description})
	}
	printer.Table([]string{"NAME", "SOURCE", "DESCRIPTION"}, rows)
	return nil
}
