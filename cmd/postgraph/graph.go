package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shoesandsocks/postgraph/internal/config"
	"github.com/shoesandsocks/postgraph/internal/content"
	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// graphFlags holds the source and option flags shared by the rendering
// commands. Flags that are not set leave the config file's value in place.
type graphFlags struct {
	contentDir string
	postsFile  string
	dataFile   string

	sort  string
	only  []int
	limit int

	prefix        string
	hyperlinks    bool
	noStyles      bool
	noLabels      bool
	selectorLight string
	selectorDark  string

	boxColor            string
	highlightColor      string
	textColor           string
	boxColorLight       string
	highlightColorLight string
	textColorLight      string
	boxColorDark        string
	highlightColorDark  string
	textColorDark       string
}

// bindSource registers --content, --posts and --data.
func (f *graphFlags) bindSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.contentDir, "content", "", "Content directory of pages with front matter dates")
	cmd.Flags().StringVar(&f.postsFile, "posts", "", "YAML or JSON file listing posts")
	cmd.Flags().StringVar(&f.dataFile, "data", "", "Precomputed aggregate written by 'postgraph aggregate'")
}

// bindSelection registers the year selection flags.
func (f *graphFlags) bindSelection(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "", "Year order: asc or desc (default asc)")
	cmd.Flags().IntSliceVar(&f.only, "only", nil, "Only include these years (comma-separated)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Include at most N years after sorting (0 or less: no limit)")
}

// bindTheme registers the markup and color flags.
func (f *graphFlags) bindTheme(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.prefix, "prefix", "", "Class name prefix; p becomes p-epg (default epg)")
	flags.BoolVar(&f.hyperlinks, "hyperlinks", false, "Link years to /YYYY and months to /YYYY/MM")
	flags.BoolVar(&f.noStyles, "no-styles", false, "Omit the <style> block")
	flags.BoolVar(&f.noLabels, "no-labels", false, "Hide year and month labels")
	flags.StringVar(&f.selectorLight, "selector-light", "", "Selector for light-scheme variables (default :root)")
	flags.StringVar(&f.selectorDark, "selector-dark", "", "Selector for dark-scheme variables (default prefers-color-scheme)")

	flags.StringVar(&f.boxColor, "box-color", "", "Box color for both schemes")
	flags.StringVar(&f.highlightColor, "highlight-color", "", "Highlight color for both schemes")
	flags.StringVar(&f.textColor, "text-color", "", "Label color for both schemes")
	flags.StringVar(&f.boxColorLight, "box-color-light", "", "Light-scheme box color (default #e9ecef)")
	flags.StringVar(&f.highlightColorLight, "highlight-color-light", "", "Light-scheme highlight color (default #69db7c)")
	flags.StringVar(&f.textColorLight, "text-color-light", "", "Light-scheme label color (default #000)")
	flags.StringVar(&f.boxColorDark, "box-color-dark", "", "Dark-scheme box color (default #2d333b)")
	flags.StringVar(&f.highlightColorDark, "highlight-color-dark", "", "Dark-scheme highlight color (default #69db7c)")
	flags.StringVar(&f.textColorDark, "text-color-dark", "", "Dark-scheme label color (default #fff)")
}

func (f *graphFlags) source() content.Source {
	return content.Source{
		ContentDir: f.contentDir,
		PostsFile:  f.postsFile,
		DataFile:   f.dataFile,
	}
}

// options returns the per-call overrides. Booleans and --limit count only
// when the flag was given, so --hyperlinks=false or --limit 0 can switch off
// a config file default.
func (f *graphFlags) options(cmd *cobra.Command) postgraph.Options {
	opts := postgraph.Options{
		Sort:                f.sort,
		Only:                f.only,
		Prefix:              f.prefix,
		SelectorLight:       f.selectorLight,
		SelectorDark:        f.selectorDark,
		BoxColor:            f.boxColor,
		HighlightColor:      f.highlightColor,
		TextColor:           f.textColor,
		BoxColorLight:       f.boxColorLight,
		HighlightColorLight: f.highlightColorLight,
		TextColorLight:      f.textColorLight,
		BoxColorDark:        f.boxColorDark,
		HighlightColorDark:  f.highlightColorDark,
		TextColorDark:       f.textColorDark,
	}

	changed := cmd.Flags().Changed
	if changed("limit") {
		opts.Limit = postgraph.Int(f.limit)
	}
	if changed("hyperlinks") {
		opts.Hyperlinks = postgraph.Bool(f.hyperlinks)
	}
	if changed("no-styles") {
		opts.NoStyles = postgraph.Bool(f.noStyles)
	}
	if changed("no-labels") {
		opts.NoLabels = postgraph.Bool(f.noLabels)
	}
	return opts
}

// newPrinter creates a printer for cmd honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, isJSONMode(cmd), useColor(cmd, out)).WithStderr(cmd.ErrOrStderr())
}

// useColor resolves --color against whether w is a terminal.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	return output.ResolveColorMode(flagValue(cmd, "color"), output.IsTTY(w))
}

// newLogger returns a text logger on stderr; --verbose enables debug logs.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if flagValue(cmd, "verbose") == "true" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig resolves the config file for cmd.
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*config.File, error) {
	file, err := config.Resolve(flagValue(cmd, "config"))
	if err != nil {
		return nil, classifyError("loading config", err)
	}
	if file.Path != "" {
		logger.Debug("loaded config", "path", file.Path)
	}
	return file, nil
}

// loadInput reads the posts or data named by flags, falling back to the
// config file's source.
func loadInput(cmd *cobra.Command, flags *graphFlags) (*content.Input, *config.File, error) {
	logger := newLogger(cmd)

	file, err := loadConfig(cmd, logger)
	if err != nil {
		return nil, nil, err
	}

	source := file.Source.Merge(flags.source())
	logger.Debug("loading posts",
		"content", source.ContentDir, "posts", source.PostsFile, "data", source.DataFile)

	input, err := source.Load(cmd.Context(), content.NewLoader(logger))
	if err != nil {
		return nil, nil, classifyError("loading posts", err)
	}
	return input, file, nil
}

// loadGraph reads the input and builds the aggregate and resolved config
// for one command run.
func loadGraph(cmd *cobra.Command, flags *graphFlags) (*postgraph.Aggregate, postgraph.Config, error) {
	input, file, err := loadInput(cmd, flags)
	if err != nil {
		return nil, postgraph.Config{}, err
	}

	agg, cfg, err := input.Build(file.Options.Merge(flags.options(cmd)))
	if err != nil {
		return nil, postgraph.Config{}, classifyError("building graph", err)
	}
	return agg, cfg, nil
}

// classifyError maps an internal error onto an exit code: I/O failures
// other than missing files are system errors, everything else is the
// user's to fix.
func classifyError(message string, err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	msg := fmt.Sprintf("%s: %v", message, err)
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && !errors.Is(err, fs.ErrNotExist) {
		return output.NewSystemErrorWithCause(msg, err)
	}
	return output.NewUserErrorWithCause(msg, err)
}

// reportError prints err through printer and returns it.
func reportError(printer *output.Printer, err error) error {
	printer.Error(err)
	return err
}
