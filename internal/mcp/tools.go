package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shoesandsocks/postgraph/internal/config"
	"github.com/shoesandsocks/postgraph/internal/content"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// --- Shared helpers ---

// sourceOf collects the per-call source fields. Unset fields fall back to
// the server's configured source.
func sourceOf(contentDir, postsFile, dataFile string) content.Source {
	return content.Source{
		ContentDir: contentDir,
		PostsFile:  postsFile,
		DataFile:   dataFile,
	}
}

// load reads the input for a tool call and builds its aggregate.
func load(
	ctx context.Context, defaults *config.File, loader *content.Loader,
	src content.Source, opts postgraph.Options,
) (*postgraph.Aggregate, postgraph.Config, error) {
	input, err := defaults.Source.Merge(src).Load(ctx, loader)
	if err != nil {
		return nil, postgraph.Config{}, fmt.Errorf("loading posts: %w", err)
	}
	return input.Build(defaults.Options.Merge(opts))
}

// --- Render tool ---

// RenderInput is the input for the render_post_graph tool.
type RenderInput struct {
	ContentDir string `json:"content_dir,omitempty" jsonschema:"directory of markdown or html pages with front matter dates"`
	PostsFile  string `json:"posts_file,omitempty"  jsonschema:"YAML or JSON list of posts with a date field"`
	DataFile   string `json:"data_file,omitempty"   jsonschema:"precomputed aggregate from the aggregate command"`

	Sort          string `json:"sort,omitempty"           jsonschema:"year order: asc (default) or desc"`
	Only          []int  `json:"only,omitempty"           jsonschema:"render only these years; an empty list removes a configured filter"`
	Limit         *int   `json:"limit,omitempty"          jsonschema:"render at most this many years after sorting; 0 or less removes a configured limit"`
	Prefix        string `json:"prefix,omitempty"         jsonschema:"class name prefix; p becomes p-epg"`
	Hyperlinks    *bool  `json:"hyperlinks,omitempty"     jsonschema:"link year labels to /YYYY and months to /YYYY/MM"`
	NoStyles      *bool  `json:"no_styles,omitempty"      jsonschema:"omit the style block"`
	NoLabels      *bool  `json:"no_labels,omitempty"      jsonschema:"hide year and month labels"`
	SelectorLight string `json:"selector_light,omitempty" jsonschema:"CSS selector for light-scheme variables (default :root)"`
	SelectorDark  string `json:"selector_dark,omitempty"  jsonschema:"CSS selector for dark-scheme variables (default prefers-color-scheme media query)"`

	BoxColor       string `json:"box_color,omitempty"       jsonschema:"box color for both schemes"`
	HighlightColor string `json:"highlight_color,omitempty" jsonschema:"highlight color for both schemes"`
	TextColor      string `json:"text_color,omitempty"      jsonschema:"label color for both schemes"`
}

func (in RenderInput) options() postgraph.Options {
	return postgraph.Options{
		Sort:           in.Sort,
		Only:           in.Only,
		Limit:          in.Limit,
		Prefix:         in.Prefix,
		Hyperlinks:     in.Hyperlinks,
		NoStyles:       in.NoStyles,
		NoLabels:       in.NoLabels,
		SelectorLight:  in.SelectorLight,
		SelectorDark:   in.SelectorDark,
		BoxColor:       in.BoxColor,
		HighlightColor: in.HighlightColor,
		TextColor:      in.TextColor,
	}
}

// RenderOutput is the output for the render_post_graph tool.
type RenderOutput struct {
	HTML  string `json:"html"  jsonschema:"inline HTML and CSS fragment"`
	Years []int  `json:"years" jsonschema:"rendered years in output order"`
}

func handleRender(defaults *config.File, loader *content.Loader) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		agg, cfg, err := load(ctx, defaults, loader, sourceOf(input.ContentDir, input.PostsFile, input.DataFile), input.options())
		if err != nil {
			return nil, RenderOutput{}, err
		}

		years := postgraph.SelectYears(agg.Years, cfg)
		if years == nil {
			years = []int{}
		}
		return nil, RenderOutput{HTML: postgraph.Render(agg, cfg), Years: years}, nil
	}
}

// --- Activity tool ---

// ActivityInput is the input for the post_activity tool.
type ActivityInput struct {
	ContentDir string `json:"content_dir,omitempty" jsonschema:"directory of markdown or html pages with front matter dates"`
	PostsFile  string `json:"posts_file,omitempty"  jsonschema:"YAML or JSON list of posts with a date field"`
	DataFile   string `json:"data_file,omitempty"   jsonschema:"precomputed aggregate from the aggregate command"`

	Sort  string `json:"sort,omitempty"  jsonschema:"year order: asc (default) or desc"`
	Only  []int  `json:"only,omitempty"  jsonschema:"report only these years; an empty list removes a configured filter"`
	Limit *int   `json:"limit,omitempty" jsonschema:"report at most this many years after sorting; 0 or less removes a configured limit"`
}

// ActivityOutput is the output for the post_activity tool.
type ActivityOutput struct {
	TotalPosts int                   `json:"total_posts" jsonschema:"posts across the reported years"`
	Years      []postgraph.YearStats `json:"years"       jsonschema:"per-year activity"`
}

func handleActivity(defaults *config.File, loader *content.Loader) mcp.ToolHandlerFor[ActivityInput, ActivityOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ActivityInput) (*mcp.CallToolResult, ActivityOutput, error) {
		opts := postgraph.Options{Sort: input.Sort, Only: input.Only, Limit: input.Limit}
		agg, cfg, err := load(ctx, defaults, loader, sourceOf(input.ContentDir, input.PostsFile, input.DataFile), opts)
		if err != nil {
			return nil, ActivityOutput{}, err
		}

		out := ActivityOutput{Years: agg.Stats(postgraph.SelectYears(agg.Years, cfg))}
		for _, stats := range out.Years {
			out.TotalPosts += stats.Posts
		}
		return nil, out, nil
	}
}
