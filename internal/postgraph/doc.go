// Package postgraph builds a post-activity calendar from dated posts.
//
// A render call runs three stages, each usable on its own:
//
//	agg, err := postgraph.AggregatePosts(posts)    // posts -> years + day counts
//	years := postgraph.SelectYears(agg.Years, cfg) // filter, sort, limit
//	html := postgraph.Render(agg, cfg)             // markup for the selected years
//
// PostGraph wires the stages together the way a site template calls them:
// module-level defaults are merged with per-call overrides into a fresh
// Config, a precomputed aggregate in Config.Data bypasses aggregation, and
// the result is an HTML fragment with an optional embedded stylesheet.
//
// # Options and Config
//
// Options is a partial configuration where every field may be unset.
// Options.Merge overlays one Options on another without mutating either,
// and Options.Resolve fills the remaining gaps with the built-in defaults:
//
//	cfg := defaults.Merge(override).Resolve()
//
// Nonsensical values are coerced rather than rejected: an unknown sort
// order means ascending, a limit below one means no limit.
//
// # Templates
//
// FuncMap exposes postGraph and graphOptions to html/template:
//
//	{{ postGraph .Posts }}
//	{{ postGraph .Posts (graphOptions "sort" "desc" "limit" 2) }}
package postgraph
