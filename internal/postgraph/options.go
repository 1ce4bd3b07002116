package postgraph

import "slices"

// Sort orders accepted by the sort option.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Built-in defaults applied by Resolve.
const (
	DefaultPrefix              = "epg"
	DefaultSelectorLight       = ":root"
	DefaultBoxColorLight       = "#e9ecef"
	DefaultHighlightColorLight = "#69db7c"
	DefaultTextColorLight      = "#000"
	DefaultBoxColorDark        = "#2d333b"
	DefaultHighlightColorDark  = "#69db7c"
	DefaultTextColorDark       = "#fff"
)

// Options is a partial render configuration. Nil pointers, empty strings and
// a nil Only mean "unset" and fall back to whatever the layer underneath
// provides. A non-nil empty Only and a Limit below one are set values: they
// clear an inherited filter or limit.
type Options struct {
	Hyperlinks *bool  `json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty"`
	Sort       string `json:"sort,omitempty"       yaml:"sort,omitempty"`
	Only       []int  `json:"only,omitempty"       yaml:"only,omitempty"`
	Limit      *int   `json:"limit,omitempty"      yaml:"limit,omitempty"`
	NoStyles   *bool  `json:"noStyles,omitempty"   yaml:"noStyles,omitempty"`
	Prefix     string `json:"prefix,omitempty"     yaml:"prefix,omitempty"`
	NoLabels   *bool  `json:"noLabels,omitempty"   yaml:"noLabels,omitempty"`

	SelectorLight string `json:"selectorLight,omitempty" yaml:"selectorLight,omitempty"`
	SelectorDark  string `json:"selectorDark,omitempty"  yaml:"selectorDark,omitempty"`

	BoxColor       string `json:"boxColor,omitempty"       yaml:"boxColor,omitempty"`
	HighlightColor string `json:"highlightColor,omitempty" yaml:"highlightColor,omitempty"`
	TextColor      string `json:"textColor,omitempty"      yaml:"textColor,omitempty"`

	BoxColorLight       string `json:"boxColorLight,omitempty"       yaml:"boxColorLight,omitempty"`
	HighlightColorLight string `json:"highlightColorLight,omitempty" yaml:"highlightColorLight,omitempty"`
	TextColorLight      string `json:"textColorLight,omitempty"      yaml:"textColorLight,omitempty"`

	BoxColorDark       string `json:"boxColorDark,omitempty"       yaml:"boxColorDark,omitempty"`
	HighlightColorDark string `json:"highlightColorDark,omitempty" yaml:"highlightColorDark,omitempty"`
	TextColorDark      string `json:"textColorDark,omitempty"      yaml:"textColorDark,omitempty"`

	// Data is a precomputed aggregate. When set, posts are not aggregated.
	Data *Data `json:"data,omitempty" yaml:"data,omitempty"`
}

// Config is a fully resolved configuration for one render call.
type Config struct {
	Hyperlinks bool
	Sort       string
	Only       []int
	Limit      int
	NoStyles   bool
	Prefix     string
	NoLabels   bool

	SelectorLight string
	// SelectorDark is empty when dark mode uses the prefers-color-scheme media query.
	SelectorDark string

	BoxColor       string
	HighlightColor string
	TextColor      string

	BoxColorLight       string
	HighlightColorLight string
	TextColorLight      string

	BoxColorDark       string
	HighlightColorDark string
	TextColorDark      string

	Data *Data
}

// Bool returns a pointer to b, for setting boolean options.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to n, for setting the limit option.
func Int(n int) *int {
	return &n
}

// Merge returns a copy of o with every set field of override applied on top.
// Neither o nor override is modified.
func (o Options) Merge(override Options) Options {
	merged := o
	merged.Only = slices.Clone(o.Only)

	if override.Hyperlinks != nil {
		merged.Hyperlinks = Bool(*override.Hyperlinks)
	}
	if override.NoStyles != nil {
		merged.NoStyles = Bool(*override.NoStyles)
	}
	if override.NoLabels != nil {
		merged.NoLabels = Bool(*override.NoLabels)
	}
	if override.Only != nil {
		merged.Only = slices.Clone(override.Only)
	}
	if override.Limit != nil {
		merged.Limit = Int(*override.Limit)
	}
	if override.Data != nil {
		merged.Data = override.Data
	}

	mergeString(&merged.Sort, override.Sort)
	mergeString(&merged.Prefix, override.Prefix)
	mergeString(&merged.SelectorLight, override.SelectorLight)
	mergeString(&merged.SelectorDark, override.SelectorDark)
	mergeString(&merged.BoxColor, override.BoxColor)
	mergeString(&merged.HighlightColor, override.HighlightColor)
	mergeString(&merged.TextColor, override.TextColor)
	mergeString(&merged.BoxColorLight, override.BoxColorLight)
	mergeString(&merged.HighlightColorLight, override.HighlightColorLight)
	mergeString(&merged.TextColorLight, override.TextColorLight)
	mergeString(&merged.BoxColorDark, override.BoxColorDark)
	mergeString(&merged.HighlightColorDark, override.HighlightColorDark)
	mergeString(&merged.TextColorDark, override.TextColorDark)

	return merged
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Resolve fills unset fields with the built-in defaults.
// A custom prefix p becomes "p-epg" so generated class names never collide
// with the host page's own.
func (o Options) Resolve() Config {
	cfg := Config{
		Hyperlinks: o.Hyperlinks != nil && *o.Hyperlinks,
		Sort:       SortAsc,
		Only:       slices.Clone(o.Only),
		NoStyles:   o.NoStyles != nil && *o.NoStyles,
		Prefix:     DefaultPrefix,
		NoLabels:   o.NoLabels != nil && *o.NoLabels,

		SelectorLight: orDefault(o.SelectorLight, DefaultSelectorLight),
		SelectorDark:  o.SelectorDark,

		BoxColor:       o.BoxColor,
		HighlightColor: o.HighlightColor,
		TextColor:      o.TextColor,

		BoxColorLight:       orDefault(o.BoxColorLight, DefaultBoxColorLight),
		HighlightColorLight: orDefault(o.HighlightColorLight, DefaultHighlightColorLight),
		TextColorLight:      orDefault(o.TextColorLight, DefaultTextColorLight),

		BoxColorDark:       orDefault(o.BoxColorDark, DefaultBoxColorDark),
		HighlightColorDark: orDefault(o.HighlightColorDark, DefaultHighlightColorDark),
		TextColorDark:      orDefault(o.TextColorDark, DefaultTextColorDark),

		Data: o.Data,
	}
	if o.Sort == SortDesc {
		cfg.Sort = SortDesc
	}
	if o.Limit != nil && *o.Limit > 0 {
		cfg.Limit = *o.Limit
	}
	if o.Prefix != "" {
		cfg.Prefix = o.Prefix + "-" + DefaultPrefix
	}
	return cfg
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Palette is the set of colors used for one color scheme.
type Palette struct {
	Box       string
	Highlight string
	Text      string
}

// LightPalette returns the light-scheme colors. Scheme-independent colors win
// over the light-specific ones.
func (c Config) LightPalette() Palette {
	return Palette{
		Box:       orDefault(c.BoxColor, c.BoxColorLight),
		Highlight: orDefault(c.HighlightColor, c.HighlightColorLight),
		Text:      orDefault(c.TextColor, c.TextColorLight),
	}
}

// DarkPalette returns the dark-scheme colors. Scheme-independent colors win
// over the dark-specific ones.
func (c Config) DarkPalette() Palette {
	return Palette{
		Box:       orDefault(c.BoxColor, c.BoxColorDark),
		Highlight: orDefault(c.HighlightColor, c.HighlightColorDark),
		Text:      orDefault(c.TextColor, c.TextColorDark),
	}
}
