package postgraph

import (
	"fmt"
	"strings"
	"time"
)

// Render formats the selected years of agg as an HTML fragment.
// It performs no aggregation and never fails. Config values are site
// configuration and are written into the markup and stylesheet as given.
func Render(agg *Aggregate, cfg Config) string {
	var builder strings.Builder

	if !cfg.NoStyles {
		writeStyles(&builder, cfg)
	}

	for _, year := range SelectYears(agg.Years, cfg) {
		writeYear(&builder, cfg.Prefix, year, agg, cfg.Hyperlinks)
	}

	return builder.String()
}

// writeYear writes one year block: label, month labels, and the day grid.
func writeYear(builder *strings.Builder, prefix string, year int, agg *Aggregate, hyperlinks bool) {
	meta := agg.Years[year]

	fmt.Fprintf(builder, "<div class=\"%s\">\n", prefix)

	fmt.Fprintf(builder, "<div class=\"%s__year\">", prefix)
	if hyperlinks {
		fmt.Fprintf(builder, "<a href=\"/%d\">%d</a>", year, year)
	} else {
		fmt.Fprintf(builder, "%d", year)
	}
	builder.WriteString("</div>\n")

	fmt.Fprintf(builder, "<div class=\"%s__months\">", prefix)
	for month := time.January; month <= time.December; month++ {
		label := month.String()[:3]
		if hyperlinks {
			fmt.Fprintf(builder, "<a href=\"/%d/%02d\">%s</a>", year, int(month), label)
		} else {
			fmt.Fprintf(builder, "<div>%s</div>", label)
		}
	}
	builder.WriteString("</div>\n")

	fmt.Fprintf(builder, "<div class=\"%s__squares\">", prefix)
	for range meta.Offset {
		fmt.Fprintf(builder, "<div class=\"%[1]s__box %[1]s__box--empty\"></div>", prefix)
	}
	for day := 1; day <= meta.Days; day++ {
		if agg.Count(year, day) > 0 {
			fmt.Fprintf(builder, "<div class=\"%[1]s__box %[1]s__hasPost\"></div>", prefix)
		} else {
			fmt.Fprintf(builder, "<div class=\"%s__box\"></div>", prefix)
		}
	}
	builder.WriteString("</div>\n")

	builder.WriteString("</div>\n")
}

// PostGraph renders the calendar for posts. The call's Config is built fresh
// from defaults merged with override; a precomputed aggregate in the merged
// options is used as-is instead of aggregating posts.
func PostGraph(posts []Post, defaults, override Options) (string, error) {
	cfg := defaults.Merge(override).Resolve()

	agg, err := Build(posts, cfg)
	if err != nil {
		return "", err
	}

	return Render(agg, cfg), nil
}

// Build returns the aggregate for a render call: cfg.Data when supplied,
// otherwise the aggregate of posts.
func Build(posts []Post, cfg Config) (*Aggregate, error) {
	if cfg.Data != nil {
		return cfg.Data.Aggregate()
	}
	return AggregatePosts(posts)
}
