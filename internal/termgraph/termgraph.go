package termgraph

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// Cell is the glyph drawn for every day.
const Cell = "■"

const daysPerWeek = 7

var weekdays = [daysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Graph renders heatmaps for one resolved configuration and color scheme.
type Graph struct {
	renderer  *lipgloss.Renderer
	labels    bool
	title     lipgloss.Style
	box       lipgloss.Style
	highlight lipgloss.Style
	muted     lipgloss.Style
}

// New creates a Graph that styles output for w. dark selects the dark palette.
func New(w io.Writer, cfg postgraph.Config, dark bool) *Graph {
	renderer := lipgloss.NewRenderer(w)
	palette := cfg.LightPalette()
	if dark {
		palette = cfg.DarkPalette()
	}

	return &Graph{
		renderer:  renderer,
		labels:    !cfg.NoLabels,
		title:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Text)),
		box:       renderer.NewStyle().Foreground(lipgloss.Color(palette.Box)),
		highlight: renderer.NewStyle().Foreground(lipgloss.Color(palette.Highlight)),
		muted:     renderer.NewStyle().Foreground(lipgloss.Color(palette.Text)).Faint(true),
	}
}

// WithColor forces colored output on or off regardless of the writer.
func (g *Graph) WithColor(enabled bool) *Graph {
	if enabled {
		g.renderer.SetColorProfile(termenv.TrueColor)
	} else {
		g.renderer.SetColorProfile(termenv.Ascii)
	}
	return g
}

// Render draws the given years in order, separated by blank lines.
// Years missing from the aggregate are skipped.
func (g *Graph) Render(agg *postgraph.Aggregate, years []int) string {
	blocks := make([]string, 0, len(years))
	for _, year := range years {
		meta, ok := agg.Years[year]
		if !ok {
			continue
		}
		blocks = append(blocks, g.renderYear(agg, year, meta))
	}
	return strings.Join(blocks, "\n\n")
}

func (g *Graph) renderYear(agg *postgraph.Aggregate, year int, meta postgraph.YearMeta) string {
	weeks := (meta.Offset + meta.Days + daysPerWeek - 1) / daysPerWeek

	var rows [daysPerWeek][]string
	for i := range weeks * daysPerWeek {
		day := i - meta.Offset + 1
		cell := " "
		switch {
		case day < 1 || day > meta.Days:
		case agg.Count(year, day) > 0:
			cell = g.highlight.Render(Cell)
		default:
			cell = g.box.Render(Cell)
		}
		rows[i%daysPerWeek] = append(rows[i%daysPerWeek], cell)
	}

	lines := make([]string, 0, daysPerWeek+2)
	if g.labels {
		lines = append(lines, g.title.Render(strconv.Itoa(year)))
	}
	for weekday, cells := range rows {
		line := strings.TrimRight(strings.Join(cells, " "), " ")
		if g.labels {
			line = g.muted.Render(weekdays[weekday]) + " " + line
		}
		lines = append(lines, line)
	}

	stats := agg.Stats([]int{year})[0]
	lines = append(lines, g.muted.Render(footer(stats)))

	return strings.Join(lines, "\n")
}

func footer(stats postgraph.YearStats) string {
	posts := "posts"
	if stats.Posts == 1 {
		posts = "post"
	}
	days := "days"
	if stats.ActiveDays == 1 {
		days = "day"
	}
	return fmt.Sprintf("%d %s on %d %s", stats.Posts, posts, stats.ActiveDays, days)
}
