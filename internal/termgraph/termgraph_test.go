package termgraph

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

func aggregateOf(t *testing.T, dates ...string) *postgraph.Aggregate {
	t.Helper()
	agg := postgraph.NewAggregate()
	for _, raw := range dates {
		day, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			t.Fatalf("parsing %q: %v", raw, err)
		}
		agg.Add(day)
	}
	return agg
}

func plainGraph(cfg postgraph.Config) *Graph {
	var buf bytes.Buffer
	return New(&buf, cfg, false).WithColor(false)
}

func TestRender_Layout(t *testing.T) {
	// 2023-01-01 is a Sunday, so the first column only has a Sunday cell.
	agg := aggregateOf(t, "2023-01-01", "2023-01-03", "2023-01-03")
	got := plainGraph(postgraph.Options{}.Resolve()).Render(agg, []int{2023})

	lines := strings.Split(got, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), got)
	}
	if lines[0] != "2023" {
		t.Errorf("title = %q, want %q", lines[0], "2023")
	}
	if !strings.HasPrefix(lines[1], "Mon   "+Cell) {
		t.Errorf("Monday row = %q, want a leading blank cell", lines[1])
	}
	if !strings.HasPrefix(lines[7], "Sun "+Cell+" "+Cell) {
		t.Errorf("Sunday row = %q, want a leading day cell", lines[7])
	}
	if lines[8] != "3 posts on 2 days" {
		t.Errorf("footer = %q", lines[8])
	}
	if n := strings.Count(got, Cell); n != 365 {
		t.Errorf("cell count = %d, want 365", n)
	}
}

func TestRender_LeapYear(t *testing.T) {
	agg := aggregateOf(t, "2024-02-29")
	got := plainGraph(postgraph.Options{}.Resolve()).Render(agg, []int{2024})

	if n := strings.Count(got, Cell); n != 366 {
		t.Errorf("cell count = %d, want 366", n)
	}
	if !strings.HasSuffix(got, "1 post on 1 day") {
		t.Errorf("footer missing from:\n%s", got)
	}
}

func TestRender_NoLabels(t *testing.T) {
	agg := aggregateOf(t, "2024-05-01")
	cfg := postgraph.Options{NoLabels: postgraph.Bool(true)}.Resolve()
	got := plainGraph(cfg).Render(agg, []int{2024})

	for _, label := range []string{"2024\n", "Mon", "Sun"} {
		if strings.Contains(got, label) {
			t.Errorf("output contains %q with labels disabled", label)
		}
	}
	if lines := strings.Split(got, "\n"); len(lines) != 8 {
		t.Errorf("got %d lines, want 8", len(lines))
	}
}

func TestRender_YearOrderAndMissing(t *testing.T) {
	agg := aggregateOf(t, "2022-03-01", "2024-03-01")
	got := plainGraph(postgraph.Options{}.Resolve()).Render(agg, []int{2024, 2023, 2022})

	blocks := strings.Split(got, "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "2024\n") || !strings.HasPrefix(blocks[1], "2022\n") {
		t.Errorf("blocks out of order:\n%s", got)
	}
}

func TestRender_Empty(t *testing.T) {
	got := plainGraph(postgraph.Options{}.Resolve()).Render(postgraph.NewAggregate(), nil)
	if got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRender_Palette(t *testing.T) {
	agg := aggregateOf(t, "2024-01-01", "2024-01-02")
	opts := postgraph.Options{
		BoxColorDark:       "#0000ff",
		HighlightColorDark: "#ff0000",
	}

	var buf bytes.Buffer
	got := New(&buf, opts.Resolve(), true).WithColor(true).Render(agg, []int{2024})

	if n := strings.Count(got, "38;2;255;0;0"); n != 2 {
		t.Errorf("highlighted cells = %d, want 2", n)
	}
	if n := strings.Count(got, "38;2;0;0;255"); n != 364 {
		t.Errorf("plain cells = %d, want 364", n)
	}
}
