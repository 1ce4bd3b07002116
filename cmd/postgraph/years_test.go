package main

import (
	"strings"
	"testing"
)

func TestYearsCommand(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "years", "--posts", posts, "--sort", "desc")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "YEAR") {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); strings.Join(fields, " ") != "2024 1 1 366 Mon" {
		t.Errorf("2024 row = %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); strings.Join(fields, " ") != "2023 3 2 365 Sun" {
		t.Errorf("2023 row = %q", lines[2])
	}
}

func TestYearsCommand_JSON(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "years", "--posts", posts, "--limit", "1", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	years, ok := decodeJSON(t, out)["years"].([]any)
	if !ok || len(years) != 1 {
		t.Fatalf("years = %v", years)
	}
	if year := years[0].(map[string]any); year["year"] != float64(2023) || year["offset"] != float64(6) {
		t.Errorf("year = %v", year)
	}
}

func TestWeekdayName(t *testing.T) {
	tests := map[int]string{0: "Mon", 6: "Sun", 7: "Mon", -1: "Sun"}
	for offset, want := range tests {
		if got := weekdayName(offset); got != want {
			t.Errorf("weekdayName(%d) = %q, want %q", offset, got, want)
		}
	}
}

func TestYearsCommand_LimitOverridesConfig(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "posts.yaml", testPosts)
	writeFile(t, dir, "postgraph.yaml", "posts: posts.yaml\noptions:\n  limit: 1\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "config limit", args: nil, want: 1},
		{name: "negative limit clears it", args: []string{"--limit=-1"}, want: 2},
		{name: "zero limit clears it", args: []string{"--limit", "0"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"years", "--json"}, tt.args...)...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			years, ok := decodeJSON(t, out)["years"].([]any)
			if !ok || len(years) != tt.want {
				t.Errorf("years = %v, want %d entries", years, tt.want)
			}
		})
	}
}
