package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shoesandsocks/postgraph/internal/output"
)

func TestAggregateCommand_Stdout(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "aggregate", "--posts", posts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	result := decodeJSON(t, out)
	counts := result["counts"].(map[string]any)
	if counts["2023-1"] != float64(2) || counts["2023-185"] != float64(1) || counts["2024-60"] != float64(1) {
		t.Errorf("counts = %v", counts)
	}
	years := result["years"].(map[string]any)
	if year := years["2024"].(map[string]any); year["days"] != float64(366) || year["offset"] != float64(0) {
		t.Errorf("2024 = %v", year)
	}
}

func TestAggregateCommand_YAML(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "aggregate", "--posts", posts, "--format", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"years:\n", "counts:\n", "2023-1: 2\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAggregateCommand_RoundTrip(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	for _, name := range []string{"graph.json", "graph.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if _, err := executeCommand(t, "aggregate", "--posts", posts, "--out", path); err != nil {
				t.Fatalf("aggregate error = %v", err)
			}

			fromPosts, err := executeCommand(t, "render", "--posts", posts)
			if err != nil {
				t.Fatalf("render --posts error = %v", err)
			}
			fromData, err := executeCommand(t, "render", "--data", path)
			if err != nil {
				t.Fatalf("render --data error = %v", err)
			}
			if fromPosts != fromData {
				t.Error("rendering the exported aggregate differs from rendering the posts")
			}
		})
	}
}

func TestAggregateCommand_BadFormat(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "aggregate", "--format", "csv")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
	if !strings.Contains(out, "unknown format") {
		t.Errorf("output = %q", out)
	}
}
