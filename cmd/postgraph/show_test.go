package main

import (
	"strings"
	"testing"

	"github.com/shoesandsocks/postgraph/internal/output"
	"github.com/shoesandsocks/postgraph/internal/termgraph"
)

func TestShowCommand(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "show", "--posts", posts, "--only", "2023", "--scheme", "dark", "--color", "never")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}

	for _, want := range []string{"2023\n", "Mon ", "Sun ", "3 posts on 2 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, termgraph.Cell); n != 365 {
		t.Errorf("cells = %d, want 365", n)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output contains escape codes with --color never")
	}
}

func TestShowCommand_JSON(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "show", "--posts", posts, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	years, ok := decodeJSON(t, out)["years"].([]any)
	if !ok || len(years) != 2 {
		t.Fatalf("years = %v", years)
	}
	first := years[0].(map[string]any)
	if first["year"] != float64(2023) || first["posts"] != float64(3) || first["active_days"] != float64(2) {
		t.Errorf("first year = %v", first)
	}
}

func TestShowCommand_NoYears(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "show", "--posts", posts, "--only", "1999", "--scheme", "light")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "no years to show") {
		t.Errorf("output = %q", out)
	}
}

func TestShowCommand_BadScheme(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "show", "--scheme", "sepia")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}
