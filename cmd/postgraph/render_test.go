package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shoesandsocks/postgraph/internal/output"
)

func TestRenderCommand(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "defaults",
			args: []string{"render", "--posts", posts},
			want: []string{"<style>\n:root {\n  --epg-box: #e9ecef;", `<div class="epg__year">2023</div>`, `<div class="epg__year">2024</div>`},
		},
		{
			name:    "selection",
			args:    []string{"render", "--posts", posts, "--sort", "desc", "--limit", "1"},
			want:    []string{`<div class="epg__year">2024</div>`},
			notWant: []string{`<div class="epg__year">2023</div>`},
		},
		{
			name:    "only",
			args:    []string{"render", "--posts", posts, "--only", "2023"},
			want:    []string{`<div class="epg__year">2023</div>`},
			notWant: []string{"2024</div>"},
		},
		{
			name:    "markup flags",
			args:    []string{"render", "--posts", posts, "--no-styles", "--hyperlinks", "--prefix", "blog"},
			want:    []string{`<div class="blog-epg">`, `<a href="/2023">2023</a>`, `<a href="/2023/07">Jul</a>`},
			notWant: []string{"<style>"},
		},
		{
			name: "colors and selectors",
			args: []string{"render", "--posts", posts, "--highlight-color", "#f00", "--selector-dark", ".dark", "--no-labels"},
			want: []string{".dark {\n  --epg-box: #2d333b;\n  --epg-box-highlight: #f00;", ".epg__year, .epg__months {\n  display: none;\n}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v\n%s", err, out)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output contains %q", notWant)
				}
			}
		})
	}
}

func TestRenderCommand_JSON(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)

	out, err := executeCommand(t, "render", "--posts", posts, "--sort", "desc", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	result := decodeJSON(t, out)
	years, ok := result["years"].([]any)
	if !ok || len(years) != 2 || years[0] != float64(2024) {
		t.Errorf("years = %v, want [2024 2023]", result["years"])
	}
	if html, _ := result["html"].(string); !strings.HasPrefix(html, "<style>") {
		t.Errorf("html = %.40q", html)
	}
}

func TestRenderCommand_Out(t *testing.T) {
	dir := isolate(t)
	posts := writeFile(t, dir, "posts.yaml", testPosts)
	path := filepath.Join(dir, "graph.html")

	out, err := executeCommand(t, "render", "--posts", posts, "--out", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Wrote 2 years to "+path) {
		t.Errorf("output = %q", out)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(written), `<div class="epg__squares">`) {
		t.Error("written file is not a graph")
	}
}

func TestRenderCommand_ConfigDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "posts.yaml", testPosts)
	writeFile(t, dir, "postgraph.yaml", `posts: posts.yaml
options:
  hyperlinks: true
  sort: desc
  prefix: site
`)

	out, err := executeCommand(t, "render")
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, `<a href="/2024">2024</a>`) {
		t.Error("config hyperlinks not applied")
	}
	if strings.Index(out, "2024</a>") > strings.Index(out, "2023</a>") {
		t.Error("config sort not applied")
	}

	out, err = executeCommand(t, "render", "--hyperlinks=false", "--sort", "asc")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, "<a href") {
		t.Error("--hyperlinks=false did not override the config file")
	}
	if !strings.Contains(out, `<div class="site-epg">`) {
		t.Error("config prefix lost when other flags are given")
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := isolate(t)
	bad := writeFile(t, dir, "bad.yaml", "- date: yesterday-ish\n")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{name: "invalid date", args: []string{"render", "--posts", bad}, wantCode: output.ExitUserError, wantMsg: "yesterday-ish"},
		{name: "missing posts file", args: []string{"render", "--posts", filepath.Join(dir, "nope.yaml")}, wantCode: output.ExitUserError, wantMsg: "nope.yaml"},
		{name: "missing content dir", args: []string{"render"}, wantCode: output.ExitUserError, wantMsg: "content"},
		{name: "missing config", args: []string{"render", "--config", filepath.Join(dir, "none.yaml")}, wantCode: output.ExitUserError, wantMsg: "none.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if got := output.GetExitCode(err); got != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (err: %v)", got, tt.wantCode, err)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output %q should mention %q", out, tt.wantMsg)
			}
		})
	}
}
