package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postgraph.yaml")
	body := `content: site/posts
options:
  sort: desc
  limit: 3
  only: [2023, 2024]
  hyperlinks: true
  prefix: blog
  textColorDark: "#eee"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ContentDir != "site/posts" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "site/posts")
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	opts := cfg.Options
	if opts.Sort != "desc" || opts.Limit == nil || *opts.Limit != 3 || opts.Prefix != "blog" || opts.TextColorDark != "#eee" {
		t.Errorf("Options = %+v", opts)
	}
	if !slices.Equal(opts.Only, []int{2023, 2024}) {
		t.Errorf("Only = %v, want [2023 2024]", opts.Only)
	}
	if opts.Hyperlinks == nil || !*opts.Hyperlinks {
		t.Error("Hyperlinks not set")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("options: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestResolve(t *testing.T) {
	t.Run("defaults when nothing exists", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("POSTGRAPH_CONFIG_HOME", t.TempDir())

		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Path != "" || cfg.ContentDir != "content" {
			t.Errorf("cfg = %+v, want built-in defaults", cfg)
		}
	})

	t.Run("local file before global", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		global := t.TempDir()
		t.Setenv("POSTGRAPH_CONFIG_HOME", global)

		if err := os.WriteFile(filepath.Join(global, GlobalFile), []byte("content: global\n"), 0o600); err != nil {
			t.Fatalf("writing global: %v", err)
		}
		cfg, err := Resolve("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ContentDir != "global" {
			t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "global")
		}

		if err := os.WriteFile(LocalFile, []byte("content: local\n"), 0o600); err != nil {
			t.Fatalf("writing local: %v", err)
		}
		cfg, err = Resolve("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ContentDir != "local" {
			t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "local")
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		if _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing explicit config")
		}
	})
}

func TestLoadOrCreateAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "postgraph.yaml")

	cfg, created, err := LoadOrCreateAt(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("created = false, want true on first call")
	}
	if cfg.Options.Sort != "asc" {
		t.Errorf("Sort = %q, want %q", cfg.Options.Sort, "asc")
	}

	again, created, err := LoadOrCreateAt(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("created = true, want false when file exists")
	}
	if again.ContentDir != "content" || again.Options.Sort != "asc" {
		t.Errorf("reloaded config = %+v", again)
	}
}
