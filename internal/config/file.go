package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/shoesandsocks/postgraph/internal/content"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// LocalFile is the project-level config file name, looked up in the
// working directory.
const LocalFile = "postgraph.yaml"

// GlobalFile is the config file name inside Dir().
const GlobalFile = "config.yaml"

// File is the on-disk configuration. Source names the default input and
// Options are the site-wide render defaults that flags override per call.
type File struct {
	content.Source `yaml:",inline"`

	Options postgraph.Options `yaml:"options,omitempty"`

	// Path is where the file was read from; empty for built-in defaults.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *File {
	return &File{
		Source: content.Source{ContentDir: "content"},
	}
}

// Load reads a YAML config file at path over the defaults.
func Load(path string) (*File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.Path = path
	return cfg, nil
}

// Resolve finds and loads the config for a run. An explicit path must exist.
// Otherwise ./postgraph.yaml, then Dir()/config.yaml are tried, and the
// built-in defaults are returned when neither exists.
func Resolve(explicit string) (*File, error) {
	if explicit != "" {
		return Load(explicit)
	}

	candidates := []string{LocalFile}
	if dir := Dir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, GlobalFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("checking config file: %w", err)
		}
		return Load(path)
	}

	return Default(), nil
}

// LoadOrCreateAt loads the config at path. If the file does not exist, it
// writes the defaults there first. The bool reports whether it was created.
func LoadOrCreateAt(path string) (*File, bool, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := Load(path)
		return cfg, false, err
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, false, fmt.Errorf("checking config file: %w", err)
	}

	cfg := Default()
	cfg.Options = postgraph.Options{
		Sort: postgraph.SortAsc,
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, false, fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return nil, false, fmt.Errorf("writing default config: %w", err)
	}

	cfg.Path = path
	return cfg, true, nil
}
