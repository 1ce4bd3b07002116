package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// ErrNoSource is returned when a Source names neither a content directory,
// a posts file, nor a data file.
var ErrNoSource = errors.New("no content source: set a content directory, posts file, or data file")

// LoadPostsFile reads a YAML or JSON list of posts.
func LoadPostsFile(path string) ([]postgraph.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading posts file: %w", err)
	}

	var posts []postgraph.Post
	if err := yaml.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts file %s: %w", path, err)
	}
	return posts, nil
}

// LoadDataFile reads a precomputed aggregate in wire form (YAML or JSON).
func LoadDataFile(path string) (*postgraph.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	// Years are read with string keys so JSON files, whose keys are always
	// strings, decode the same way as YAML ones.
	var file struct {
		Years  map[string]postgraph.YearMeta `yaml:"years"`
		Counts map[string]int                `yaml:"counts"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}

	data := &postgraph.Data{
		Years:  make(map[int]postgraph.YearMeta, len(file.Years)),
		Counts: file.Counts,
	}
	for key, meta := range file.Years {
		year, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parsing data file %s: year key %q: %w", path, key, err)
		}
		data.Years[year] = meta
	}
	if data.Counts == nil {
		data.Counts = map[string]int{}
	}
	return data, nil
}

// Source names where a render call gets its input. DataFile takes
// precedence, then PostsFile, then ContentDir.
type Source struct {
	ContentDir string `json:"content_dir,omitempty" yaml:"content,omitempty"`
	PostsFile  string `json:"posts_file,omitempty"  yaml:"posts,omitempty"`
	DataFile   string `json:"data_file,omitempty"   yaml:"data,omitempty"`
}

// IsZero reports whether no input is named.
func (s Source) IsZero() bool {
	return s.ContentDir == "" && s.PostsFile == "" && s.DataFile == ""
}

// Input is what a Source yields: posts to aggregate, or a precomputed aggregate.
type Input struct {
	Posts []postgraph.Post
	Data  *postgraph.Data
}

// Load reads the input named by s.
func (s Source) Load(ctx context.Context, loader *Loader) (*Input, error) {
	switch {
	case s.DataFile != "":
		data, err := LoadDataFile(s.DataFile)
		if err != nil {
			return nil, err
		}
		return &Input{Data: data}, nil
	case s.PostsFile != "":
		posts, err := LoadPostsFile(s.PostsFile)
		if err != nil {
			return nil, err
		}
		return &Input{Posts: posts}, nil
	case s.ContentDir != "":
		if loader == nil {
			loader = NewLoader(nil)
		}
		posts, err := loader.LoadDir(ctx, s.ContentDir)
		if err != nil {
			return nil, err
		}
		return &Input{Posts: posts}, nil
	default:
		return nil, ErrNoSource
	}
}

// Merge returns override when it names any input, otherwise s.
func (s Source) Merge(override Source) Source {
	if override.IsZero() {
		return s
	}
	return override
}

// Build resolves opts for this input and returns the aggregate to render.
// A precomputed aggregate from a data file replaces any data in opts.
func (in *Input) Build(opts postgraph.Options) (*postgraph.Aggregate, postgraph.Config, error) {
	if in.Data != nil {
		opts = opts.Merge(postgraph.Options{Data: in.Data})
	}
	cfg := opts.Resolve()

	agg, err := postgraph.Build(in.Posts, cfg)
	if err != nil {
		return nil, postgraph.Config{}, err
	}
	return agg, cfg, nil
}
