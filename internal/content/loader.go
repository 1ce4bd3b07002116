package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/sync/errgroup"

	"github.com/shoesandsocks/postgraph/internal/git"
	"github.com/shoesandsocks/postgraph/internal/postgraph"
)

// pageExtensions lists the file types treated as posts.
var pageExtensions = []string{".md", ".markdown", ".html"}

// frontMatter holds the fields read from a page header.
// Date is untyped because TOML and YAML decoders may produce time values.
type frontMatter struct {
	Date  any  `yaml:"date" toml:"date" json:"date"`
	Draft bool `yaml:"draft" toml:"draft" json:"draft"`
	Data  *struct {
		Date any `yaml:"date" toml:"date" json:"date"`
	} `yaml:"data" toml:"data" json:"data"`
}

// Loader reads posts from a content directory.
type Loader struct {
	logger      *slog.Logger
	concurrency int
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger, concurrency: runtime.GOMAXPROCS(0)}
}

// LoadDir walks dir and returns one post per page, in path order.
// Drafts are skipped. A page without a date falls back to its modification time.
func (l *Loader) LoadDir(ctx context.Context, dir string) ([]postgraph.Post, error) {
	paths, err := collectPages(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*postgraph.Post, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(l.concurrency)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			post, err := l.loadPage(ctx, path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			results[i] = post
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	posts := make([]postgraph.Post, 0, len(results))
	for _, post := range results {
		if post != nil {
			posts = append(posts, *post)
		}
	}

	l.logger.Debug("loaded content", "dir", dir, "pages", len(paths), "posts", len(posts))
	return posts, nil
}

// collectPages returns the sorted page paths under dir.
func collectPages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(pageExtensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content directory %s: %w", dir, err)
	}
	slices.Sort(paths)
	return paths, nil
}

// loadPage reads one page. It returns nil for drafts.
func (l *Loader) loadPage(ctx context.Context, path string) (*postgraph.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(raw), &fm); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}

	if fm.Draft {
		l.logger.Debug("skipping draft", "path", path)
		return nil, nil
	}

	post := &postgraph.Post{Date: dateString(fm.Date)}
	if fm.Data != nil {
		if nested := dateString(fm.Data.Date); nested != "" {
			post.Data = &postgraph.PostData{Date: nested}
		}
	}

	switch keyword := post.RawDate(); strings.ToLower(keyword) {
	case "", "last modified", "created":
		date, err := l.fileDate(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("using file modification time", "path", path, "date", date, "front_matter", keyword)
		post.Date, post.Data = date, nil
	case "git last modified", "git created":
		date, err := l.gitDate(ctx, path, keyword)
		if err != nil {
			return nil, err
		}
		post.Date, post.Data = date, nil
	}

	return post, nil
}

// fileDate returns the page's modification time. Creation times are not
// portable, so "Created" also resolves here.
func (l *Loader) fileDate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return info.ModTime().Format(time.RFC3339), nil
}

// gitDate resolves "git Created" and "git Last Modified" from the page's
// commit history, falling back to the modification time for pages git
// cannot date.
func (l *Loader) gitDate(ctx context.Context, path, keyword string) (string, error) {
	lookup := git.LastModified
	if strings.EqualFold(keyword, "git created") {
		lookup = git.Created
	}

	date, err := lookup(ctx, path)
	if err == nil {
		l.logger.Debug("using commit date", "path", path, "date", date, "front_matter", keyword)
		return date.Format(time.RFC3339), nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	level := slog.LevelWarn
	if errors.Is(err, git.ErrUntracked) {
		level = slog.LevelDebug
	}
	l.logger.Log(ctx, level, "cannot date page from git, using modification time", "path", path, "error", err)
	return l.fileDate(path)
}

// dateString normalizes a decoded front-matter date to text.
func dateString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
