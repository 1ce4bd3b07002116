package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrUntracked is returned for files with no commits.
var ErrUntracked = errors.New("file has no commits")

// LastModified returns the author date of the latest commit touching path.
func LastModified(ctx context.Context, path string) (time.Time, error) {
	return authorDate(ctx, path, "log", "-1", "--format=%aI")
}

// Created returns the author date of the commit that added path, following
// renames.
func Created(ctx context.Context, path string) (time.Time, error) {
	return authorDate(ctx, path, "log", "--diff-filter=A", "--follow", "-1", "--format=%aI")
}

func authorDate(ctx context.Context, path string, args ...string) (time.Time, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	out, err := RunContext(ctx, dir, append(args, "--", name)...)
	if err != nil {
		return time.Time{}, err
	}

	line, _, _ := strings.Cut(out, "\n")
	if line == "" {
		return time.Time{}, fmt.Errorf("%s: %w", path, ErrUntracked)
	}

	date, err := time.Parse(time.RFC3339, line)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing commit date %q: %w", line, err)
	}
	return date, nil
}
