package postgraph

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a post date matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid post date")

// dateLayouts are tried in order. Offsets in RFC 3339 values are kept so the
// calendar date is the one written in the source.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Post is one dated item from a site's post collection.
// Hosts that nest front matter under a data field populate Data instead of Date.
type Post struct {
	Date string    `json:"date,omitempty" yaml:"date,omitempty"`
	Data *PostData `json:"data,omitempty" yaml:"data,omitempty"`
}

// PostData holds front-matter fields nested under a post's data field.
type PostData struct {
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
}

// RawDate returns the nested data date when present, else the top-level date.
func (p Post) RawDate() string {
	if p.Data != nil && p.Data.Date != "" {
		return p.Data.Date
	}
	return p.Date
}

// ParseDate parses a post date in any accepted layout.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
