package postgraph

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// YearMeta describes the grid layout of one calendar year.
type YearMeta struct {
	// Offset is the weekday of January 1, Monday=0 through Sunday=6.
	Offset int `json:"offset" yaml:"offset"`
	// Days is 366 for leap years, otherwise 365.
	Days int `json:"days" yaml:"days"`
}

// DayKey identifies one calendar day by year and 1-based day of year.
type DayKey struct {
	Year int
	Day  int
}

// String returns the key in its wire form, "YYYY-D".
func (k DayKey) String() string {
	return strconv.Itoa(k.Year) + "-" + strconv.Itoa(k.Day)
}

// ParseDayKey parses a "YYYY-D" key.
func ParseDayKey(s string) (DayKey, error) {
	yearPart, dayPart, ok := strings.Cut(s, "-")
	if !ok {
		return DayKey{}, fmt.Errorf("day key %q: expected YYYY-D", s)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return DayKey{}, fmt.Errorf("day key %q: bad year: %w", s, err)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return DayKey{}, fmt.Errorf("day key %q: bad day: %w", s, err)
	}
	return DayKey{Year: year, Day: day}, nil
}

// Aggregate is the activity index: layout per observed year plus post
// counts per day. Counts only holds days with at least one post.
type Aggregate struct {
	Years  map[int]YearMeta
	Counts map[DayKey]int
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Years:  make(map[int]YearMeta),
		Counts: make(map[DayKey]int),
	}
}

// IsLeapYear reports whether year has 366 days in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NewYearMeta computes the grid layout for year.
func NewYearMeta(year int) YearMeta {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := 365
	if IsLeapYear(year) {
		days = 366
	}
	return YearMeta{
		Offset: (int(jan1.Weekday()) + 6) % 7,
		Days:   days,
	}
}

// AggregatePosts builds the activity index for posts.
// The first post with an unparseable date aborts the whole call.
func AggregatePosts(posts []Post) (*Aggregate, error) {
	agg := NewAggregate()
	for _, post := range posts {
		date, err := ParseDate(post.RawDate())
		if err != nil {
			return nil, err
		}
		agg.Add(date)
	}
	return agg, nil
}

// Add records one post on the calendar date of t.
func (a *Aggregate) Add(t time.Time) {
	year := t.Year()
	if _, ok := a.Years[year]; !ok {
		a.Years[year] = NewYearMeta(year)
	}
	a.Counts[DayKey{Year: year, Day: t.YearDay()}]++
}

// Count returns the number of posts on the given day.
func (a *Aggregate) Count(year, day int) int {
	return a.Counts[DayKey{Year: year, Day: day}]
}

// YearStats summarizes one year of the index.
type YearStats struct {
	Year       int `json:"year"`
	Offset     int `json:"offset"`
	Days       int `json:"days"`
	Posts      int `json:"posts"`
	ActiveDays int `json:"active_days"`
}

// Stats returns per-year totals for the given years, in the given order.
// Years absent from the index are skipped.
func (a *Aggregate) Stats(years []int) []YearStats {
	byYear := make(map[int]*YearStats, len(years))
	for key, count := range a.Counts {
		stats, ok := byYear[key.Year]
		if !ok {
			stats = &YearStats{}
			byYear[key.Year] = stats
		}
		if count > 0 {
			stats.Posts += count
			stats.ActiveDays++
		}
	}

	result := make([]YearStats, 0, len(years))
	for _, year := range years {
		meta, ok := a.Years[year]
		if !ok {
			continue
		}
		stats := YearStats{Year: year, Offset: meta.Offset, Days: meta.Days}
		if counted, ok := byYear[year]; ok {
			stats.Posts = counted.Posts
			stats.ActiveDays = counted.ActiveDays
		}
		result = append(result, stats)
	}
	return result
}

// Data is the wire form of an Aggregate, as read from and written to data files.
type Data struct {
	Years  map[int]YearMeta `json:"years"  yaml:"years"`
	Counts map[string]int   `json:"counts" yaml:"counts"`
}

// Data converts the aggregate to its wire form.
func (a *Aggregate) Data() *Data {
	data := &Data{
		Years:  make(map[int]YearMeta, len(a.Years)),
		Counts: make(map[string]int, len(a.Counts)),
	}
	for year, meta := range a.Years {
		data.Years[year] = meta
	}
	for key, count := range a.Counts {
		data.Counts[key.String()] = count
	}
	return data
}

// Aggregate converts wire data to an Aggregate. Values are taken as given;
// only count keys that are not "YYYY-D" fail.
func (d *Data) Aggregate() (*Aggregate, error) {
	agg := NewAggregate()
	if d == nil {
		return agg, nil
	}
	for year, meta := range d.Years {
		agg.Years[year] = meta
	}
	keys := make([]string, 0, len(d.Counts))
	for key := range d.Counts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, raw := range keys {
		key, err := ParseDayKey(raw)
		if err != nil {
			return nil, err
		}
		agg.Counts[key] = d.Counts[raw]
	}
	return agg, nil
}
