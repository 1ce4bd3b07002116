package postgraph

import (
	"maps"
	"slices"
)

// SelectYears returns the years of the index to render, in render order.
// Years start numerically ascending, are filtered by cfg.Only when it is
// non-empty, reversed for descending order, then cut to cfg.Limit.
func SelectYears(years map[int]YearMeta, cfg Config) []int {
	selected := slices.Sorted(maps.Keys(years))

	if len(cfg.Only) > 0 {
		selected = slices.DeleteFunc(selected, func(year int) bool {
			return !slices.Contains(cfg.Only, year)
		})
	}

	if cfg.Sort == SortDesc {
		slices.Reverse(selected)
	}

	if cfg.Limit > 0 && len(selected) > cfg.Limit {
		selected = selected[:cfg.Limit]
	}

	return selected
}
