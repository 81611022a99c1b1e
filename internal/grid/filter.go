package grid

import (
	"fmt"
	"strings"
)

// Filter selects which records are visible
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterInactive
)

// Filters returns the filters in tab order
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterInactive}
}

// String returns the tab label of the filter
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterInactive:
		return "Inactive"
	default:
		return "All"
	}
}

// Match reports whether r is visible under f
func (f Filter) Match(r Record) bool {
	switch f {
	case FilterActive:
		return r.Status == Active
	case FilterInactive:
		return r.Status == Inactive
	default:
		return true
	}
}

// ParseFilter converts a tab label to a Filter, ignoring case
func ParseFilter(s string) (Filter, error) {
	for _, f := range Filters() {
		if strings.EqualFold(f.String(), s) {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}
