package domain

import (
	"unicode"
	"unicode/utf8"
)

// Filter selects a subset of goals for display.
// Besides the status filters below, any category name is a valid filter.
type Filter string

// Status filters.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// FilterKeys returns the filters offered to the user:
// all, active, completed, then one per category in table order.
func FilterKeys(categories CategoryTable) []Filter {
	keys := []Filter{FilterAll, FilterActive, FilterCompleted}
	for _, c := range categories {
		keys = append(keys, Filter(c.Name))
	}
	return keys
}

// Label returns the filter as displayed on a chip (first letter upper-cased).
func (f Filter) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Apply returns the goals matching f, in their original order.
// A filter that is neither a status nor a category in the table
// (for example a stale selection) selects every goal.
func (f Filter) Apply(goals []Goal, categories CategoryTable) []Goal {
	if !f.Known(categories) {
		f = FilterAll
	}
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if f.matches(g) {
			out = append(out, g)
		}
	}
	return out
}

func (f Filter) matches(g Goal) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCompleted:
		return g.Completed
	case FilterActive:
		return !g.Completed
	}
	return g.Category == string(f)
}

// Known reports whether f is a status filter or a category in the table.
func (f Filter) Known(categories CategoryTable) bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	_, ok := categories.Lookup(string(f))
	return ok
}
