// Package scope normalises the active framework filter: an optional set of
// framework ids restricting which questions are in scope for a computation.
// An empty filter means "no restriction, use all enabled frameworks".
package scope

import (
	"sort"
	"strings"
)

// Filter is an immutable framework restriction. The zero value is the
// empty filter.
type Filter struct {
	ids map[string]struct{}
}

// Parse builds a filter from a comma-separated list, trimming whitespace
// and dropping empty entries.
func Parse(s string) Filter {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return FromIDs(ids)
}

// FromIDs builds a filter from a slice of framework ids.
func FromIDs(ids []string) Filter {
	if len(ids) == 0 {
		return Filter{}
	}
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			m[id] = struct{}{}
		}
	}
	if len(m) == 0 {
		return Filter{}
	}
	return Filter{ids: m}
}

// Empty reports whether the filter imposes no restriction.
func (f Filter) Empty() bool {
	return len(f.ids) == 0
}

// Selected reports whether the framework id passes the restriction. Every
// id passes an empty filter.
func (f Filter) Selected(id string) bool {
	if f.Empty() {
		return true
	}
	_, ok := f.ids[id]
	return ok
}

// IDs returns the restricted ids sorted, nil when empty. Sorting keeps
// serialized filters identical across runs.
func (f Filter) IDs() []string {
	if f.Empty() {
		return nil
	}
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
