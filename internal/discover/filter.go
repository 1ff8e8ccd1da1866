package discover

import (
	"fmt"
	"strings"
)

// Filter decides which directory names are excluded from discovery.
// Matching is case-sensitive and exact: what is configured is what is
// excluded.
type Filter struct {
	exact    map[string]struct{}
	prefixes []string
}

// NewFilter builds a filter from an exact-name set and a prefix set.
// An empty prefix is rejected because it would exclude every directory.
func NewFilter(names, prefixes []string) (*Filter, error) {
	f := &Filter{exact: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		f.exact[name] = struct{}{}
	}
	for _, prefix := range prefixes {
		if prefix == "" {
			return nil, fmt.Errorf("discover: empty exclude prefix would exclude everything")
		}
		f.prefixes = append(f.prefixes, prefix)
	}
	return f, nil
}

// ShouldExclude reports whether a directory name must be pruned.
func (f *Filter) ShouldExclude(name string) bool {
	if f == nil {
		return false
	}
	if _, ok := f.exact[name]; ok {
		return true
	}
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
