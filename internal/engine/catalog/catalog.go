package catalog

import (
	"log/slog"
	"regexp"
	"sort"
)

// Spec is an uncompiled category definition.
type Spec struct {
	Key      string
	Label    string
	Severity string // critical, high, medium, low
	Weight   int    // 0-100, drives iterative search order
	Patterns []string
	Remedies []string
}

// Category is a compiled pattern category. Read-only after construction.
type Category struct {
	Key      string
	Label    string
	Severity string
	Weight   int
	Patterns []*regexp.Regexp
	Remedies []string
}

// Catalog is an immutable set of pattern categories ordered by descending
// weight. Narrowing produces a fresh value, so concurrent analyses never
// share mutable catalog state.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New compiles specs into a Catalog. Patterns are matched case-insensitively.
// A pattern that fails to compile is skipped with a warning; the rest of its
// category stays live. A category whose patterns all fail is dropped.
func New(specs []Spec) *Catalog {
	categories := make([]Category, 0, len(specs))
	for _, s := range specs {
		patterns := make([]*regexp.Regexp, 0, len(s.Patterns))
		for _, p := range s.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				slog.Warn("skipping malformed pattern", "category", s.Key, "pattern", p, "error", err)
				continue
			}
			patterns = append(patterns, re)
		}
		if len(patterns) == 0 {
			slog.Warn("dropping category with no valid patterns", "category", s.Key)
			continue
		}
		categories = append(categories, Category{
			Key:      s.Key,
			Label:    s.Label,
			Severity: s.Severity,
			Weight:   s.Weight,
			Patterns: patterns,
			Remedies: s.Remedies,
		})
	}

	// Stable: declaration order breaks weight ties.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Weight > categories[j].Weight
	})

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.Key] = i
	}
	return &Catalog{categories: categories, index: index}
}

// Categories returns the categories in descending-weight order.
// Callers must not modify the returned slice.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Top returns a narrowed catalog holding the n highest-weight categories.
// If n exceeds the catalog size, the full catalog is returned.
func (c *Catalog) Top(n int) *Catalog {
	if n >= len(c.categories) {
		return c
	}
	narrowed := c.categories[:n]
	index := make(map[string]int, n)
	for i, cat := range narrowed {
		index[cat.Key] = i
	}
	return &Catalog{categories: narrowed, index: index}
}

// Lookup returns the category for key.
func (c *Catalog) Lookup(key string) (Category, bool) {
	i, ok := c.index[key]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Keys returns the category keys in descending-weight order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.categories))
	for i, cat := range c.categories {
		keys[i] = cat.Key
	}
	return keys
}
