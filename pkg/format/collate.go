package format

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings by locale rules. It is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator creates a Collator for tag. With numeric set, digit runs compare by
// value so "file2" sorts before "file10".
func NewCollator(tag language.Tag, numeric bool) *Collator {
	var opts []collate.Option
	if numeric {
		opts = append(opts, collate.Numeric)
	}
	return &Collator{c: collate.New(tag, opts...)}
}

// Collator returns a Collator for the formatter's locale.
func (f *Formatter) Collator(numeric bool) *Collator {
	return NewCollator(f.tag, numeric)
}

// Compare returns -1, 0 or 1. Strings the locale considers equal fall back to byte
// order, so only identical strings compare as 0.
func (c *Collator) Compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort sorts names in ascending order in place.
func (c *Collator) Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return c.Compare(names[i], names[j]) < 0
	})
}
