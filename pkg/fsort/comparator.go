package fsort

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Comparator orders fields. Fields are compared byte by byte, which for UTF-8 text is the code point order.
//
// A Comparator is a plain value built once per run and shared by every line.
type Comparator struct {
	foldCase bool
	reverse  bool
}

// NewComparator builds the comparator described by opts. The numeric switch is ignored.
func NewComparator(opts Options) Comparator {
	return Comparator{
		foldCase: opts.FoldCase,
		reverse:  opts.Reverse,
	}
}

// Compare returns -1 if a sorts before b, +1 if it sorts after and 0 if they are equivalent.
func (c Comparator) Compare(a, b string) int {
	return c.CompareKeys(c.Key(a), c.Key(b))
}

// Key returns the form of field the comparator actually compares.
func (c Comparator) Key(field string) string {
	if !c.foldCase {
		return field
	}

	return cases.Upper(language.Und).String(field)
}

// CompareKeys compares two values returned by Key.
func (c Comparator) CompareKeys(a, b string) int {
	if c.reverse {
		a, b = b, a
	}

	return strings.Compare(a, b)
}
