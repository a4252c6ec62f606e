package fsort

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Line is one input record.
type Line struct {
	// Number is the 1-based position of the line in the input.
	Number int
	Text   string
}

type field struct {
	text string
	key  string
}

// Processor sorts or checks the fields of a single line. It keeps no state between lines but reuses a case mapper,
// so it must not be shared between goroutines.
type Processor struct {
	opts  Options
	cmp   Comparator
	upper cases.Caser
}

// NewProcessor returns a processor for opts.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		opts:  opts,
		cmp:   NewComparator(opts),
		upper: cases.Upper(language.Und),
	}
}

// Comparator returns the comparator used to order fields.
func (p *Processor) Comparator() Comparator {
	return p.cmp
}

// fields splits text and computes the comparison key of every field once.
func (p *Processor) fields(text string) []field {
	parts := Split(text, p.opts)
	res := make([]field, len(parts))
	for i, part := range parts {
		res[i] = field{text: part, key: part}
		if p.opts.FoldCase {
			res[i].key = p.upper.String(part)
		}
	}

	return res
}

// Sort returns text with its fields reordered and joined with the delimiter.
// The relative order of equivalent fields is unspecified.
func (p *Processor) Sort(text string) string {
	fields := p.fields(text)
	slices.SortFunc(fields, func(a, b field) int {
		return p.cmp.CompareKeys(a.key, b.key)
	})

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.text
	}

	return Join(parts, p.opts)
}

// FirstUnsorted returns the index of the first field of text that sorts strictly before the field preceding it,
// or -1 if the fields are in order.
func (p *Processor) FirstUnsorted(text string) int {
	fields := p.fields(text)
	for i := 1; i < len(fields); i++ {
		if p.cmp.CompareKeys(fields[i-1].key, fields[i].key) > 0 {
			return i
		}
	}

	return -1
}

// Process sorts line, or in check mode verifies it. A line that fails the check returns a *CheckError.
func (p *Processor) Process(line Line) (string, error) {
	if !p.opts.Check {
		return p.Sort(line.Text), nil
	}
	idx := p.FirstUnsorted(line.Text)
	if idx >= 0 {
		return "", &CheckError{Line: line.Number, Field: idx}
	}

	return "", nil
}
