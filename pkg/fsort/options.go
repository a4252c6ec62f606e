package fsort

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DefaultDelimiter separates fields when no other delimiter is configured.
const DefaultDelimiter = '\t'

// Options configures a run. The zero value is not usable, start from DefaultOptions.
type Options struct {
	// Delimiter splits fields in delimiter mode and always joins them on output.
	Delimiter rune
	// Whitespace splits fields on runs of white space instead of Delimiter.
	Whitespace bool
	// FoldCase compares fields as if they were upper-cased.
	FoldCase bool
	// Numeric is reserved for numeric comparison. It is accepted and has no effect.
	Numeric bool
	// Reverse inverts the comparison, for sorting and checking alike.
	Reverse bool
	// Check verifies the order of the fields instead of rewriting the lines.
	Check bool
}

// DefaultOptions returns options with a tab delimiter and every switch off.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

// Validate reports whether the options can be used by a Driver.
func (o Options) Validate() error {
	if !utf8.ValidRune(o.Delimiter) {
		return errors.Wrapf(ErrInvalidDelimiter, "%U is not a valid character", o.Delimiter)
	}
	if o.Delimiter == '\n' || o.Delimiter == '\r' {
		return errors.Wrap(ErrInvalidDelimiter, "line terminators cannot separate fields")
	}

	return nil
}
