package fsort

import (
	"strings"
)

// Split returns the fields of line. The fields are substrings of line in their original order.
//
// In delimiter mode every occurrence of the delimiter separates two fields, so empty fields are kept and an empty line
// has a single empty field. In whitespace mode runs of white space separate fields and a blank line has no field.
func Split(line string, opts Options) []string {
	if opts.Whitespace {
		return strings.Fields(line)
	}

	return strings.Split(line, string(opts.Delimiter))
}

// Join concatenates fields with the delimiter. Join(Split(line, opts), opts) == line in delimiter mode.
func Join(fields []string, opts Options) string {
	return strings.Join(fields, string(opts.Delimiter))
}
