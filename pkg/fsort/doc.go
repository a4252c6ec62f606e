// Package fsort sorts the fields within each line of a text stream.
//
// Every line is split into fields, either on a single delimiter character or on runs of white space. The fields are
// then reordered with a Comparator and joined back with the delimiter. In check mode nothing is rewritten: the
// Driver verifies that the fields of every line are already in order and stops on the first line that is not.
//
// Processing is strictly sequential. A line is read, processed and written before the next one is read, so the output
// order always matches the input order and a check failure always reports the lowest failing line number.
//
// The only state shared between lines is the line counter owned by the Driver. Options are resolved once by the
// caller and never modified afterwards.
package fsort
