// Package config loads fsort options from a TOML file.
//
// A file only needs the keys it wants to change, every other option keeps its default:
//
//	delimiter  = ","
//	fold_case  = true
//	reverse    = false
package config

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/askiada/go-fsort/pkg/fsort"
)

// EnvPath names the environment variable holding the default config file path.
const EnvPath = "FSORT_CONFIG"

var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrDelimiter  = errors.New("delimiter must be a single character")
)

// File is the content of a config file. Absent keys are nil.
type File struct {
	Delimiter  *string `toml:"delimiter"`
	WhiteSpace *bool   `toml:"white_space"`
	FoldCase   *bool   `toml:"fold_case"`
	Numeric    *bool   `toml:"numeric"`
	Reverse    *bool   `toml:"reverse"`
	Check      *bool   `toml:"check"`
}

// Path returns flagPath, or the path from EnvPath when flagPath is empty.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	return os.Getenv(EnvPath)
}

// Load reads the file at path and applies it on top of the default options.
// An empty path returns the defaults.
func Load(path string) (fsort.Options, error) {
	opts := fsort.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	var file File
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return opts, errors.Wrapf(err, "unable to decode %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return opts, errors.Wrapf(ErrUnknownKey, "%s: %s", path, strings.Join(keys, ", "))
	}

	err = file.Apply(&opts)
	if err != nil {
		return opts, errors.Wrap(err, path)
	}

	return opts, opts.Validate()
}

// Apply overwrites the options set in the file.
func (f File) Apply(opts *fsort.Options) error {
	if f.Delimiter != nil {
		delim, err := ParseDelimiter(*f.Delimiter)
		if err != nil {
			return err
		}
		opts.Delimiter = delim
	}
	setBool(&opts.Whitespace, f.WhiteSpace)
	setBool(&opts.FoldCase, f.FoldCase)
	setBool(&opts.Numeric, f.Numeric)
	setBool(&opts.Reverse, f.Reverse)
	setBool(&opts.Check, f.Check)

	return nil
}

// ParseDelimiter returns the only character of s.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Wrapf(ErrDelimiter, "got %q", s)
	}
	delim, size := utf8.DecodeRuneInString(s)
	if delim == utf8.RuneError && size == 1 {
		return 0, errors.Wrapf(ErrDelimiter, "got invalid UTF-8 %q", s)
	}

	return delim, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
