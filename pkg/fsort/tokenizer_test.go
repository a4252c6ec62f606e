package fsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-fsort/pkg/fsort"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	colon := fsort.DefaultOptions()
	colon.Delimiter = ':'
	blank := fsort.DefaultOptions()
	blank.Whitespace = true

	tcs := map[string]struct {
		line string
		opts fsort.Options
		want []string
	}{
		"tab":                     {line: "b\ta\tc", opts: fsort.DefaultOptions(), want: []string{"b", "a", "c"}},
		"empty field kept":        {line: "a::b", opts: colon, want: []string{"a", "", "b"}},
		"leading and trailing":    {line: ":a:", opts: colon, want: []string{"", "a", ""}},
		"empty line one field":    {line: "", opts: colon, want: []string{""}},
		"no delimiter":            {line: "abc", opts: colon, want: []string{"abc"}},
		"multibyte delimiter":     {line: "x→y→z", opts: fsort.Options{Delimiter: '→'}, want: []string{"x", "y", "z"}},
		"whitespace collapsed":    {line: "  a   b c  ", opts: blank, want: []string{"a", "b", "c"}},
		"whitespace mixed":        {line: "a\t \tb\vc", opts: blank, want: []string{"a", "b", "c"}},
		"whitespace empty line":   {line: "", opts: blank, want: []string{}},
		"whitespace blank line":   {line: " \t  ", opts: blank, want: []string{}},
		"whitespace keeps colons": {line: "a:b c", opts: blank, want: []string{"a:b", "c"}},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, fsort.Split(tc.line, tc.opts))
		})
	}
}

func TestJoinAfterSplitRoundTrip(t *testing.T) {
	t.Parallel()

	lines := []string{"", ":", "::", "a", "a::b", ":x:y:", "é:ß:日本"}
	opts := fsort.DefaultOptions()
	opts.Delimiter = ':'

	for _, line := range lines {
		assert.Equal(t, line, fsort.Join(fsort.Split(line, opts), opts), "line %q", line)
	}
}
