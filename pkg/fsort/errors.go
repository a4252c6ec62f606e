package fsort

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotSorted        = errors.New("not sorted")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrReaderMustBeSet  = errors.New("reader must be set")
	ErrWriterMustBeSet  = errors.New("writer must be set")
)

// CheckError is returned in check mode for the first line whose fields are out of order.
type CheckError struct {
	// Line is the 1-based number of the failing line.
	Line int
	// Field is the 0-based index of the first field that sorts before its predecessor.
	Field int
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("not sorted at line #%d", e.Line)
}

// Is makes errors.Is(err, ErrNotSorted) hold for every CheckError.
func (e *CheckError) Is(target error) bool {
	return target == ErrNotSorted
}
