package browser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL           = errors.New("url is empty")
	ErrFileOpen           = errors.New("unable to open browsing history file")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrUnencodable        = errors.New("url cannot be encoded as a record")
)

// RecordError describes a seed file record that could not be parsed.
type RecordError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
