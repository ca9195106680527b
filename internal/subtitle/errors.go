package subtitle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed matches every *ParseError via errors.Is.
	ErrMalformed = errors.New("malformed SubRip input")

	ErrUnsupportedEncoding = errors.New("unsupported text encoding")
)

// ParseError reports input that breaks the block grammar. Line is 1-based;
// Content holds the offending line when there is one.
type ParseError struct {
	Line    int
	Content string
	Reason  string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	if e.Content != "" {
		msg += fmt.Sprintf(": %q", e.Content)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// FormatError is returned by ParseTimestamp for tokens outside the
// [HH:]MM:SS,mmm grammar.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q", e.Token)
}
