package pattern

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLetter     = errors.New("unknown pattern letter")
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")
	ErrTooManyLetters    = errors.New("too many pattern letters")
	ErrEmptyPattern      = errors.New("empty pattern")

	ErrMissingField  = errors.New("missing field")
	ErrInvalidValue  = errors.New("invalid field value")
	ErrFieldConflict = errors.New("conflicting field values")
)

// ParseError reports where text stopped matching a pattern.
type ParseError struct {
	Pattern string
	Text    string
	Pos     int
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text %q could not be parsed at index %d with pattern %q: %s", e.Text, e.Pos, e.Pattern, e.Reason)
}

func parseErr(f *FormatSpec, text string, pos int, reason string) error {
	return &ParseError{Pattern: f.pattern, Text: text, Pos: pos, Reason: reason}
}
