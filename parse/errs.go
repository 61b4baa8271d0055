package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel for all parse failures. Errors returned from
// Parse unwrap to it.
var ErrParse = errors.New("parse error")

// LeftoverError reports input the grammar could not consume. Parsing is
// all-or-nothing, so any unconsumed non-whitespace input fails the whole
// document.
type LeftoverError struct {
	// Leftover is the unconsumed input, trimmed of surrounding whitespace.
	Leftover string
	// Offset is the byte offset of the first unconsumed non-whitespace
	// byte in the original input.
	Offset int
}

func (e *LeftoverError) Error() string {
	return fmt.Sprintf("not formatting, leftover: %s", e.Leftover)
}

func (e *LeftoverError) Unwrap() error {
	return ErrParse
}
