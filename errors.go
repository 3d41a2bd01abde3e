// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscene

import (
	"errors"
	"fmt"
)

// Errors reported by the cursor, parser, and scene extractor. Concrete errors
// returned by this module wrap one of these values, so callers can classify
// failures with errors.Is.
var (
	// ErrEndOfInput is reported when a read is attempted at the end of input.
	ErrEndOfInput = errors.New("end of input")

	// ErrOutOfRange is reported for a read or seek outside the input bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrTypeMismatch is reported when a value accessor is used on a value of
	// a different kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSyntax is reported for malformed JSON text.
	ErrSyntax = errors.New("syntax error")

	// ErrExtraInput is reported when non-whitespace input follows a complete
	// top-level value.
	ErrExtraInput = errors.New("extra input after value")

	// ErrDepthExceeded is reported when nested values exceed the depth budget
	// of the parser.
	ErrDepthExceeded = errors.New("depth limit exceeded")

	// ErrMissingField is reported when a required scene field is absent or has
	// the wrong type.
	ErrMissingField = errors.New("missing field")

	// ErrShapeMismatch is reported when a scene field has the wrong arity or
	// element type.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMalformedHeader is reported for a binary container whose magic number
	// or chunk type is not recognized.
	ErrMalformedHeader = errors.New("malformed header")
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

// SyntaxError is the concrete type of errors reported by the JSON parser.
type SyntaxError struct {
	Location LineCol
	Offset   int
	Message  string

	err error
}

// NewSyntaxError constructs a syntax error at the current position of c.  The
// resulting error wraps err, or ErrSyntax if err == nil.
func NewSyntaxError(c *Cursor, err error, msg string, args ...any) *SyntaxError {
	if err == nil {
		err = ErrSyntax
	}
	return &SyntaxError{
		Location: c.LineCol(),
		Offset:   c.Pos(),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
