// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscene

import (
	"fmt"

	"go4.org/mem"
)

// A Cursor is a bounds-checked read position over an immutable input.  The
// cursor tracks the current line as it moves, so that errors can report a
// source location.
//
// The position of a cursor is always in the closed range [0, Len()]. Reading
// or seeking outside that range reports an error wrapping ErrEndOfInput or
// ErrOutOfRange, and leaves the position unchanged.
//
// A Cursor is not safe for concurrent use. The caller must not modify the
// underlying input while the cursor is in use.
type Cursor struct {
	src  mem.RO
	pos  int
	line int // count of newlines in src[:pos]
}

// NewCursor constructs a cursor positioned at the beginning of src.
func NewCursor(src mem.RO) *Cursor { return &Cursor{src: src} }

// NewBytesCursor is shorthand for NewCursor(mem.B(src)).
func NewBytesCursor(src []byte) *Cursor { return NewCursor(mem.B(src)) }

// Pos returns the current byte offset of c.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the input in bytes.
func (c *Cursor) Len() int { return c.src.Len() }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return c.src.Len() - c.pos }

// AtEnd reports whether c has consumed all its input.
func (c *Cursor) AtEnd() bool { return c.pos >= c.src.Len() }

// Line returns the 1-based line number of the current position.
func (c *Cursor) Line() int { return c.line + 1 }

// LineCol returns the line and column of the current position.
func (c *Cursor) LineCol() LineCol {
	col := 0
	for i := c.pos - 1; i >= 0 && c.src.At(i) != '\n'; i-- {
		col++
	}
	return LineCol{Line: c.line + 1, Column: col}
}

// PeekByte returns the byte at the current position without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	if c.AtEnd() {
		return 0, c.errEnd()
	}
	return c.src.At(c.pos), nil
}

// NextByte consumes and returns the byte at the current position.
func (c *Cursor) NextByte() (byte, error) {
	if c.AtEnd() {
		return 0, c.errEnd()
	}
	b := c.src.At(c.pos)
	c.pos++
	if b == '\n' {
		c.line++
	}
	return b, nil
}

// MatchLiteral reports whether the unread input begins with lit.  It does not
// consume any input.
func (c *Cursor) MatchLiteral(lit string) bool {
	return mem.HasPrefix(c.src.SliceFrom(c.pos), mem.S(lit))
}

// SkipWhitespace consumes spaces, tabs, carriage returns, and newlines.
func (c *Cursor) SkipWhitespace() {
	for !c.AtEnd() {
		switch c.src.At(c.pos) {
		case '\n':
			c.line++
		case ' ', '\t', '\r':
		default:
			return
		}
		c.pos++
	}
}

// ReadExact consumes and returns the next n bytes of input.  If fewer than n
// bytes remain, ReadExact reports an error wrapping ErrOutOfRange and consumes
// nothing. The result shares storage with the input.
func (c *Cursor) ReadExact(n int) (mem.RO, error) {
	if n < 0 || n > c.Remaining() {
		return mem.RO{}, c.errRange("read %d bytes with %d remaining", n, c.Remaining())
	}
	out := c.src.Slice(c.pos, c.pos+n)
	c.move(n)
	return out, nil
}

// ReadUint32 consumes a 4-byte little-endian unsigned integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return uint32(b.At(0)) | uint32(b.At(1))<<8 | uint32(b.At(2))<<16 | uint32(b.At(3))<<24, nil
}

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) error {
	if n < 0 || n > c.Remaining() {
		return c.errRange("advance %d with %d remaining", n, c.Remaining())
	}
	c.move(n)
	return nil
}

// Retreat moves the cursor backward by n bytes.
func (c *Cursor) Retreat(n int) error {
	if n < 0 || n > c.pos {
		return c.errRange("retreat %d from offset %d", n, c.pos)
	}
	for range n {
		c.pos--
		if c.src.At(c.pos) == '\n' {
			c.line--
		}
	}
	return nil
}

// move advances the position by n bytes, which the caller has checked.
func (c *Cursor) move(n int) {
	for range n {
		if c.src.At(c.pos) == '\n' {
			c.line++
		}
		c.pos++
	}
}

func (c *Cursor) errEnd() error { return posError{c.pos, ErrEndOfInput} }

func (c *Cursor) errRange(msg string, args ...any) error {
	return posError{c.pos, fmt.Errorf("%w: "+msg, append([]any{ErrOutOfRange}, args...)...)}
}
