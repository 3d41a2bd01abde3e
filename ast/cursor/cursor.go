// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value.
//
// Traversal errors wrap the error values of the jscene package: a path
// element applied to a value of the wrong kind reports ErrTypeMismatch, an
// array offset out of bounds reports ErrOutOfRange, and a missing object key
// reports ErrNotFound.
package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
)

// ErrNotFound is reported when a path names an object key that is not present.
var ErrNotFound = errors.New("key not found")

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	result, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("at %s: %w: got %v", c.Where(), jscene.ErrTypeMismatch, kindOf(c.Value()))
	}
	return result, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []frame
	err error
}

// A frame records one step of traversal: the value reached and the label of
// the path element that reached it.
type frame struct {
	v     ast.Value
	label string
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1].v
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Value {
	out := make([]ast.Value, len(c.stk)+1)
	out[0] = c.org
	for i, f := range c.stk {
		out[i+1] = f.v
	}
	return out
}

// Where renders the location of c relative to its origin, for example
// "meshes[0].name". Array offsets are reported after negative offsets have
// been resolved. The origin is rendered as "$".
func (c *Cursor) Where() string {
	if c.AtOrigin() {
		return "$"
	}
	var sb strings.Builder
	for i, f := range c.stk {
		if i > 0 && !strings.HasPrefix(f.label, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(f.label)
	}
	return sb.String()
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays), or functions (see below).
// If the path cannot be completely consumed, traversal stops at the last
// value reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the member with that key.
//
// If a path element is an integer, the corresponding value must be an array,
// and the integer selects an element of the array. Negative indices count
// backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(ast.Object)
			if !ok {
				return c.fail(jscene.ErrTypeMismatch, "cannot traverse %v with %q", kindOf(cur), t)
			}
			v, ok := o[t]
			if !ok {
				return c.fail(ErrNotFound, "%q", t)
			}
			cur = c.push(v, t)

		case int:
			a, ok := cur.(ast.Array)
			if !ok {
				return c.fail(jscene.ErrTypeMismatch, "cannot traverse %v with %d", kindOf(cur), t)
			}
			i, ok := fixArrayBound(len(a), t)
			if !ok {
				return c.fail(jscene.ErrOutOfRange, "array index %d (n=%d)", t, len(a))
			}
			cur = c.push(a[i], "["+strconv.Itoa(i)+"]")

		case func(ast.Value) (ast.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = fmt.Errorf("at %s: %w", c.Where(), err)
				return c
			}
			cur = c.push(next, "()")

		default:
			return c.fail(jscene.ErrTypeMismatch, "invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value, label string) ast.Value {
	c.stk = append(c.stk, frame{v: v, label: label})
	return v
}

func (c *Cursor) fail(err error, msg string, args ...any) *Cursor {
	c.err = fmt.Errorf("at %s: %w: %s", c.Where(), err, fmt.Sprintf(msg, args...))
	return c
}

func kindOf(v ast.Value) ast.Kind {
	if v == nil {
		return ast.NullKind
	}
	return v.Kind()
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
