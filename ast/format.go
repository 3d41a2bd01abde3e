// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jscene"
)

// A Formatter carries the settings for rendering values as JSON text.
// A zero value is ready for use and renders compact JSON.
type Formatter struct {
	// Indent is the number of spaces per nesting level. If Indent <= 0, the
	// output is compact and contains no newlines.
	Indent int

	// LegacyEscapes selects the escape form of an older encoder, which wrote
	// each unprintable byte as a backslash, "u", four hex digits, and a
	// trailing "x". Output in this form does not round-trip.
	LegacyEscapes bool
}

// Serialize renders v as JSON text with the given per-level indentation.
func Serialize(v Value, indent int) string {
	return Formatter{Indent: indent}.FormatToString(v)
}

// Format renders v to w using the settings from f.
//
// Object members are written in ascending order by key. Numbers that are
// integral and less than 1e21 in magnitude are written without an exponent.
// JSON has no representation for NaN or infinities, so they are written as
// null.
func (f Formatter) Format(w io.Writer, v Value) error {
	_, err := w.Write(f.appendValue(nil, v, 0))
	return err
}

// FormatToString renders v to a string using the settings from f.
func (f Formatter) FormatToString(v Value) string {
	var buf bytes.Buffer
	f.Format(&buf, v) // writes to a buffer do not fail
	return buf.String()
}

// FormatToString renders v as compact JSON.
func FormatToString(v Value) string { return Formatter{}.FormatToString(v) }

func (f Formatter) appendValue(buf []byte, v Value, level int) []byte {
	switch t := v.(type) {
	case nil, Null:
		return append(buf, "null"...)
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Number:
		return appendNumber(buf, float64(t))
	case String:
		return f.appendString(buf, string(t))
	case Array:
		if len(t) == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = f.newline(buf, level+1)
			buf = f.appendValue(buf, elt, level+1)
		}
		buf = f.newline(buf, level)
		return append(buf, ']')
	case Object:
		if len(t) == 0 {
			return append(buf, "{}"...)
		}
		buf = append(buf, '{')
		for i, key := range t.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = f.newline(buf, level+1)
			buf = f.appendString(buf, key)
			buf = append(buf, ':')
			if f.Indent > 0 {
				buf = append(buf, ' ')
			}
			buf = f.appendValue(buf, t[key], level+1)
		}
		buf = f.newline(buf, level)
		return append(buf, '}')
	default:
		panic("unknown value type") // unreachable, the Value set is closed
	}
}

// newline starts a new line indented to level, if f is indenting.
func (f Formatter) newline(buf []byte, level int) []byte {
	if f.Indent <= 0 {
		return buf
	}
	buf = append(buf, '\n')
	return append(buf, strings.Repeat(" ", level*f.Indent)...)
}

func (f Formatter) appendString(buf []byte, s string) []byte {
	return jscene.AppendQuote(buf, s, f.LegacyEscapes)
}

func appendNumber(buf []byte, v float64) []byte {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return append(buf, "null"...)
	case v == math.Trunc(v) && math.Abs(v) < 1e21:
		return strconv.AppendFloat(buf, v, 'f', -1, 64)
	default:
		return strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
}
