// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"math"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/internal/escape"
	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

// DefaultMaxDepth is the depth budget used by ParseJSON and ParseString.
const DefaultMaxDepth = 1024

// ParseJSON parses and returns a single JSON value from data.  If data
// contains anything other than whitespace after the value, ParseJSON reports
// an error wrapping jscene.ErrExtraInput.
//
// In case of a syntax error, the concrete type of the error is
// *jscene.SyntaxError.
func ParseJSON(data []byte) (Value, error) {
	return NewParser(DefaultMaxDepth).ParseSingle(jscene.NewBytesCursor(data))
}

// ParseString is as ParseJSON, but consumes a string.
func ParseString(s string) (Value, error) {
	return NewParser(DefaultMaxDepth).ParseSingle(jscene.NewCursor(mem.S(s)))
}

// ParseReader reads all of r and parses it as ParseJSON does.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

// A Parser is a recursive-descent JSON parser with a bound on the depth of
// nested values.
//
// The height of a value counts the value itself: a scalar or an empty array
// or object has height 1, and a non-empty array or object has height one
// greater than its tallest element. A parser whose budget is n accepts values
// of height at most n, and rejects taller values with an error wrapping
// jscene.ErrDepthExceeded.
//
// A Parser holds no reference to its input, and may be reused and shared
// among goroutines; the cursor passed to Parse must not be.
type Parser struct {
	depth int
}

// NewParser constructs a parser with the given depth budget.  It panics if
// maxDepth <= 0.
func NewParser(maxDepth int) *Parser {
	if maxDepth <= 0 {
		panic(fmt.Sprintf("ast: invalid depth budget %d", maxDepth))
	}
	return &Parser{depth: maxDepth}
}

// MaxDepth returns the depth budget of p.
func (p *Parser) MaxDepth() int { return p.depth }

// Parse parses a single value from the current position of c, skipping any
// leading whitespace. On success, c is positioned immediately after the
// value. On failure, the position of c is unspecified.
func (p *Parser) Parse(c *jscene.Cursor) (Value, error) {
	return session{depth: p.depth}.parseValue(c)
}

// ParseSingle parses a single value from c, and requires that nothing other
// than whitespace follows it.
func (p *Parser) ParseSingle(c *jscene.Cursor) (Value, error) {
	v, err := p.Parse(c)
	if err != nil {
		return nil, err
	}
	c.SkipWhitespace()
	if !c.AtEnd() {
		return nil, jscene.NewSyntaxError(c, jscene.ErrExtraInput, "extra input after value")
	}
	return v, nil
}

// A session parses one value with a fixed depth budget. Each element of an
// array or object is parsed by a nested session with a smaller budget, sharing
// the same cursor.
type session struct {
	depth int
}

// nested returns the session for an element of an aggregate parsed by s.
func (s session) nested(c *jscene.Cursor) (session, error) {
	if s.depth <= 1 {
		return session{}, jscene.NewSyntaxError(c, jscene.ErrDepthExceeded, "nesting exceeds depth limit")
	}
	return session{depth: s.depth - 1}, nil
}

func (s session) parseValue(c *jscene.Cursor) (Value, error) {
	c.SkipWhitespace()
	ch, err := c.PeekByte()
	if err != nil {
		return nil, jscene.NewSyntaxError(c, nil, "unexpected end of input")
	}
	switch ch {
	case 'n':
		return parseLiteral(c, "null", Null{})
	case 't':
		return parseLiteral(c, "true", Bool(true))
	case 'f':
		return parseLiteral(c, "false", Bool(false))
	case '"':
		str, err := parseString(c)
		if err != nil {
			return nil, err
		}
		return String(str), nil
	case '[':
		return s.parseArray(c)
	case '{':
		return s.parseObject(c)
	}
	if isNumStart(ch) {
		return parseNumber(c)
	}
	return nil, jscene.NewSyntaxError(c, nil, "unexpected %q", ch)
}

func parseLiteral(c *jscene.Cursor, name string, v Value) (Value, error) {
	if !c.MatchLiteral(name) {
		return nil, jscene.NewSyntaxError(c, nil, "invalid constant, want %s", name)
	}
	c.Advance(len(name)) // cannot fail, the literal matched
	return v, nil
}

// parseString consumes a quoted string and returns its unescaped contents.
// Precondition: the next byte is a quotation mark.
func parseString(c *jscene.Cursor) (string, error) {
	c.NextByte() // opening quote
	var raw []byte
	for {
		ch, err := c.NextByte()
		if err != nil {
			return "", jscene.NewSyntaxError(c, nil, "unterminated string")
		}
		if ch == '"' {
			break
		}
		raw = append(raw, ch)
		if ch == '\\' {
			esc, err := c.NextByte()
			if err != nil {
				return "", jscene.NewSyntaxError(c, nil, "incomplete escape sequence")
			}
			raw = append(raw, esc)
		}
	}
	dec, err := escape.Unquote(mem.B(raw))
	if err != nil {
		return "", jscene.NewSyntaxError(c, nil, "invalid string: %v", err)
	}
	return string(dec), nil
}

// parseNumber consumes the longest run of number characters and converts it.
func parseNumber(c *jscene.Cursor) (Value, error) {
	var text []byte
	for {
		ch, err := c.PeekByte()
		if err != nil || !isNumRune(ch) {
			break
		}
		c.NextByte()
		text = append(text, ch)
	}

	// A leading plus sign is accepted, but only one sign is allowed.
	digits := string(text)
	if len(digits) > 1 && digits[0] == '+' && digits[1] != '-' && digits[1] != '+' {
		digits = digits[1:]
	}
	f, err := fastfloat.Parse(digits)
	if err != nil {
		c.Retreat(len(text))
		return nil, jscene.NewSyntaxError(c, nil, "invalid number %q", text)
	} else if math.IsInf(f, 0) {
		c.Retreat(len(text))
		return nil, jscene.NewSyntaxError(c, nil, "number %q is out of range", text)
	}
	return Number(f), nil
}

// parseArray consumes a bracketed, comma-separated array of values.
// Precondition: the next byte is a left square bracket.
func (s session) parseArray(c *jscene.Cursor) (Value, error) {
	c.NextByte() // [
	c.SkipWhitespace()
	if ch, err := c.PeekByte(); err == nil && ch == ']' {
		c.NextByte()
		return Array{}, nil
	}

	var out Array
	for {
		sub, err := s.nested(c)
		if err != nil {
			return nil, err
		}
		elt, err := sub.parseValue(c)
		if err != nil {
			return nil, err
		}
		out = append(out, elt)

		c.SkipWhitespace()
		ch, err := c.NextByte()
		if err != nil {
			return nil, jscene.NewSyntaxError(c, nil, "unterminated array")
		}
		switch ch {
		case ',':
			continue
		case ']':
			return out, nil
		default:
			c.Retreat(1)
			return nil, jscene.NewSyntaxError(c, nil, `expected "," or "]", got %q`, ch)
		}
	}
}

// parseObject consumes a braced, comma-separated collection of members.
// Precondition: the next byte is a left curly brace.
func (s session) parseObject(c *jscene.Cursor) (Value, error) {
	c.NextByte() // {
	c.SkipWhitespace()
	out := make(Object)
	if ch, err := c.PeekByte(); err == nil && ch == '}' {
		c.NextByte()
		return out, nil
	}

	for {
		c.SkipWhitespace()
		if ch, err := c.PeekByte(); err != nil || ch != '"' {
			return nil, jscene.NewSyntaxError(c, nil, "expected string key")
		}
		key, err := parseString(c)
		if err != nil {
			return nil, err
		}
		c.SkipWhitespace()
		if ch, err := c.NextByte(); err != nil || ch != ':' {
			return nil, jscene.NewSyntaxError(c, nil, `expected ":" after key %q`, key)
		}

		sub, err := s.nested(c)
		if err != nil {
			return nil, err
		}
		val, err := sub.parseValue(c)
		if err != nil {
			return nil, err
		}
		out[key] = val

		c.SkipWhitespace()
		ch, err := c.NextByte()
		if err != nil {
			return nil, jscene.NewSyntaxError(c, nil, "unterminated object")
		}
		switch ch {
		case ',':
			continue
		case '}':
			return out, nil
		default:
			c.Retreat(1)
			return nil, jscene.NewSyntaxError(c, nil, `expected "," or "}", got %q`, ch)
		}
	}
}

func isNumStart(ch byte) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '+' || ch == '-' || ch == '.' || ch == 'e' || ch == 'E'
}
