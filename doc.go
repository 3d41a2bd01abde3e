// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jscene implements the low-level input handling shared by a JSON
// parser and a glTF scene extractor.
//
// # Cursors
//
// A Cursor is a bounds-checked read position over an immutable input. It
// reads single bytes, exact-length runs, and little-endian integers, and
// tracks the current line so that errors can report a location:
//
//	c := jscene.NewCursor(mem.S(input))
//	c.SkipWhitespace()
//	if c.MatchLiteral("null") {
//	   c.Advance(4)
//	}
//
// Every read or seek that would leave the bounds of the input fails without
// moving the cursor. A read at the end of input reports ErrEndOfInput; any
// other out-of-bounds request reports ErrOutOfRange.
//
// # Errors
//
// Errors reported by this module wrap one of the sentinel values defined
// here, so that callers can classify them with errors.Is:
//
//	v, err := ast.ParseString(text)
//	if errors.Is(err, jscene.ErrDepthExceeded) {
//	   log.Print("Input is nested too deeply")
//	}
//
// The JSON parser reports errors of concrete type *SyntaxError, which carry
// the line and column of the failure.
//
// # Packages
//
// The ast package defines a tree of JSON values, with a parser that bounds
// the depth of nesting and a formatter that renders trees as text. The
// ast/cursor package navigates the structure of a tree. The glb package
// extracts typed scene records from glTF documents in binary GLB or JSON
// form.
package jscene
