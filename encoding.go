// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscene

import (
	"errors"
	"strings"

	"github.com/creachadair/jscene/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(AppendQuote(nil, src, false)) }

// AppendQuote appends the quoted JSON encoding of src to dst and returns the
// extended slice. If legacy is true, unprintable bytes are escaped in the
// form written by older encoders, which does not decode to the original.
func AppendQuote(dst []byte, src string, legacy bool) []byte {
	dst = append(dst, '"')
	if legacy {
		dst = append(dst, escape.QuoteLegacy(mem.S(src))...)
	} else {
		dst = append(dst, escape.Quote(mem.S(src))...)
	}
	return append(dst, '"')
}

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unrecognized escapes are kept as the byte following the backslash. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
