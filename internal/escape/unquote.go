// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// The standard escape sequences are replaced with their unescaped
// equivalents, and \uXXXX escapes (including surrogate pairs) are decoded to
// UTF-8. Decoding is lenient: for an unrecognized escape, or a \u not followed
// by four hex digits, the byte after the backslash is kept as-is.  Unquote
// reports an error only for a backslash at the end of src.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b := src.At(0)
		src = src.SliceFrom(1)
		switch b {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				dec = append(dec, b)
				break
			}
			r, ok := parseHex4(src)
			if !ok {
				dec = append(dec, b)
				break
			}
			src = src.SliceFrom(4)
			if isHighSurrogate(r) && src.Len() >= 6 &&
				src.At(0) == '\\' && src.At(1) == 'u' {
				if lo, ok := parseHex4(src.SliceFrom(2)); ok && isLowSurrogate(lo) {
					r = 0x10000 + (r-0xd800)<<10 + (lo - 0xdc00)
					src = src.SliceFrom(6)
				}
			}
			putRune(r)
		default:
			// This includes the standard escapes for '"', '\\', and '/'.
			dec = append(dec, b)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

func isHighSurrogate(r rune) bool { return r >= 0xd800 && r < 0xdc00 }
func isLowSurrogate(r rune) bool  { return r >= 0xdc00 && r < 0xe000 }

// parseHex4 decodes the first four bytes of data as hexadecimal digits.
func parseHex4(data mem.RO) (rune, bool) {
	var v rune
	for i := range 4 {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, false
		}
	}
	return v, true
}
