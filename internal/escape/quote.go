// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string to escape characters for inclusion in a JSON string.
// Quotation marks, backslashes, and the control characters with short escapes
// are escaped with a backslash; other control bytes and DEL are escaped as
// \u00XX. All other bytes, including bytes that are not valid UTF-8, are
// copied unchanged.
func Quote(src mem.RO) []byte { return quote(src, false) }

// QuoteLegacy is like Quote, but escapes bytes the way an older encoder did:
// each control byte without a short escape and each byte >= 0x7f is written
// as a backslash, "u", four hex digits, and a trailing "x".  The output does
// not decode back to the original bytes.
func QuoteLegacy(src mem.RO) []byte { return quote(src, true) }

func quote(src mem.RO, legacy bool) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '\\' || b == '"':
			buf = append(buf, '\\', b)
		case b < ' ' && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		case b < ' ' || b == 0x7f || (legacy && b > 0x7f):
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
			if legacy {
				buf = append(buf, 'x')
			}
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
