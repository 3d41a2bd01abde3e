package escape_test

import (
	"testing"

	"github.com/creachadair/jscene/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want, legacy string
	}{
		{"", "", ""},
		{"abc", "abc", "abc"},
		{"a\x01b", `a\u0001b`, `a\u0001xb`},
		{"\b\f\n\r\t", `\b\f\n\r\t`, `\b\f\n\r\t`},
		{"\x7f", `\u007f`, `\u007fx`},
		{"\xc3\xa9", "\xc3\xa9", `\u00c3x\u00a9x`},
		{`"\`, `\"\\`, `\"\\`},
	}
	for _, tc := range tests {
		if got := string(escape.Quote(mem.S(tc.input))); got != tc.want {
			t.Errorf("Quote(%q): got %q, want %q", tc.input, got, tc.want)
		}
		if got := string(escape.QuoteLegacy(mem.S(tc.input))); got != tc.legacy {
			t.Errorf("QuoteLegacy(%q): got %q, want %q", tc.input, got, tc.legacy)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"no escapes", "no escapes"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`\u00e9\u00E9`, "\u00e9\u00e9"},
		{`\ud83d\ude00!`, "\U0001f600!"},

		// Lenient decoding keeps the byte after an unrecognized escape.
		{`\x41`, "x41"},
		{`\uzzzz`, "uzzzz"},
		{`\u12x4`, "u12x4"},
		{`ab\u1`, "abu1"},
		{`\u`, "u"},

		// An unpaired surrogate decodes to the replacement character.
		{`\ud83dx`, "\ufffdx"},
	}
	for _, tc := range tests {
		got, err := escape.Unquote(mem.S(tc.input))
		if err != nil {
			t.Errorf("Unquote(%q): unexpected error: %v", tc.input, err)
		} else if string(got) != tc.want {
			t.Errorf("Unquote(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}

	for _, bad := range []string{`\`, `abc\`, `\u12\`} {
		if got, err := escape.Unquote(mem.S(bad)); err == nil {
			t.Errorf("Unquote(%q): got %q, wanted error", bad, got)
		}
	}
}
