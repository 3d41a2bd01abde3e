// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jscene/ast"
	"github.com/google/go-cmp/cmp"
)

var testValue = ast.Object{
	"name": ast.String("widget"),
	"tags": ast.ArrayOf("a", "b"),
	"size": ast.Object{"w": ast.Number(3), "h": ast.Number(4.5)},
	"none": ast.Array{},
	"nil":  ast.Null{},
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{"Compact", 0,
			`{"name":"widget","nil":null,"none":[],"size":{"h":4.5,"w":3},"tags":["a","b"]}`},
		{"Negative", -4,
			`{"name":"widget","nil":null,"none":[],"size":{"h":4.5,"w":3},"tags":["a","b"]}`},
		{"Indent2", 2, `{
  "name": "widget",
  "nil": null,
  "none": [],
  "size": {
    "h": 4.5,
    "w": 3
  },
  "tags": [
    "a",
    "b"
  ]
}`},
		{"Indent4", 4, `{
    "name": "widget",
    "nil": null,
    "none": [],
    "size": {
        "h": 4.5,
        "w": 3
    },
    "tags": [
        "a",
        "b"
    ]
}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ast.Serialize(testValue, tc.indent)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Serialize (-want, +got):\n%s", diff)
			}

			var buf strings.Builder
			if err := (ast.Formatter{Indent: tc.indent}).Format(&buf, testValue); err != nil {
				t.Fatalf("Format: unexpected error: %v", err)
			}
			if buf.String() != got {
				t.Errorf("Format: got %q, want %q", buf.String(), got)
			}
		})
	}
}

func TestFormatNumbers(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{-7, "-7"},
		{1234567890123, "1234567890123"},
		{0.25, "0.25"},
		{-1.5e-7, "-1.5e-07"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range tests {
		if got := ast.Number(tc.input).JSON(); got != tc.want {
			t.Errorf("Number(%v): got %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestFormatStrings(t *testing.T) {
	v := ast.ArrayOf("tab\there", "quote\"", "ctl\x01", "caf\xc3\xa9")

	const want = `["tab\there","quote\"","ctl\u0001","caf` + "\xc3\xa9" + `"]`
	if got := ast.FormatToString(v); got != want {
		t.Errorf("Compact: got %s, want %s", got, want)
	}

	const legacy = `["tab\there","quote\"","ctl\u0001x","caf\u00c3x\u00a9x"]`
	if got := (ast.Formatter{LegacyEscapes: true}).FormatToString(v); got != legacy {
		t.Errorf("Legacy: got %s, want %s", got, legacy)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []ast.Value{
		ast.Null{},
		ast.Number(-0.001),
		ast.String("line\nbreak \x7f and \x00"),
		ast.ArrayOf(1, "two", false, nil, ast.ArrayOf(3.5)),
		testValue,
		ast.Object{"": ast.Object{"deep": ast.ArrayOf(ast.Object{})}},
	}
	for _, in := range inputs {
		for _, indent := range []int{0, 1, 3} {
			text := ast.Serialize(in, indent)
			got, err := ast.ParseString(text)
			if err != nil {
				t.Errorf("Parse %q: unexpected error: %v", text, err)
				continue
			}
			if !ast.Equal(in, got) {
				t.Errorf("Round trip indent %d: got %v, want %v", indent, got.JSON(), in.JSON())
			}
		}
	}
}

// roundTripCorpus returns values covering every byte in strings and keys,
// nested empty aggregates, and numbers of assorted magnitudes.
func roundTripCorpus() []ast.Value {
	var out []ast.Value

	all := make([]byte, 256)
	keys := make(ast.Object)
	for i := range all {
		all[i] = byte(i)
		s := "<" + string([]byte{byte(i)}) + ">"
		out = append(out, ast.String(s))
		keys[s] = ast.Number(i)
	}
	out = append(out, ast.String(all), keys)

	var nest ast.Value = ast.Object{}
	for i := range 20 {
		if i%2 == 0 {
			nest = ast.Array{nest, ast.Array{}}
		} else {
			nest = ast.Object{"": nest, "e": ast.Object{}}
		}
	}
	out = append(out,
		ast.Array{}, ast.Object{},
		ast.Array{ast.Array{}}, ast.Object{"": ast.Array{}},
		ast.Array{ast.Object{}, ast.Array{ast.Array{ast.Object{}}}},
		nest,
	)

	for _, f := range []float64{0, -1, 0.5, -0.001, 3.5, 1e-7, 123456789, -9007199254740992, 1e20, 1e100} {
		out = append(out, ast.Number(f), ast.Array{ast.Number(f)})
	}
	return out
}

func TestRoundTripCorpus(t *testing.T) {
	corpus := roundTripCorpus()
	for _, indent := range []int{0, 1, 2, 4} {
		for i, in := range corpus {
			text := ast.Serialize(in, indent)
			got, err := ast.ParseString(text)
			if err != nil {
				t.Errorf("Indent %d, value %d: parse %q: %v", indent, i, text, err)
				continue
			}
			if diff := cmp.Diff(in, got); diff != "" {
				t.Errorf("Indent %d, value %d: round trip (-want, +got):\n%s", indent, i, diff)
			}
		}
	}
}
