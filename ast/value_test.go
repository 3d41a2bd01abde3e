// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
	"github.com/google/go-cmp/cmp"
)

func TestAccessors(t *testing.T) {
	if v, err := ast.AsBool(ast.Bool(true)); err != nil || !v {
		t.Errorf("AsBool: got %v, %v", v, err)
	}
	if v, err := ast.AsNumber(ast.Number(-2.5)); err != nil || v != -2.5 {
		t.Errorf("AsNumber: got %v, %v", v, err)
	}
	if v, err := ast.AsString(ast.String("ok")); err != nil || v != "ok" {
		t.Errorf("AsString: got %q, %v", v, err)
	}
	if v, err := ast.AsArray(ast.ArrayOf(1, 2)); err != nil || len(v) != 2 {
		t.Errorf("AsArray: got %v, %v", v, err)
	}
	if v, err := ast.AsObject(ast.Object{"a": ast.Null{}}); err != nil || len(v) != 1 {
		t.Errorf("AsObject: got %v, %v", v, err)
	}

	tests := []struct {
		name string
		call func() error
		want ast.Kind
		got  ast.Kind
	}{
		{"BoolOfNumber", func() error { _, err := ast.AsBool(ast.Number(1)); return err },
			ast.BoolKind, ast.NumberKind},
		{"NumberOfString", func() error { _, err := ast.AsNumber(ast.String("1")); return err },
			ast.NumberKind, ast.StringKind},
		{"StringOfNull", func() error { _, err := ast.AsString(ast.Null{}); return err },
			ast.StringKind, ast.NullKind},
		{"ArrayOfObject", func() error { _, err := ast.AsArray(ast.Object{}); return err },
			ast.ArrayKind, ast.ObjectKind},
		{"ObjectOfArray", func() error { _, err := ast.AsObject(ast.Array{}); return err },
			ast.ObjectKind, ast.ArrayKind},
		{"ObjectOfNil", func() error { _, err := ast.AsObject(nil); return err },
			ast.ObjectKind, ast.NullKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, jscene.ErrTypeMismatch) {
				t.Fatalf("Got error %v, want %v", err, jscene.ErrTypeMismatch)
			}
			var terr *ast.TypeError
			if !errors.As(err, &terr) {
				t.Fatalf("Error %T is not a *TypeError", err)
			}
			if terr.Want != tc.want || terr.Got != tc.got {
				t.Errorf("TypeError: got want=%v got=%v, want want=%v got=%v",
					terr.Want, terr.Got, tc.want, tc.got)
			}
		})
	}
}

func TestHasKey(t *testing.T) {
	obj := ast.Object{"a": ast.Null{}, "b": ast.Number(1)}
	for key, want := range map[string]bool{"a": true, "b": true, "c": false, "": false} {
		got, err := ast.HasKey(obj, key)
		if err != nil || got != want {
			t.Errorf("HasKey(%q): got %v, %v; want %v", key, got, err, want)
		}
	}
	if _, err := ast.HasKey(ast.Array{}, "a"); !errors.Is(err, jscene.ErrTypeMismatch) {
		t.Errorf("HasKey on array: got %v, want %v", err, jscene.ErrTypeMismatch)
	}
}

func TestHasIndex(t *testing.T) {
	arr := ast.ArrayOf(10, 20, 30)
	tests := []struct {
		index int
		want  bool
	}{
		{-1, false},
		{0, true},
		{2, true},
		{3, true}, // the upper bound is inclusive
		{4, false},
	}
	for _, tc := range tests {
		got, err := ast.HasIndex(arr, tc.index)
		if err != nil || got != tc.want {
			t.Errorf("HasIndex(%d): got %v, %v; want %v", tc.index, got, err, tc.want)
		}
	}
	if _, err := ast.HasIndex(ast.Object{}, 0); !errors.Is(err, jscene.ErrTypeMismatch) {
		t.Errorf("HasIndex on object: got %v, want %v", err, jscene.ErrTypeMismatch)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  bool
	}{
		{nil, false},
		{ast.Null{}, false},
		{ast.Bool(false), false},
		{ast.Bool(true), true},
		{ast.Number(0), false},
		{ast.Number(-0.5), true},
		{ast.String(""), false},
		{ast.String("0"), true},
		{ast.Array{}, false},
		{ast.ArrayOf(false), true},
		{ast.Object{}, false},
		{ast.Object{"": ast.Null{}}, true},
	}
	for _, tc := range tests {
		if got := ast.Truthy(tc.input); got != tc.want {
			t.Errorf("Truthy(%v): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	base := ast.Object{
		"list": ast.ArrayOf(1, "two", nil),
		"flag": ast.Bool(true),
	}
	tests := []struct {
		a, b ast.Value
		want bool
	}{
		{ast.Null{}, nil, true},
		{ast.Number(1), ast.Number(1), true},
		{ast.Number(1), ast.String("1"), false},
		{ast.Bool(false), ast.Null{}, false},
		{ast.ArrayOf(1, 2), ast.ArrayOf(1, 2), true},
		{ast.ArrayOf(1, 2), ast.ArrayOf(2, 1), false},
		{ast.ArrayOf(1, 2), ast.ArrayOf(1, 2, 3), false},
		{base, ast.Clone(base), true},
		{base, ast.Object{"list": ast.ArrayOf(1, "two", nil)}, false},
		{base, ast.Object{"list": ast.ArrayOf(1, "two", nil), "flag": ast.Bool(false)}, false},
		{base, ast.Object{"list": ast.ArrayOf(1, "two", nil), "other": ast.Bool(true)}, false},
	}
	for _, tc := range tests {
		if got := ast.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClone(t *testing.T) {
	orig := ast.Object{
		"list": ast.ArrayOf(1, 2),
		"sub":  ast.Object{"x": ast.String("y")},
	}
	cp := ast.Clone(orig).(ast.Object)
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("Clone (-want, +got):\n%s", diff)
	}

	// Modifying the copy does not affect the original.
	cp["list"].(ast.Array)[0] = ast.Null{}
	cp["sub"].(ast.Object)["x"] = ast.Bool(false)
	cp["new"] = ast.Null{}
	want := ast.Object{
		"list": ast.ArrayOf(1, 2),
		"sub":  ast.Object{"x": ast.String("y")},
	}
	if diff := cmp.Diff(want, orig); diff != "" {
		t.Errorf("Original changed (-want, +got):\n%s", diff)
	}

	if got := ast.Clone(nil); !ast.Equal(got, ast.Null{}) {
		t.Errorf("Clone(nil): got %v, want null", got)
	}
}
