// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree of JSON values, a parser that constructs trees
// from JSON source, and a formatter that renders trees as JSON text.
//
// A Value is exactly one of the concrete types Null, Bool, Number, String,
// Array, or Object. The set of implementations is closed: no other package
// can add a new kind of Value.
package ast

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which variant of the value is active.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// Null represents the JSON null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind       { return BoolKind }
func (b Bool) JSON() string   { return FormatToString(b) }
func (b Bool) String() string { return b.JSON() }
func (Bool) isValue()         {}

// A Number is a numeric value. JSON does not distinguish integers from
// floating-point values, and neither does Number.
type Number float64

func (Number) Kind() Kind       { return NumberKind }
func (n Number) JSON() string   { return FormatToString(n) }
func (n Number) String() string { return n.JSON() }
func (Number) isValue()         {}

// Int returns n truncated to an integer.
func (n Number) Int() int { return int(n) }

// A String is a string value. The contents are unescaped.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) JSON() string   { return FormatToString(s) }
func (s String) String() string { return string(s) }
func (String) isValue()         {}

// An Array is a sequence of values.
type Array []Value

func (Array) Kind() Kind     { return ArrayKind }
func (a Array) JSON() string { return FormatToString(a) }
func (Array) isValue()       {}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of values indexed by key.  The order of members
// is not significant.
type Object map[string]Value

func (Object) Kind() Kind     { return ObjectKind }
func (o Object) JSON() string { return FormatToString(o) }
func (Object) isValue()       {}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil.
func (o Object) Find(key string) Value { return o[key] }

// Keys returns the keys of o in ascending order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// ArrayOf constructs an array of values from the given inputs, which must be
// acceptable to ToValue.
func ArrayOf(vs ...any) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}

// ToValue converts a string, int, float, bool, nil, []any, map[string]any, or
// Value into a Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case uint32:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		return ArrayOf(t...)
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
