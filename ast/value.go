// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jscene"
)

// A TypeError reports the use of an accessor on a value of the wrong kind.
// It wraps jscene.ErrTypeMismatch.
type TypeError struct {
	Want, Got Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: want %v, got %v", jscene.ErrTypeMismatch, e.Want, e.Got)
}

func (e *TypeError) Unwrap() error { return jscene.ErrTypeMismatch }

// kindOf returns the kind of v, treating a nil interface as null.
func kindOf(v Value) Kind {
	if v == nil {
		return NullKind
	}
	return v.Kind()
}

func as[T Value](v Value, want Kind) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, &TypeError{Want: want, Got: kindOf(v)}
	}
	return t, nil
}

// AsBool returns the value of a Bool, or a *TypeError.
func AsBool(v Value) (bool, error) {
	b, err := as[Bool](v, BoolKind)
	return bool(b), err
}

// AsNumber returns the value of a Number, or a *TypeError.
func AsNumber(v Value) (float64, error) {
	n, err := as[Number](v, NumberKind)
	return float64(n), err
}

// AsString returns the value of a String, or a *TypeError.
func AsString(v Value) (string, error) {
	s, err := as[String](v, StringKind)
	return string(s), err
}

// AsArray returns v as an Array, or a *TypeError.
func AsArray(v Value) (Array, error) { return as[Array](v, ArrayKind) }

// AsObject returns v as an Object, or a *TypeError.
func AsObject(v Value) (Object, error) { return as[Object](v, ObjectKind) }

// HasKey reports whether v, which must be an Object, has a member with the
// given key.
func HasKey(v Value, key string) (bool, error) {
	o, err := AsObject(v)
	if err != nil {
		return false, err
	}
	_, ok := o[key]
	return ok, nil
}

// HasIndex reports whether v, which must be an Array, admits the index i.
//
// Note that the upper bound is inclusive: HasIndex reports true for
// i == len(v), which is not a valid offset for indexing. Callers that intend
// to index the array must check i < len(v) themselves.
func HasIndex(v Value, i int) (bool, error) {
	a, err := AsArray(v)
	if err != nil {
		return false, err
	}
	return i >= 0 && i <= len(a), nil
}

// Truthy reduces v to a Boolean. Null, false, zero, and empty strings,
// arrays, and objects are false; all other values are true.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return t != 0
	case String:
		return t != ""
	case Array:
		return len(t) != 0
	case Object:
		return len(t) != 0
	default:
		return false
	}
}

// Equal reports whether a and b are structurally equal. A nil Value is
// equal to Null.
func Equal(a, b Value) bool {
	if kindOf(a) != kindOf(b) {
		return false
	}
	switch t := a.(type) {
	case Array:
		u := b.(Array)
		if len(t) != len(u) {
			return false
		}
		for i := range t {
			if !Equal(t[i], u[i]) {
				return false
			}
		}
		return true
	case Object:
		u := b.(Object)
		if len(t) != len(u) {
			return false
		}
		for key, tv := range t {
			uv, ok := u[key]
			if !ok || !Equal(tv, uv) {
				return false
			}
		}
		return true
	case nil, Null:
		return true
	default:
		return a == b
	}
}

// Clone returns a deep copy of v. Arrays and objects are copied recursively,
// so that the result shares no mutable storage with v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Array:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = Clone(elt)
		}
		return out
	case Object:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = Clone(elt)
		}
		return out
	default:
		return v
	}
}
