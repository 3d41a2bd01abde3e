// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package glb

import (
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
)

// maxIndex bounds the integers accepted for index and size fields, so that
// every accepted value is exactly representable as a float64.
const maxIndex = 1 << 53

// An object is a JSON object together with its path in the document.
//
// The acquire methods of an object read a single member. Methods named
// require* fail with jscene.ErrMissingField if the member is absent or has
// the wrong type. Other methods return a default in that case. Either kind
// fails with jscene.ErrShapeMismatch if the member has the right type but an
// unusable shape (a fractional index, or an array of the wrong length).
type object struct {
	path string
	obj  ast.Object
}

// child returns the path of the member of o with the given key.
func (o object) child(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o object) failf(key string, err error, msg string, args ...any) error {
	return &Error{Path: o.child(key), Err: fmt.Errorf("%w: "+msg, append([]any{err}, args...)...)}
}

func (o object) missing(key, want string) error {
	if v, ok := o.obj[key]; ok && v != nil {
		return o.failf(key, jscene.ErrMissingField, "want %s, got %v", want, v.Kind())
	}
	return o.failf(key, jscene.ErrMissingField, "required %s not found", want)
}

// has reports whether o has a member with the given key.
func (o object) has(key string) bool { _, ok := o.obj[key]; return ok }

// number reports the value of key if it is a number.
func (o object) number(key string) (float64, bool) {
	f, err := ast.AsNumber(o.obj[key])
	return f, err == nil
}

// integer reports the value of key if it is a number, and fails if the
// number is not an integer in range.
func (o object) integer(key string) (int, bool, error) {
	f, ok := o.number(key)
	if !ok {
		return 0, false, nil
	}
	n, ok := toInt(f)
	if !ok {
		return 0, false, o.failf(key, jscene.ErrShapeMismatch, "%v is not an integer", f)
	}
	return n, true, nil
}

func toInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > maxIndex {
		return 0, false
	}
	return int(f), true
}

func (o object) requireInt(key string) (int, error) {
	n, ok, err := o.integer(key)
	if err != nil {
		return 0, err
	} else if !ok {
		return 0, o.missing(key, "integer")
	}
	return n, nil
}

func (o object) intOr(key string, dflt int) (int, error) {
	n, ok, err := o.integer(key)
	if err != nil || !ok {
		return dflt, err
	}
	return n, nil
}

// index returns the value of an optional index field, or nil if it is absent.
func (o object) index(key string) (*int, error) {
	n, ok, err := o.integer(key)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

func (o object) numberOr(key string, dflt float64) float64 {
	if f, ok := o.number(key); ok {
		return f
	}
	return dflt
}

func (o object) requireString(key string) (string, error) {
	s, err := ast.AsString(o.obj[key])
	if err != nil {
		return "", o.missing(key, "string")
	}
	return s, nil
}

func (o object) stringOr(key, dflt string) string {
	if s, err := ast.AsString(o.obj[key]); err == nil {
		return s
	}
	return dflt
}

func (o object) boolOr(key string, dflt bool) bool {
	if b, err := ast.AsBool(o.obj[key]); err == nil {
		return b
	}
	return dflt
}

// object returns the member of o with the given key if it is an object.
func (o object) object(key string) (object, bool) {
	sub, err := ast.AsObject(o.obj[key])
	if err != nil {
		return object{}, false
	}
	return object{path: o.child(key), obj: sub}, true
}

func (o object) requireObject(key string) (object, error) {
	sub, ok := o.object(key)
	if !ok {
		return object{}, o.missing(key, "object")
	}
	return sub, nil
}

// vector returns the value of key as an array of exactly n numbers. If key
// is absent or not an array, vector returns dflt.
func (o object) vector(key string, n int, dflt []float64) ([]float64, error) {
	arr, err := ast.AsArray(o.obj[key])
	if err != nil {
		return dflt, nil
	} else if n >= 0 && len(arr) != n {
		return nil, o.failf(key, jscene.ErrShapeMismatch, "got %d components, want %d", len(arr), n)
	}
	out := make([]float64, len(arr))
	for i, elt := range arr {
		f, err := ast.AsNumber(elt)
		if err != nil {
			return nil, o.failf(key, jscene.ErrShapeMismatch, "component %d: %v", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// indices returns the value of key as an array of integers. If key is absent
// or not an array, indices returns nil.
func (o object) indices(key string) ([]int, error) {
	arr, err := ast.AsArray(o.obj[key])
	if err != nil {
		return nil, nil
	}
	out := make([]int, len(arr))
	for i, elt := range arr {
		f, err := ast.AsNumber(elt)
		if err != nil {
			return nil, o.failf(key, jscene.ErrShapeMismatch, "element %d: %v", i, err)
		}
		n, ok := toInt(f)
		if !ok {
			return nil, o.failf(key, jscene.ErrShapeMismatch, "element %d: %v is not an integer", i, f)
		}
		out[i] = n
	}
	return out, nil
}

func (o object) requireIndices(key string) ([]int, error) {
	if _, err := ast.AsArray(o.obj[key]); err != nil {
		return nil, o.missing(key, "array")
	}
	return o.indices(key)
}

// strings returns the string elements of the array value of key. Elements
// of other types are skipped.
func (o object) strings(key string) []string {
	arr, err := ast.AsArray(o.obj[key])
	if err != nil {
		return nil
	}
	var out []string
	for _, elt := range arr {
		if s, err := ast.AsString(elt); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// list returns the elements of the array value of key, each of which must be
// an object. An absent key yields an empty list.
func (o object) list(key string) ([]object, error) {
	v, ok := o.obj[key]
	if !ok {
		return nil, nil
	}
	arr, err := ast.AsArray(v)
	if err != nil {
		return nil, o.failf(key, jscene.ErrShapeMismatch, "%v", err)
	}
	out := make([]object, len(arr))
	for i, elt := range arr {
		sub, err := ast.AsObject(elt)
		path := o.child(key) + "[" + strconv.Itoa(i) + "]"
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("%w: %w", jscene.ErrShapeMismatch, err)}
		}
		out[i] = object{path: path, obj: sub}
	}
	return out, nil
}

// textureIndex returns the index of the texture-info object at key.  If the
// object is absent the result is nil. If it is present, its index is
// required when required is true, and optional otherwise.
func (o object) textureIndex(key string, required bool) (*int, error) {
	info, ok := o.object(key)
	if !ok {
		return nil, nil
	} else if !required {
		return info.index("index")
	}
	n, err := info.requireInt("index")
	if err != nil {
		return nil, err
	}
	return &n, nil
}
