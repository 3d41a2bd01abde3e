package main

import (
	"github.com/creachadair/jscene/ast"
	"github.com/iancoleman/strcase"
)

var keyCase = map[string]func(string) string{
	"snake":       strcase.ToSnake,
	"camel":       strcase.ToCamel,
	"lower_camel": strcase.ToLowerCamel,
	"kebab":       strcase.ToKebab,
}

// rekey returns a copy of v in which the keys of every object are rewritten
// in the named case. If two keys of an object map to the same name, the one
// that sorts last wins. An empty or unknown name returns v unchanged.
func rekey(v ast.Value, name string) ast.Value {
	f, ok := keyCase[name]
	if !ok {
		return v
	}
	return mapKeys(v, f)
}

func mapKeys(v ast.Value, f func(string) string) ast.Value {
	switch t := v.(type) {
	case ast.Array:
		out := make(ast.Array, len(t))
		for i, elt := range t {
			out[i] = mapKeys(elt, f)
		}
		return out
	case ast.Object:
		out := make(ast.Object, len(t))
		for _, key := range t.Keys() {
			out[f(key)] = mapKeys(t[key], f)
		}
		return out
	default:
		return v
	}
}
