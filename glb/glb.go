// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package glb extracts typed scene records from glTF 2.0 documents, either
// embedded in a binary GLB container or as standalone JSON text.
//
// Extraction runs a fixed sequence of steps over the parsed JSON document:
//
//	asset, extensions, scene, scenes, nodes, materials, meshes, textures,
//	images, skins, accessors, bufferViews, samplers, buffers
//
// Each step populates one part of a SceneDocument. The first step to fail
// stops extraction, and no document is returned. Failures are reported as
// *Error values, which wrap one of the error values defined by the jscene
// package:
//
//	if errors.Is(err, jscene.ErrMissingField) { ... }
//
// Index fields in the records are not checked against the lengths of the
// collections they refer to.
package glb

import (
	"errors"
	"fmt"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
	"github.com/rs/zerolog"
	"go4.org/mem"
)

// DefaultMaxDepth is the depth budget for parsing a JSON chunk when the
// options do not specify one.
const DefaultMaxDepth = 10

// Options control the behaviour of extraction. A nil *Options is ready for
// use and provides default values.
type Options struct {
	// MaxDepth is the depth budget for parsing the JSON text of the
	// document. If zero, DefaultMaxDepth is used.
	MaxDepth int

	// Logger, if non-nil, receives a debug log entry for each step.
	Logger *zerolog.Logger
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) logger() zerolog.Logger {
	if o == nil || o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Error is the concrete type of errors reported by extraction.
type Error struct {
	Step string // the step that failed, e.g., "nodes"
	Path string // the location of the failure in the document, if known
	Err  error  // the underlying error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("glb %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("glb %s: %s: %v", e.Step, e.Path, e.Err)
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.Err }

// ParseGLB extracts a scene document from a binary GLB container.
//
// The container header is checked before any JSON is parsed: if data does
// not begin with the GLB magic number and a JSON chunk, ParseGLB reports an
// error wrapping jscene.ErrMalformedHeader. A BIN chunk following the JSON
// chunk is captured in the Binary field of the result, if present.
func ParseGLB(data []byte, opts *Options) (*SceneDocument, error) {
	c := jscene.NewBytesCursor(data)
	hdr, text, err := readHeader(c)
	if err != nil {
		return nil, &Error{Step: "header", Err: err}
	}
	log := opts.logger()
	log.Debug().Str("step", "header").
		Uint32("version", hdr.Version).Uint32("length", hdr.Length).Uint32("json", hdr.JSONLength).
		Msg("read container header")

	root, err := parseJSON(text, opts)
	if err != nil {
		return nil, err
	}
	doc, err := Extract(root, opts)
	if err != nil {
		return nil, err
	}
	doc.Header = hdr
	doc.Binary = readBinary(c)
	return doc, nil
}

// DecodeGLTF extracts a scene document from the JSON text of a standalone
// glTF document.
func DecodeGLTF(data []byte, opts *Options) (*SceneDocument, error) {
	root, err := parseJSON(mem.B(data), opts)
	if err != nil {
		return nil, err
	}
	return Extract(root, opts)
}

func parseJSON(text mem.RO, opts *Options) (ast.Value, error) {
	v, err := ast.NewParser(opts.maxDepth()).ParseSingle(jscene.NewCursor(text))
	if err != nil {
		return nil, &Error{Step: "json", Err: err}
	}
	return v, nil
}

// Extract extracts a scene document from a parsed glTF JSON value.
func Extract(root ast.Value, opts *Options) (*SceneDocument, error) {
	obj, err := ast.AsObject(root)
	if err != nil {
		return nil, &Error{Step: "document", Err: fmt.Errorf("%w: %w", jscene.ErrShapeMismatch, err)}
	}
	x := &extractor{
		root: object{obj: obj},
		doc:  new(SceneDocument),
		log:  opts.logger(),
	}
	for _, s := range x.steps() {
		n, err := s.run()
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Step = s.name
			} else {
				e = &Error{Step: s.name, Err: err}
			}
			x.log.Debug().Err(e).Str("step", s.name).Msg("extraction failed")
			return nil, e
		}
		x.log.Debug().Str("step", s.name).Int("records", n).Msg("extracted")
	}
	return x.doc, nil
}

// An extractor carries the state of a single extraction.
type extractor struct {
	root object
	doc  *SceneDocument
	log  zerolog.Logger
}

type step struct {
	name string
	run  func() (int, error) // returns the number of records extracted
}

// steps returns the extraction steps for x in the order they must run.
func (x *extractor) steps() []step {
	d := x.doc
	return []step{
		{"asset", x.asset},
		{"extensions", x.extensions},
		{"scene", x.sceneIndex},
		{"scenes", each(x, "scenes", &d.Scenes, acquireScene)},
		{"nodes", each(x, "nodes", &d.Nodes, acquireNode)},
		{"materials", each(x, "materials", &d.Materials, acquireMaterial)},
		{"meshes", each(x, "meshes", &d.Meshes, acquireMesh)},
		{"textures", each(x, "textures", &d.Textures, acquireTexture)},
		{"images", each(x, "images", &d.Images, acquireImage)},
		{"skins", each(x, "skins", &d.Skins, acquireSkin)},
		{"accessors", each(x, "accessors", &d.Accessors, acquireAccessor)},
		{"bufferViews", each(x, "bufferViews", &d.BufferViews, acquireBufferView)},
		{"samplers", each(x, "samplers", &d.Samplers, acquireSampler)},
		{"buffers", each(x, "buffers", &d.Buffers, acquireBuffer)},
	}
}

// each returns a step function that acquires each element of the top-level
// array named by key with f, and stores the results in *dst.
func each[T any](x *extractor, key string, dst *[]T, f func(object, int) (T, error)) func() (int, error) {
	return func() (int, error) {
		elts, err := x.root.list(key)
		if err != nil {
			return 0, err
		}
		out := make([]T, len(elts))
		for i, elt := range elts {
			v, err := f(elt, i)
			if err != nil {
				return 0, err
			}
			out[i] = v
		}
		*dst = out
		return len(out), nil
	}
}

func (x *extractor) asset() (int, error) {
	a, err := x.root.requireObject("asset")
	if err != nil {
		return 0, err
	}
	x.doc.RawAsset = ast.Clone(a.obj)
	x.doc.Asset = AssetInfo{
		Version:    a.stringOr("version", "2.0"),
		Generator:  a.stringOr("generator", "N/A"),
		Extensions: a.strings("extensions"),
	}
	if x.doc.Asset.Extensions == nil {
		if ext, ok := a.object("extensions"); ok {
			x.doc.Asset.Extensions = ext.obj.Keys()
		}
	}
	return 1, nil
}

func (x *extractor) extensions() (int, error) {
	x.doc.ExtensionsUsed = x.root.strings("extensionsUsed")
	x.doc.ExtensionsRequired = x.root.strings("extensionsRequired")
	return len(x.doc.ExtensionsUsed), nil
}

func (x *extractor) sceneIndex() (int, error) {
	idx, err := x.root.index("scene")
	if err != nil {
		return 0, err
	}
	x.doc.Scene = idx
	if idx == nil {
		return 0, nil
	}
	return 1, nil
}
