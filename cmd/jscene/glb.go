package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/creachadair/jscene/ast"
	"github.com/creachadair/jscene/glb"
	"github.com/panjf2000/ants/v2"
)

type glbCmd struct {
	Files    []string `arg:"" help:"GLB (.glb) or glTF (.gltf) files." type:"path"`
	Workers  int      `help:"Number of files to extract concurrently."`
	MaxDepth int      `help:"Maximum nesting depth of the JSON chunk."`
	Indent   int      `help:"Spaces per indent level; 0 for compact output." default:"-1"`
	KeyCase  string   `help:"Rewrite object keys: snake, camel, lower_camel, kebab."`
}

// A result is the outcome of extracting one file.
type result struct {
	doc *glb.SceneDocument
	err error
}

func (c *glbCmd) Run(e *env) error {
	gc := &e.cfg.GLB
	if c.Workers > 0 {
		gc.Workers = c.Workers
	}
	if c.MaxDepth > 0 {
		gc.MaxDepth = c.MaxDepth
	}
	if c.Indent >= 0 {
		gc.Indent = c.Indent
	}
	if c.KeyCase != "" {
		gc.KeyCase = c.KeyCase
	}
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	pool, err := ants.NewPool(gc.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	results := make([]result, len(c.Files))
	var wg sync.WaitGroup
	for i, path := range c.Files {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			log := e.log.With().Str("file", path).Logger()
			doc, err := extractFile(e, path, &glb.Options{MaxDepth: gc.MaxDepth, Logger: &log})
			results[i] = result{doc: doc, err: err}
		}); err != nil {
			wg.Done()
			results[i].err = err
		}
	}
	wg.Wait()

	f := ast.Formatter{Indent: gc.Indent}
	var failed int
	for i, r := range results {
		if r.err != nil {
			failed++
			e.log.Error().Err(r.err).Str("file", c.Files[i]).Msg("extraction failed")
			continue
		}
		out := ast.Object{
			"file":     ast.String(c.Files[i]),
			"document": glb.Describe(r.doc),
		}
		if err := f.Format(e.out, rekey(out, gc.KeyCase)); err != nil {
			return err
		}
		fmt.Fprintln(e.out)
	}
	if failed != 0 {
		return fmt.Errorf("extraction failed for %d of %d files", failed, len(c.Files))
	}
	return nil
}

// extractFile extracts a scene document from path. A file is treated as a
// GLB container if it begins with the GLB magic number, or its name ends in
// ".glb".
func extractFile(e *env, path string, opts *glb.Options) (*glb.SceneDocument, error) {
	data, err := readFile(e, path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte("glTF")) || strings.EqualFold(filepath.Ext(path), ".glb") {
		return glb.ParseGLB(data, opts)
	}
	doc, err := glb.DecodeGLTF(data, opts)
	var ge *glb.Error
	if errors.As(err, &ge) && ge.Step == "json" {
		return nil, fmt.Errorf("%s is neither a GLB container nor glTF text: %w", path, err)
	}
	return doc, err
}
