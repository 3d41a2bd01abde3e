package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
	"github.com/creachadair/jscene/ast/cursor"
	"github.com/tailscale/hujson"
)

type fmtCmd struct {
	Files         []string `arg:"" optional:"" help:"Input files (default: stdin; - for stdin)." type:"path"`
	Indent        int      `help:"Spaces per indent level; 0 for compact output." default:"-1"`
	HuJSON        bool     `name:"hujson" help:"Accept comments and trailing commas in the input."`
	LegacyEscapes bool     `help:"Escape unprintable bytes in the legacy form, which does not round-trip."`
	MaxDepth      int      `help:"Maximum nesting depth of the input."`
	KeyCase       string   `help:"Rewrite object keys: snake, camel, lower_camel, kebab."`
}

func (c *fmtCmd) Run(e *env) error {
	fc := &e.cfg.Format
	if c.Indent >= 0 {
		fc.Indent = c.Indent
	}
	if c.MaxDepth > 0 {
		fc.MaxDepth = c.MaxDepth
	}
	if c.KeyCase != "" {
		fc.KeyCase = c.KeyCase
	}
	fc.HuJSON = fc.HuJSON || c.HuJSON
	fc.LegacyEscapes = fc.LegacyEscapes || c.LegacyEscapes
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	p := ast.NewParser(fc.MaxDepth)
	f := ast.Formatter{Indent: fc.Indent, LegacyEscapes: fc.LegacyEscapes}
	for _, path := range files {
		v, err := parseFile(e, p, path, fc.HuJSON)
		if err != nil {
			return err
		}
		if err := f.Format(e.out, rekey(v, fc.KeyCase)); err != nil {
			return err
		}
		fmt.Fprintln(e.out)
	}
	return nil
}

type getCmd struct {
	File   string   `arg:"" help:"Input file (- for stdin)." type:"path"`
	Path   []string `arg:"" optional:"" help:"Object keys and array offsets (negative from the end; put -- before a negative offset)."`
	Indent int      `help:"Spaces per indent level; 0 for compact output." default:"-1"`
	HuJSON bool     `name:"hujson" help:"Accept comments and trailing commas in the input."`
}

func (c *getCmd) Run(e *env) error {
	fc := e.cfg.Format
	if c.Indent >= 0 {
		fc.Indent = c.Indent
	}
	root, err := parseFile(e, ast.NewParser(fc.MaxDepth), c.File, fc.HuJSON || c.HuJSON)
	if err != nil {
		return err
	}

	// A path element that is an integer indexes an array, but names a key
	// of an object.
	cur := cursor.New(root)
	for _, elt := range c.Path {
		var step any = elt
		if _, ok := cur.Value().(ast.Array); ok {
			if n, err := strconv.Atoi(elt); err == nil {
				step = n
			}
		}
		if err := cur.Down(step).Err(); err != nil {
			return fmt.Errorf("path element %q: %w", elt, err)
		}
	}
	e.log.Debug().Strs("path", c.Path).Str("kind", kindName(cur.Value())).Msg("found value")

	f := ast.Formatter{Indent: fc.Indent, LegacyEscapes: fc.LegacyEscapes}
	if err := f.Format(e.out, cur.Value()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out)
	return err
}

func kindName(v ast.Value) string {
	if v == nil {
		return ast.NullKind.String()
	}
	return v.Kind().String()
}

// readFile reads the contents of path, or of stdin if path is "-".
func readFile(e *env, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(e.in)
	}
	return os.ReadFile(path)
}

// parseFile reads and parses a single JSON value from path.
func parseFile(e *env, p *ast.Parser, path string, huJSON bool) (ast.Value, error) {
	data, err := readFile(e, path)
	if err != nil {
		return nil, err
	}
	if huJSON {
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	v, err := p.ParseSingle(jscene.NewBytesCursor(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug().Str("file", path).Int("bytes", len(data)).Msg("parsed")
	return v, nil
}
