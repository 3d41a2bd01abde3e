// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/creachadair/jscene"
	"github.com/creachadair/jscene/ast"
)

// The compliance cases are those of "Parsing JSON is a Minefield",
// https://seriot.ch/projects/parsing_json.html. Only the affirmative (y_*)
// and negative (n_*) cases are checked.
var (
	doCompliance = flag.Bool("compliance-test", false,
		"Run the JSON compliance suite")
	suiteURL = flag.String("compliance-test-repo", "https://github.com/nst/JSONTestSuite",
		"Compliance suite repository URL")
	suiteCache = flag.String("compliance-test-cache", "compliance-suite.zip",
		"Local cache of the compliance suite archive")
)

// Negative cases the parser accepts on purpose. Numbers may carry a leading
// plus sign, and unrecognized or incomplete escapes are kept rather than
// rejected.
var lenientCases = map[string]bool{
	"n_number_+1": true,

	"n_string_1_surrogate_then_escape_u":           true,
	"n_string_1_surrogate_then_escape_u1":          true,
	"n_string_1_surrogate_then_escape_u1x":         true,
	"n_string_backslash_00":                        true,
	"n_string_escape_x":                            true,
	"n_string_escaped_ctrl_char_tab":               true,
	"n_string_escaped_emoji":                       true,
	"n_string_incomplete_escaped_character":        true,
	"n_string_incomplete_surrogate":                true,
	"n_string_incomplete_surrogate_escape_invalid": true,
	"n_string_invalid-utf-8-in-escape":             true,
	"n_string_invalid_backslash_esc":               true,
	"n_string_invalid_unicode_escape":              true,
	"n_string_invalid_utf8_after_escape":           true,
	"n_string_unicode_CapitalU":                    true,
}

// loadSuite returns the compliance suite archive, fetching it if a cached
// copy is not already present.
func loadSuite(t *testing.T) *zip.Reader {
	t.Helper()
	data, err := os.ReadFile(*suiteCache)
	if errors.Is(err, os.ErrNotExist) {
		url := *suiteURL + "/archive/refs/heads/master.zip"
		t.Logf("Fetching %q ...", url)
		rsp, err := http.Get(url)
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		defer rsp.Body.Close()
		if rsp.StatusCode != http.StatusOK {
			t.Fatalf("Fetch failed: %s", rsp.Status)
		}
		data, err = io.ReadAll(rsp.Body)
		if err != nil {
			t.Fatalf("Read archive: %v", err)
		}
		if err := os.WriteFile(*suiteCache, data, 0644); err != nil {
			t.Logf("Warning: caching archive: %v", err)
		}
	} else if err != nil {
		t.Fatalf("Read cached archive: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Open archive: %v", err)
	}
	return zr
}

func parseZipFile(t *testing.T, f *zip.File) (ast.Value, error) {
	t.Helper()
	rc, err := f.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", f.Name, err)
	}
	defer rc.Close()
	return ast.ParseReader(rc)
}

func TestCompliance(t *testing.T) {
	if !*doCompliance {
		t.Skip("Skipping compliance test because --compliance-test is false")
	}
	var numYes, numNo int
	for _, f := range loadSuite(t).File {
		_, tail, ok := strings.Cut(f.Name, "/test_parsing/")
		if !ok || path.Ext(tail) != ".json" {
			continue
		}
		name := strings.TrimSuffix(tail, ".json")
		switch tag, _, _ := strings.Cut(name, "_"); tag {
		case "y":
			numYes++
			t.Run(name, func(t *testing.T) {
				if _, err := parseZipFile(t, f); err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			})
		case "n":
			numNo++
			t.Run(name, func(t *testing.T) {
				v, err := parseZipFile(t, f)
				if err == nil {
					if lenientCases[name] {
						t.Skipf("Accepted by design: %v", v)
					}
					t.Errorf("Got %v, wanted error", v)
					return
				}
				var serr *jscene.SyntaxError
				if !errors.As(err, &serr) {
					t.Errorf("Error has type %T, want *SyntaxError", err)
				}
			})
		}
	}
	t.Logf("Ran %d positive and %d negative cases", numYes, numNo)
}
