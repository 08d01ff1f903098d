package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/you-not-fish/arith/internal/config"
	"github.com/you-not-fish/arith/internal/syntax"
)

// render returns t on one line in the configured notation.
func render(c *config.Config, t syntax.Term) string {
	if c.Numerals {
		if n, ok := syntax.Numeral(t); ok {
			return strconv.Itoa(n)
		}
	}
	if c.Format == config.FormatDebug {
		return syntax.Debug(t)
	}
	return t.String()
}

// writeTerm writes t alone, as the parse command prints it.
func writeTerm(w io.Writer, c *config.Config, t syntax.Term) error {
	switch c.Format {
	case config.FormatTree:
		syntax.Fprint(w, t)
	case config.FormatDump:
		syntax.Fdump(w, t)
	case config.FormatJSON:
		return syntax.FprintJSON(w, t)
	default:
		fmt.Fprintln(w, render(c, t))
	}
	return nil
}

// writeSection writes a labelled term, "Input: succ 0" in the text formats
// and a heading followed by the tree in the multi-line ones.
func writeSection(w io.Writer, c *config.Config, label string, t syntax.Term) {
	switch c.Format {
	case config.FormatTree:
		fmt.Fprintf(w, "%s:\n", label)
		syntax.Fprint(w, t)
	case config.FormatDump:
		fmt.Fprintf(w, "%s:\n", label)
		syntax.Fdump(w, t)
	default:
		fmt.Fprintf(w, "%s: %s\n", label, render(c, t))
	}
}

// jsonResult is the eval command's output in the json format.
type jsonResult struct {
	File   string      `json:"file,omitempty"`
	Input  interface{} `json:"input"`
	Output interface{} `json:"output"`
	Number *int        `json:"number,omitempty"`
	Steps  int         `json:"steps"`
	Trace  []string    `json:"trace,omitempty"`
}

func newJSONResult(c *config.Config, file string, term, value syntax.Term, steps int) *jsonResult {
	r := &jsonResult{
		File:   file,
		Input:  syntax.ToJSON(term),
		Output: syntax.ToJSON(value),
		Steps:  steps,
	}
	if c.Numerals {
		if n, ok := syntax.Numeral(value); ok {
			r.Number = &n
		}
	}
	return r
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
