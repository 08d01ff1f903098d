package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/you-not-fish/arith/internal/config"
	"github.com/you-not-fish/arith/internal/driver"
)

// runFlags are the flags shared by eval and parse. Set flags override the
// config file.
type runFlags struct {
	expr     string
	format   string
	numerals bool
	parser   string
	maxDepth int
	maxSteps int
	lenient  bool
	bigStep  bool
}

func (f *runFlags) register(fs *pflag.FlagSet, eval bool) {
	fs.StringVarP(&f.expr, "expr", "e", "", "Term to process instead of reading input")
	fs.StringVar(&f.format, "format", config.FormatText, "Output format (text, debug, tree, json, dump)")
	fs.StringVar(&f.parser, "parser", config.ParserRecursive, "Parser to use (recursive, reference)")
	fs.IntVar(&f.maxDepth, "max-depth", 0, "Maximum nesting depth (0 for the default)")
	fs.BoolVar(&f.lenient, "lenient", false, "Accept tabs and line breaks between tokens")
	if eval {
		fs.BoolVar(&f.numerals, "numerals", false, "Print numeric values as decimal numbers")
		fs.IntVar(&f.maxSteps, "max-steps", 0, "Maximum reduction steps (0 for no limit)")
		fs.BoolVar(&f.bigStep, "big-step", false, "Evaluate with the big-step semantics")
	}
}

// settings returns the loaded config with every changed flag applied.
func (f *runFlags) settings(fs *pflag.FlagSet, base *config.Config) (*config.Config, error) {
	c := *base
	if fs.Changed("format") {
		c.Format = f.format
	}
	if fs.Changed("parser") {
		c.Parser = f.parser
	}
	if fs.Changed("max-depth") {
		c.MaxDepth = f.maxDepth
	}
	if fs.Changed("lenient") {
		c.LenientWhitespace = f.lenient
	}
	if fs.Changed("numerals") {
		c.Numerals = f.numerals
	}
	if fs.Changed("max-steps") {
		c.MaxSteps = f.maxSteps
	}
	if fs.Changed("big-step") {
		c.BigStep = f.bigStep
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// inputs collects the sources named on the command line: the -e term, the
// files, or one line of standard input. Files may span several lines, so
// they are read with lenient whitespace.
func (a *app) inputs(f *runFlags, args []string) ([]driver.Input, bool, error) {
	switch {
	case f.expr != "" && len(args) > 0:
		return nil, false, errors.New("-e cannot be combined with input files")
	case f.expr != "":
		return []driver.Input{{Source: f.expr}}, false, nil
	case len(args) > 0:
		inputs := make([]driver.Input, 0, len(args))
		for _, path := range args {
			src, err := driver.ReadFile(path)
			if err != nil {
				return nil, false, err
			}
			inputs = append(inputs, driver.Input{Name: path, Source: src})
		}
		return inputs, true, nil
	}
	line, err := driver.ReadLine(a.stdin)
	if err != nil {
		return nil, false, err
	}
	return []driver.Input{{Source: line}}, false, nil
}

func driverOptions(c *config.Config, filename string) driver.Options {
	return driver.Options{
		Filename:          filename,
		MaxDepth:          c.MaxDepth,
		MaxSteps:          c.MaxSteps,
		LenientWhitespace: c.LenientWhitespace,
		BigStep:           c.BigStep,
		Reference:         c.Parser == config.ParserReference,
	}
}
