// Package driver runs arith source text through parsing and evaluation.
package driver

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/you-not-fish/arith/internal/eval"
	"github.com/you-not-fish/arith/internal/grammar"
	"github.com/you-not-fish/arith/internal/syntax"
)

// Options controls a run.
type Options struct {
	Filename          string
	MaxDepth          int  // nesting limit for the parser; 0 means syntax.DefaultMaxDepth
	MaxSteps          int  // reduction budget; 0 means unbounded
	LenientWhitespace bool // accept tab, CR and LF between tokens
	BigStep           bool // evaluate with the big-step semantics
	Reference         bool // parse with the participle grammar instead of the hand parser

	// Trace, if set, receives every small-step reduct.
	Trace func(step int, t syntax.Term)

	// Log receives debug output. Nil means the standard logrus logger.
	Log logrus.FieldLogger
}

func (o *Options) log() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}

func (o *Options) mode() syntax.Mode {
	if o.LenientWhitespace {
		return syntax.LenientWhitespace
	}
	return 0
}

// Result is a term together with the value it evaluated to.
type Result struct {
	Input string
	Term  syntax.Term
	Value syntax.Term
	Steps int // small-step reductions; 0 for big-step runs
}

// Parse parses src into a term. Errors from the hand parser are
// *syntax.SyntaxError.
func Parse(src string, opts Options) (syntax.Term, error) {
	log := opts.log().WithField("file", opts.Filename)

	if opts.Reference {
		log.Debug("parsing with reference grammar")
		return grammar.Parse(opts.Filename, src, opts.mode())
	}

	p := syntax.NewParser(opts.Filename, strings.NewReader(src), nil)
	p.SetMode(opts.mode())
	p.SetMaxDepth(opts.MaxDepth)
	t, err := p.Parse()
	if err != nil {
		return nil, err
	}
	log.WithField("size", syntax.Size(t)).Debug("parsed term")
	return t, nil
}

// Evaluate reduces t to a value. Errors are *eval.StuckTerm or
// *eval.ResourceExceeded.
func Evaluate(t syntax.Term, opts Options) (*eval.Result, error) {
	log := opts.log().WithField("file", opts.Filename)

	if opts.BigStep {
		v, err := eval.EvalBig(t)
		if err != nil {
			return nil, err
		}
		log.WithField("value", v).Debug("evaluated big-step")
		return &eval.Result{Value: v}, nil
	}

	e := eval.Evaluator{
		MaxSteps: opts.MaxSteps,
		Trace: func(step int, t syntax.Term) {
			log.WithFields(logrus.Fields{"step": step, "term": t}).Debug("reduced")
			if opts.Trace != nil {
				opts.Trace(step, t)
			}
		},
	}
	r, err := e.Eval(t)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"value": r.Value, "steps": r.Steps}).Debug("evaluated")
	return r, nil
}

// Run parses src and evaluates the resulting term.
func Run(src string, opts Options) (*Result, error) {
	t, err := Parse(src, opts)
	if err != nil {
		return nil, err
	}
	r, err := Evaluate(t, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Input: src, Term: t, Value: r.Value, Steps: r.Steps}, nil
}

// Input is one named source text for RunAll.
type Input struct {
	Name   string
	Source string
}

// RunAll runs every input, continuing past failures. The returned slice is
// parallel to inputs with nil entries for failed runs; the error, if any,
// is a *multierror.Error holding one wrapped error per failure.
func RunAll(inputs []Input, opts Options) ([]*Result, error) {
	var result *multierror.Error
	results := make([]*Result, len(inputs))
	for i, in := range inputs {
		o := opts
		o.Filename = in.Name
		r, err := Run(in.Source, o)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "%s", in.Name))
			continue
		}
		results[i] = r
	}
	return results, result.ErrorOrNil()
}

// ReadLine returns the first line of r with trailing white space removed.
// An empty reader yields the empty string.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

// ReadFile returns the contents of the named file.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}
