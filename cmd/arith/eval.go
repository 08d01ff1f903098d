package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/arith/internal/config"
	"github.com/you-not-fish/arith/internal/driver"
	"github.com/you-not-fish/arith/internal/syntax"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		f     runFlags
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "eval [file...]",
		Short: "Evaluate a term to a value",
		Long: `Evaluate parses a term, reduces it to a value and prints both.

Without arguments a single line is read from standard input. With several
files each is evaluated in turn and all failures are reported at the end.`,
		Example: `  echo 'if iszero 0 then succ 0 else 0' | arith eval
  arith eval -e 'pred succ succ 0' --format debug
  arith eval --trace --numerals prog.arith`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.settings(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			inputs, files, err := a.inputs(&f, args)
			if err != nil {
				return err
			}
			if files {
				c.LenientWhitespace = true
			}
			if trace && c.BigStep {
				return errors.New("--trace requires small-step evaluation")
			}
			if len(inputs) > 1 {
				if trace {
					return errors.New("--trace needs a single input")
				}
				return a.evalAll(c, inputs)
			}
			return a.evalOne(c, inputs[0], trace)
		},
	}
	f.register(cmd.Flags(), true)
	cmd.Flags().BoolVar(&trace, "trace", false, "Print the term after every reduction step")
	return cmd
}

// evalOne prints the input term as soon as it is parsed, then the trace,
// then the value.
func (a *app) evalOne(c *config.Config, in driver.Input, trace bool) error {
	opts := driverOptions(c, in.Name)
	t, err := driver.Parse(in.Source, opts)
	if err != nil {
		return err
	}

	if c.Format == config.FormatJSON {
		var steps []string
		if trace {
			opts.Trace = func(_ int, t syntax.Term) {
				steps = append(steps, render(c, t))
			}
		}
		r, err := driver.Evaluate(t, opts)
		if err != nil {
			return err
		}
		res := newJSONResult(c, in.Name, t, r.Value, r.Steps)
		res.Trace = steps
		return writeJSON(a.stdout, res)
	}

	writeSection(a.stdout, c, "Input", t)
	if trace {
		opts.Trace = func(step int, t syntax.Term) {
			fmt.Fprintf(a.stdout, "Step %d: %s\n", step, render(c, t))
		}
	}
	r, err := driver.Evaluate(t, opts)
	if err != nil {
		return err
	}
	writeSection(a.stdout, c, "Output", r.Value)
	return nil
}

// evalAll evaluates every input and prints the successful results.
func (a *app) evalAll(c *config.Config, inputs []driver.Input) error {
	results, err := driver.RunAll(inputs, driverOptions(c, ""))
	for i, r := range results {
		if r == nil {
			continue
		}
		if c.Format == config.FormatJSON {
			if err := writeJSON(a.stdout, newJSONResult(c, inputs[i].Name, r.Term, r.Value, r.Steps)); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(a.stdout, "==> %s <==\n", inputs[i].Name)
		writeSection(a.stdout, c, "Input", r.Term)
		writeSection(a.stdout, c, "Output", r.Value)
	}
	return err
}
