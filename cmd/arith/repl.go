package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/arith/internal/config"
	"github.com/you-not-fish/arith/internal/driver"
	"github.com/you-not-fish/arith/internal/syntax"
)

const replHelp = `Enter a term to evaluate it.
  :trace   toggle printing of reduction steps
  :help    show this message
  :quit    leave (also Ctrl-D)`

// prompter reads lines interactively.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// linerPrompter is a prompter backed by a terminal line editor.
// History is loaded from and saved to historyFile when it is set.
type linerPrompter struct {
	*liner.State
	historyFile string
}

func newLinerPrompter(historyFile string) (prompter, error) {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := l.ReadHistory(f); err != nil {
				logrus.Warnf("Reading history %s: %v", historyFile, err)
			}
			f.Close()
		}
	}
	return &linerPrompter{State: l, historyFile: historyFile}, nil
}

func (p *linerPrompter) Close() error {
	defer p.State.Close()
	if p.historyFile == "" {
		return nil
	}
	f, err := os.Create(p.historyFile)
	if err != nil {
		return errors.Wrap(err, "saving history")
	}
	defer f.Close()
	if _, err := p.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "saving history %s", p.historyFile)
	}
	return nil
}

func newReplCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate terms interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.settings(cmd.Flags(), a.cfg)
			if err != nil {
				return err
			}
			return a.repl(c)
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&f.numerals, "numerals", false, "Print numeric values as decimal numbers")
	fs.BoolVar(&f.bigStep, "big-step", false, "Evaluate with the big-step semantics")
	fs.IntVar(&f.maxSteps, "max-steps", 0, "Maximum reduction steps (0 for no limit)")
	return cmd
}

func (a *app) repl(c *config.Config) error {
	p, err := a.newPrompter(c.HistoryFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			logrus.Warn(err)
		}
	}()

	fmt.Fprintf(a.stdout, "arith %s, :help for help\n", Version)
	trace := false
	for {
		line, err := p.Prompt("arith> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Fprintln(a.stdout)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.AppendHistory(line)

		switch line {
		case ":q", ":quit":
			return nil
		case ":help":
			fmt.Fprintln(a.stdout, replHelp)
			continue
		case ":trace":
			trace = !trace
			fmt.Fprintf(a.stdout, "trace: %t\n", trace)
			continue
		}

		opts := driverOptions(c, "")
		if trace && !c.BigStep {
			opts.Trace = func(step int, t syntax.Term) {
				fmt.Fprintf(a.stdout, "  %d: %s\n", step, render(c, t))
			}
		}
		r, err := driver.Run(line, opts)
		if err != nil {
			fmt.Fprintln(a.stderr, formatError(err))
			continue
		}
		fmt.Fprintln(a.stdout, render(c, r.Value))
	}
}
