// Package main implements the arith command line tool.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/arith/internal/config"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the state shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Persistent flags
	configPath string
	logLevel   string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config

	// newPrompter opens the line editor used by the repl command.
	newPrompter func(historyFile string) (prompter, error)
}

// run executes the command line in args and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		newPrompter: newLinerPrompter,
	}
	return a.execute(args)
}

func (a *app) execute(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(a.stderr, formatError(err))
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "arith",
		Short:             "Parse and evaluate terms of the untyped arithmetic calculus",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default $"+config.EnvVar+" or "+config.DefaultPath()+")")
	pf.StringVar(&a.logLevel, "log-level", "", "Log messages above specified level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newEvalCmd(a),
		newParseCmd(a),
		newTokensCmd(a),
		newReplCmd(a),
		newGrammarCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup loads the configuration and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Find(a.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	logrus.SetOutput(a.stderr)
	logrus.SetLevel(lvl)

	a.cfg = cfg
	logrus.Debugf("Called %s.PersistentPreRunE(%s)", cmd.Name(), strings.Join(args, " "))
	if cfg.Path != "" {
		logrus.Debugf("Using config %s", cfg.Path)
	}
	return nil
}

func formatError(err error) string {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return fmt.Sprintf("Error: %+v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}
