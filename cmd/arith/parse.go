package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/arith/internal/driver"
	"github.com/you-not-fish/arith/internal/grammar"
)

func newParseCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a term and print it without evaluating",
		Args:  cobra.MaximumNArgs(1),
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
			t, err := driver.Parse(inputs[0].Source, driverOptions(c, inputs[0].Name))
			if err != nil {
				return err
			}
			return writeTerm(a.stdout, c, t)
		},
	}
	f.register(cmd.Flags(), false)
	return cmd
}

func newGrammarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the term grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.stdout, grammar.EBNF())
			return err
		},
	}
}
