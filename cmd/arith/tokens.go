package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/arith/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream with positions",
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
			mode := syntax.Mode(0)
			if files || c.LenientWhitespace {
				mode = syntax.LenientWhitespace
			}
			return a.emitTokens(inputs[0].Name, inputs[0].Source, mode)
		},
	}
	cmd.Flags().StringVarP(&f.expr, "expr", "e", "", "Term to scan instead of reading input")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "Accept tabs and line breaks between tokens")
	return cmd
}

// emitTokens scans src and prints all tokens with positions.
func (a *app) emitTokens(filename, src string, mode syntax.Mode) error {
	var errs []string
	errh := func(line, col uint32, msg string) {
		pos := fmt.Sprintf("%d:%d", line, col)
		if filename != "" {
			pos = filename + ":" + pos
		}
		errs = append(errs, pos+": "+msg)
	}

	s := syntax.NewScanner(filename, strings.NewReader(src), errh)
	s.SetMode(mode)

	w := a.stdout
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for {
		s.Next()
		tok := s.Token()
		fmt.Fprintf(w, "%-20s %-12s %s\n", s.Pos(), tok, formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

// formatLiteral quotes a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
