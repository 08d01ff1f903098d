package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree representation of t to w, one node per line.
func Fprint(w io.Writer, t Term) {
	p := &printer{w: w}
	p.print(t)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(t Term) {
	if t == nil {
		return
	}

	switch t := t.(type) {
	case *True:
		p.printf("True\n")

	case *False:
		p.printf("False\n")

	case *Zero:
		p.printf("Zero\n")

	case *Succ:
		p.printf("Succ\n")
		p.indent++
		p.print(t.X)
		p.indent--

	case *Pred:
		p.printf("Pred\n")
		p.indent++
		p.print(t.X)
		p.indent--

	case *IsZero:
		p.printf("IsZero\n")
		p.indent++
		p.print(t.X)
		p.indent--

	case *If:
		p.printf("If\n")
		p.indent++
		p.printf("Cond:\n")
		p.indent++
		p.print(t.Cond)
		p.indent--
		p.printf("Then:\n")
		p.indent++
		p.print(t.Then)
		p.indent--
		p.printf("Else:\n")
		p.indent++
		p.print(t.Else)
		p.indent--
		p.indent--

	default:
		p.printf("%T\n", t)
	}
}

// Debug returns t in constructor notation, e.g. "Succ(Pred(Zero))" or
// "IfThenElse(True, Zero, False)".
func Debug(t Term) string {
	var b strings.Builder
	writeDebug(&b, t)
	return b.String()
}

func writeDebug(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case *True:
		b.WriteString("True")
	case *False:
		b.WriteString("False")
	case *Zero:
		b.WriteString("Zero")
	case *Succ:
		b.WriteString("Succ(")
		writeDebug(b, t.X)
		b.WriteByte(')')
	case *Pred:
		b.WriteString("Pred(")
		writeDebug(b, t.X)
		b.WriteByte(')')
	case *IsZero:
		b.WriteString("IsZero(")
		writeDebug(b, t.X)
		b.WriteByte(')')
	case *If:
		b.WriteString("IfThenElse(")
		writeDebug(b, t.Cond)
		b.WriteString(", ")
		writeDebug(b, t.Then)
		b.WriteString(", ")
		writeDebug(b, t.Else)
		b.WriteByte(')')
	case nil:
		b.WriteString("<nil>")
	}
}
