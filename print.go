package symrs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders e as infix text with as few parentheses as needed for Parse
// to produce the same tree, apart from flattening of leading sums and
// products.
func (e Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

// Format implements fmt.Formatter. The %v and %s verbs print the same text as
// String. %+v prints the tree with kind names, e.g. Sum(Integer(1), Sym(x)).
// %q prints String quoted.
func (e Expr) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			var b strings.Builder
			e.fmttree(&b)
			io.WriteString(f, b.String())
			return
		}
		io.WriteString(f, e.String())
	case 's':
		io.WriteString(f, e.String())
	case 'q':
		io.WriteString(f, strconv.Quote(e.String()))
	default:
		fmt.Fprintf(f, "%%!%c(symrs.Expr=%s)", verb, e.String())
	}
}

func (e Expr) fmt(b *strings.Builder) {
	switch e.kind {
	case Undefined:
		b.WriteString("Undefined")
	case Integer:
		b.WriteString(e.i.String())
	case Sym:
		b.WriteString(e.sym.String())
	case Approx:
		b.WriteString(formatFloat(e.f))
	case Neg:
		// A bare numeral after the minus would read back as a negative
		// literal, so it gets parentheses too.
		var t strings.Builder
		e.args[0].fmt(&t)
		s := t.String()
		b.WriteByte('-')
		if e.args[0].Rank() < e.Rank() && !startsNumber(s) {
			b.WriteString(s)
			return
		}
		b.WriteByte('(')
		b.WriteString(s)
		b.WriteByte(')')
	case Sum:
		e.fmtargs(b, " + ")
	case Product:
		e.fmtargs(b, " * ")
	case Ratio:
		e.fmtargs(b, " / ")
	case Pow:
		e.fmtargs(b, " ^ ")
	default:
		panic("symrs: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

// fmtargs writes the operands of e separated by op.
func (e Expr) fmtargs(b *strings.Builder, op string) {
	for k, a := range e.args {
		if k > 0 {
			b.WriteString(op)
		}
		e.fmtchild(b, a)
	}
}

// fmtchild writes an operand of e, parenthesized unless it binds more tightly
// than e.
func (e Expr) fmtchild(b *strings.Builder, c Expr) {
	if c.Rank() < e.Rank() {
		c.fmt(b)
		return
	}
	b.WriteByte('(')
	c.fmt(b)
	b.WriteByte(')')
}

func (e Expr) fmttree(b *strings.Builder) {
	b.WriteString(e.kind.String())
	switch e.kind {
	case Undefined:
		return
	case Integer, Sym, Approx:
		b.WriteByte('(')
		e.fmt(b)
		b.WriteByte(')')
		return
	}
	b.WriteByte('(')
	for k, a := range e.args {
		if k > 0 {
			b.WriteString(", ")
		}
		a.fmttree(b)
	}
	b.WriteByte(')')
}

// formatFloat formats f in the shortest form that parses back to f. Integral
// values get a fraction so that they do not read back as integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func startsNumber(s string) bool {
	return s != "" && (isDigit(rune(s[0])) || s[0] == '.')
}
