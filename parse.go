package symrs

import (
	"math/big"
	"strconv"
	"unicode/utf8"
)

// expr      = sum
// sum       = product { ('+' | '-') product }
// product   = negative { ('*' | '/') negative }
// negative  = pow | '-' pow
// pow       = unit [ '^' negative ]
// unit      = primitive | '(' sum ')'
// primitive = float | integer | symbol

// Parse parses an expression from the start of src, interning symbols in tab.
// It parses as much of src as forms an expression and returns the unparsed
// remainder with leading whitespace removed, so the remainder is empty iff all
// of src was parsed. If no expression starts src, or a parenthesized group is
// malformed, the result is an error implementing InputError.
func Parse(tab *Table, src string, opts ...ParseOption) (Expr, string, error) {
	var c parsectx
	for _, opt := range opts {
		c = opt.parseOption(c)
	}
	p := parser{tab: tab, lex: lex(src), max: c.maxdepth}
	p.lex.noalt = c.noalt
	e, err := p.parseSum()
	if err != nil {
		if ce, ok := err.(committed); ok {
			err = ce.InputError
		}
		return Expr{}, "", err
	}
	p.lex.skipSpace()
	return e, p.lex.rest(), nil
}

// ParseString parses all of src as one expression. Input left over after the
// expression is a *TrailingError.
func ParseString(tab *Table, src string, opts ...ParseOption) (Expr, error) {
	e, rest, err := Parse(tab, src, opts...)
	if err != nil {
		return Expr{}, err
	}
	if rest != "" {
		col := utf8.RuneCountInString(src[:len(src)-len(rest)]) + 1
		return Expr{}, &TrailingError{Col: col, Rest: rest}
	}
	return e, nil
}

// MustParse is like ParseString but panics if src cannot be parsed.
func MustParse(tab *Table, src string, opts ...ParseOption) Expr {
	e, err := ParseString(tab, src, opts...)
	if err != nil {
		panic("symrs: MustParse(" + strconv.Quote(src) + "): " + err.Error())
	}
	return e
}

type parser struct {
	tab *Table
	lex *lexer
	// depth is the current nesting of parentheses and exponents.
	depth int
	// max is the nesting limit, or 0 for none.
	max int
}

// committed wraps an error found after the parser has committed to an
// alternative, i.e. inside parentheses. Callers never backtrack past it.
type committed struct {
	InputError
}

func commit(err error) error {
	switch err := err.(type) {
	case committed:
		return err
	case InputError:
		return committed{err}
	default:
		panic("symrs: parse error without position: " + err.Error())
	}
}

func isCommitted(err error) bool {
	_, ok := err.(committed)
	return ok
}

// enter descends one nesting level.
func (p *parser) enter() error {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		p.depth--
		p.lex.skipSpace()
		return commit(&DepthError{Col: p.lex.pos(), Max: p.max, Rest: p.lex.rest()})
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseSum folds products into sums. An operator not followed by a product is
// left unparsed.
func (p *parser) parseSum() (Expr, error) {
	acc, err := p.parseProduct()
	if err != nil {
		return Expr{}, err
	}
	for {
		m := p.lex.mark()
		op, ok := p.lex.op("+-")
		if !ok {
			return acc, nil
		}
		rhs, err := p.parseProduct()
		if err != nil {
			if isCommitted(err) {
				return Expr{}, err
			}
			p.lex.reset(m)
			return acc, nil
		}
		if op.text == "-" {
			rhs = rhs.Neg()
		}
		acc = acc.Add(rhs)
	}
}

// parseProduct folds negatives into products and ratios.
func (p *parser) parseProduct() (Expr, error) {
	acc, err := p.parseNegative()
	if err != nil {
		return Expr{}, err
	}
	for {
		m := p.lex.mark()
		op, ok := p.lex.op("*/")
		if !ok {
			return acc, nil
		}
		rhs, err := p.parseNegative()
		if err != nil {
			if isCommitted(err) {
				return Expr{}, err
			}
			p.lex.reset(m)
			return acc, nil
		}
		if op.text == "*" {
			acc = acc.Mul(rhs)
		} else {
			acc = acc.Div(rhs)
		}
	}
}

// parseNegative parses a power, possibly negated. A numeral directly after
// the minus is a negative literal, so -2^2 is (-2)^2, but -x^2 is -(x^2).
func (p *parser) parseNegative() (Expr, error) {
	m := p.lex.mark()
	e, err := p.parsePow()
	if err == nil || isCommitted(err) {
		return e, err
	}
	p.lex.reset(m)
	if _, ok := p.lex.op("-"); !ok {
		return Expr{}, err
	}
	e, err = p.parsePow()
	if err != nil {
		return Expr{}, err
	}
	return e.Neg(), nil
}

// parsePow parses a unit with an optional right-associative exponent.
func (p *parser) parsePow() (Expr, error) {
	base, err := p.parseUnit()
	if err != nil {
		return Expr{}, err
	}
	m := p.lex.mark()
	if _, ok := p.lex.op("^"); !ok {
		return base, nil
	}
	if err := p.enter(); err != nil {
		return Expr{}, err
	}
	exp, err := p.parseNegative()
	p.leave()
	if err != nil {
		if isCommitted(err) {
			return Expr{}, err
		}
		p.lex.reset(m)
		return base, nil
	}
	return base.Pow(exp), nil
}

// parseUnit parses a primitive or a parenthesized sum. Once an open
// parenthesis is scanned, any error is committed.
func (p *parser) parseUnit() (Expr, error) {
	e, err := p.parsePrimitive()
	if err == nil {
		return e, nil
	}
	m := p.lex.mark()
	open := p.lex.next()
	if open.kind != tokenOpen {
		p.lex.reset(m)
		return Expr{}, err
	}
	if err := p.enter(); err != nil {
		return Expr{}, err
	}
	e, err = p.parseSum()
	p.leave()
	if err != nil {
		return Expr{}, commit(err)
	}
	end := p.lex.next()
	if end.kind != tokenClose {
		return Expr{}, commit(&BracketError{Col: end.pos, Open: open.pos, Found: end.text, Rest: p.lex.src[end.off:]})
	}
	return e, nil
}

// parsePrimitive parses a float, integer, or symbol, in that order. A float
// that does not fit in a float64 is not a float.
func (p *parser) parsePrimitive() (Expr, error) {
	p.lex.skipSpace()
	m := p.lex.mark()
	if tok, ok := p.lex.scanFloat(); ok {
		f, err := strconv.ParseFloat(tok.text, 64)
		if err == nil {
			return Float(f), nil
		}
		p.lex.reset(m)
	}
	if tok, ok := p.lex.scanInt(); ok {
		i, ok := new(big.Int).SetString(tok.text, 10)
		if !ok {
			p.lex.reset(m)
			return Expr{}, p.lex.error("number", tok)
		}
		return Expr{kind: Integer, i: i}, nil
	}
	if tok, ok := p.lex.scanIdent(); ok {
		return p.tab.Symbol(tok.text), nil
	}
	return Expr{}, p.unexpected()
}

// unexpected creates an error for the next token, which cannot start an
// operand. Nothing is scanned.
func (p *parser) unexpected() error {
	m := p.lex.mark()
	tok := p.lex.next()
	p.lex.reset(m)
	rest := p.lex.src[tok.off:]
	switch tok.kind {
	case tokenEOF, tokenClose:
		return &EmptyExpressionError{Col: tok.pos, End: tok.text, Rest: rest}
	case tokenOp:
		return &OperatorError{Col: tok.pos, Operator: tok.text, Rest: rest}
	case tokenInvalid:
		if tok.text == "." {
			return p.lex.error("number", tok)
		}
		return p.lex.error("", tok)
	default:
		// An open bracket, which parseUnit handles instead.
		return p.lex.error("", tok)
	}
}
