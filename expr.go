package symrs

import (
	"math/big"
)

// Expr is a symbolic expression. Exprs are immutable; every method that
// builds an Expr returns a new value and never modifies its operands. The
// zero Expr is Undefined.
type Expr struct {
	kind Kind

	// i is the value of an Integer.
	i *big.Int
	// f is the value of an Approx.
	f float64
	// sym is the symbol of a Sym.
	sym Symbol
	// args are the operands of a composite. Neg has one, Ratio and Pow have
	// two (numerator or base first), Sum and Product have any number.
	args []Expr
}

// Kind is the kind of an Expr.
type Kind int8

const (
	// Undefined is the result of something that cannot be represented.
	Undefined Kind = iota

	Integer // arbitrary-precision integer
	Sym     // interned symbol
	Approx  // float64 approximation

	Neg     // negation of one operand
	Sum     // sum of any number of operands
	Product // product of any number of operands
	Ratio   // numerator divided by denominator
	Pow     // base raised to exponent
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// Int creates an integer expression. x is copied.
func Int(x *big.Int) Expr {
	return Expr{kind: Integer, i: new(big.Int).Set(x)}
}

// Int64 creates an integer expression.
func Int64(x int64) Expr {
	return Expr{kind: Integer, i: big.NewInt(x)}
}

// Float creates an approximate expression.
func Float(x float64) Expr {
	return Expr{kind: Approx, f: x}
}

// Undef returns the Undefined expression.
func Undef() Expr {
	return Expr{}
}

// NewNeg creates the negation of e.
func NewNeg(e Expr) Expr {
	return Expr{kind: Neg, args: []Expr{e}}
}

// NewPow creates base raised to exp.
func NewPow(base, exp Expr) Expr {
	return Expr{kind: Pow, args: []Expr{base, exp}}
}

// NewRatio creates num divided by den.
func NewRatio(num, den Expr) Expr {
	return Expr{kind: Ratio, args: []Expr{num, den}}
}

// NewSum creates a sum of exactly the given terms. Sums among the terms are
// kept as nested operands.
func NewSum(terms ...Expr) Expr {
	return Expr{kind: Sum, args: append([]Expr(nil), terms...)}
}

// NewProduct creates a product of exactly the given factors. Products among
// the factors are kept as nested operands.
func NewProduct(factors ...Expr) Expr {
	return Expr{kind: Product, args: append([]Expr(nil), factors...)}
}

// Kind returns the kind of e.
func (e Expr) Kind() Kind {
	return e.kind
}

// Int returns a copy of the value of an Integer, or nil for other kinds.
func (e Expr) Int() *big.Int {
	if e.kind != Integer {
		return nil
	}
	return new(big.Int).Set(e.i)
}

// Float returns the value of an Approx, or 0 for other kinds.
func (e Expr) Float() float64 {
	return e.f
}

// Symbol returns the symbol of a Sym, or the zero Symbol for other kinds.
func (e Expr) Symbol() Symbol {
	return e.sym
}

// Len returns the number of operands of e.
func (e Expr) Len() int {
	return len(e.args)
}

// Arg returns the i'th operand of e.
func (e Expr) Arg(i int) Expr {
	return e.args[i]
}

// Args returns a copy of the operands of e.
func (e Expr) Args() []Expr {
	if e.args == nil {
		return nil
	}
	return append([]Expr(nil), e.args...)
}

// IsPrimitive returns whether e is an Integer, Sym, or Approx.
func (e Expr) IsPrimitive() bool {
	switch e.kind {
	case Integer, Sym, Approx:
		return true
	default:
		return false
	}
}

// Rank returns the display priority of e. A lower rank binds more tightly:
// primitives and Undefined are 0, then Pow, Neg, Product and Ratio, Sum.
func (e Expr) Rank() int {
	return e.kind.Rank()
}

// Rank returns the display priority of expressions of kind k.
func (k Kind) Rank() int {
	switch k {
	case Integer, Sym, Approx, Undefined:
		return 0
	case Pow:
		return 2
	case Neg:
		return 3
	case Product, Ratio:
		return 4
	case Sum:
		return 5
	default:
		panic("symrs: invalid expression kind " + k.String())
	}
}

// Equal returns whether e and o are the same tree. Approx values compare with
// ==, so an Approx NaN is not equal to itself.
func (e Expr) Equal(o Expr) bool {
	if e.kind != o.kind || len(e.args) != len(o.args) {
		return false
	}
	switch e.kind {
	case Integer:
		return e.i.Cmp(o.i) == 0
	case Sym:
		return e.sym == o.sym
	case Approx:
		return e.f == o.f
	}
	for k, a := range e.args {
		if !a.Equal(o.args[k]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of e. Symbols are shared, since they are values.
func (e Expr) Clone() Expr {
	r := e
	if e.i != nil {
		r.i = new(big.Int).Set(e.i)
	}
	if e.args != nil {
		r.args = make([]Expr, len(e.args))
		for k, a := range e.args {
			r.args[k] = a.Clone()
		}
	}
	return r
}
