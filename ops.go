package symrs

import (
	"math/big"
)

// Operand is the set of types that convert to an Expr. Integers convert to
// Integer, floats to Approx, and Symbols to Sym.
type Operand interface {
	Expr | Symbol | *big.Int |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// From converts an operand to an Expr.
func From[T Operand](x T) Expr {
	switch x := any(x).(type) {
	case Expr:
		return x
	case Symbol:
		return x.Expr()
	case *big.Int:
		return Int(x)
	case int:
		return Int64(int64(x))
	case int8:
		return Int64(int64(x))
	case int16:
		return Int64(int64(x))
	case int32:
		return Int64(int64(x))
	case int64:
		return Int64(x)
	case uint:
		return uint64Expr(uint64(x))
	case uint8:
		return uint64Expr(uint64(x))
	case uint16:
		return uint64Expr(uint64(x))
	case uint32:
		return uint64Expr(uint64(x))
	case uint64:
		return uint64Expr(x)
	case uintptr:
		return uint64Expr(uint64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	default:
		panic("symrs: unreachable operand type")
	}
}

func uint64Expr(x uint64) Expr {
	return Expr{kind: Integer, i: new(big.Int).SetUint64(x)}
}

// Add returns a + b. See Expr.Add.
func Add[A, B Operand](a A, b B) Expr {
	return From(a).Add(From(b))
}

// Sub returns a - b. See Expr.Sub.
func Sub[A, B Operand](a A, b B) Expr {
	return From(a).Sub(From(b))
}

// Mul returns a * b. See Expr.Mul.
func Mul[A, B Operand](a A, b B) Expr {
	return From(a).Mul(From(b))
}

// Div returns a / b. See Expr.Div.
func Div[A, B Operand](a A, b B) Expr {
	return From(a).Div(From(b))
}

// Power returns a ^ b. See Expr.Pow.
func Power[A, B Operand](a A, b B) Expr {
	return From(a).Pow(From(b))
}

// Negate returns -a. See Expr.Neg.
func Negate[A Operand](a A) Expr {
	return From(a).Neg()
}

// Add returns e + o. If e is a Sum, the result is that sum with o appended as
// a new last term; otherwise it is the Sum of e and o. Only e is flattened: a
// Sum o stays a single nested term.
func (e Expr) Add(o Expr) Expr {
	return e.chain(Sum, o)
}

// Sub returns e + (-o).
func (e Expr) Sub(o Expr) Expr {
	return e.Add(o.Neg())
}

// Mul returns e * o, flattening e the same way as Add does for sums.
func (e Expr) Mul(o Expr) Expr {
	return e.chain(Product, o)
}

// Div returns the Ratio of e to o. Ratios are never flattened or cancelled.
func (e Expr) Div(o Expr) Expr {
	return NewRatio(e, o)
}

// Pow returns e raised to o.
func (e Expr) Pow(o Expr) Expr {
	return NewPow(e, o)
}

// Neg returns -e.
func (e Expr) Neg() Expr {
	return NewNeg(e)
}

// chain appends o to e if e has kind k or creates a new k of e and o.
func (e Expr) chain(k Kind, o Expr) Expr {
	if e.kind != k {
		return Expr{kind: k, args: []Expr{e, o}}
	}
	args := make([]Expr, len(e.args), len(e.args)+1)
	copy(args, e.args)
	return Expr{kind: k, args: append(args, o)}
}
