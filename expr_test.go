package symrs

import (
	"math"
	"math/big"
	"testing"
)

func TestRank(t *testing.T) {
	tab := NewTable()
	x := tab.Symbol("x")
	cases := []struct {
		e    Expr
		rank int
	}{
		{Undef(), 0},
		{Int64(1), 0},
		{x, 0},
		{Float(0.5), 0},
		{NewPow(x, x), 2},
		{NewNeg(x), 3},
		{NewProduct(x, x), 4},
		{NewRatio(x, x), 4},
		{NewSum(x, x), 5},
	}
	for _, c := range cases {
		if got := c.e.Rank(); got != c.rank {
			t.Errorf("%v has rank %d, want %d", c.e.Kind(), got, c.rank)
		}
	}
	if !(Pow.Rank() < Neg.Rank() && Neg.Rank() < Product.Rank() && Product.Rank() == Ratio.Rank() && Ratio.Rank() < Sum.Rank()) {
		t.Error("ranks out of order")
	}
	defer func() {
		if recover() == nil {
			t.Error("no panic ranking an invalid kind")
		}
	}()
	Kind(42).Rank()
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		Undefined: "Undefined",
		Integer:   "Integer",
		Sym:       "Sym",
		Approx:    "Approx",
		Neg:       "Neg",
		Sum:       "Sum",
		Product:   "Product",
		Ratio:     "Ratio",
		Pow:       "Pow",
		Kind(-1):  "Kind(-1)",
		Kind(9):   "Kind(9)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("kind %d: want %q, got %q", int(k), want, got)
		}
	}
}

func TestIsPrimitive(t *testing.T) {
	tab := NewTable()
	x := tab.Symbol("x")
	for _, e := range []Expr{Int64(0), x, Float(1)} {
		if !e.IsPrimitive() {
			t.Errorf("%+v is not primitive", e)
		}
	}
	for _, e := range []Expr{Undef(), NewNeg(x), NewSum(), NewProduct(x), NewRatio(x, x), NewPow(x, x)} {
		if e.IsPrimitive() {
			t.Errorf("%+v is primitive", e)
		}
	}
}

func TestAccessors(t *testing.T) {
	tab := NewTable()
	x := tab.Symbol("x")
	if s := x.Symbol(); s.String() != "x" || !s.Expr().Equal(x) {
		t.Errorf("x.Symbol() = %v", s)
	}
	if (Int64(1).Symbol() != Symbol{}) {
		t.Error("Integer has a symbol")
	}
	if f := Float(2.5).Float(); f != 2.5 {
		t.Errorf("Float(2.5).Float() = %v", f)
	}
	if Int64(1).Float() != 0 || x.Int() != nil {
		t.Error("accessors of the wrong kind return values")
	}
	r := NewRatio(x, Int64(2))
	if r.Len() != 2 || !r.Arg(0).Equal(x) || !r.Arg(1).Equal(Int64(2)) {
		t.Errorf("bad operands of %+v", r)
	}
	if x.Len() != 0 || x.Args() != nil {
		t.Errorf("%+v has operands", x)
	}
}

func TestIntCopies(t *testing.T) {
	n := big.NewInt(7)
	e := Int(n)
	n.SetInt64(8)
	if got := e.Int().Int64(); got != 7 {
		t.Errorf("mutating the source changed the expression to %d", got)
	}
	e.Int().SetInt64(9)
	if got := e.String(); got != "7" {
		t.Errorf("mutating Int() changed the expression to %s", got)
	}
}

func TestArgsCopies(t *testing.T) {
	tab := NewTable()
	x, y := tab.Symbol("x"), tab.Symbol("y")
	terms := []Expr{x, y}
	e := NewSum(terms...)
	terms[0] = y
	args := e.Args()
	args[1] = x
	if !e.Equal(NewSum(x, y)) {
		t.Errorf("operands were aliased: %v", e)
	}
}

func TestClone(t *testing.T) {
	tab := NewTable()
	x := tab.Symbol("x")
	e := NewSum(Int64(1), NewProduct(x, Int64(2)))
	c := e.Clone()
	if !c.Equal(e) {
		t.Fatalf("clone %+v differs from %+v", c, e)
	}
	c.args[1].args[1].i.SetInt64(3)
	c.args[0] = x
	if got := e.String(); got != "1 + x * 2" {
		t.Errorf("modifying the clone changed the original to %s", got)
	}
}

func TestEqual(t *testing.T) {
	tab := NewTable()
	x, y := tab.Symbol("x"), tab.Symbol("y")
	cases := []struct {
		name string
		a, b Expr
		eq   bool
	}{
		{"undefined", Undef(), Undef(), true},
		{"int", Int64(3), Int(big.NewInt(3)), true},
		{"int-ne", Int64(3), Int64(-3), false},
		{"int-float", Int64(3), Float(3), false},
		{"float", Float(0.5), Float(0.5), true},
		{"nan", Float(math.NaN()), Float(math.NaN()), false},
		{"sym", x, tab.Symbol("x"), true},
		{"sym-ne", x, y, false},
		{"neg", NewNeg(x), NewNeg(x), true},
		{"neg-int", NewNeg(Int64(1)), Int64(-1), false},
		{"sum", NewSum(x, y), NewSum(x, y), true},
		{"sum-order", NewSum(x, y), NewSum(y, x), false},
		{"sum-nested", NewSum(NewSum(x, y), x), NewSum(x, y, x), false},
		{"sum-product", NewSum(x, y), NewProduct(x, y), false},
		{"sum-len", NewSum(x), NewSum(x, x), false},
		{"ratio", NewRatio(x, y), NewRatio(x, y), true},
		{"ratio-swap", NewRatio(x, y), NewRatio(y, x), false},
		{"empty", NewSum(), NewSum(), true},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.eq {
			t.Errorf("%s: %+v == %+v is %t", c.name, c.a, c.b, got)
		}
		if got := c.b.Equal(c.a); got != c.eq {
			t.Errorf("%s: %+v == %+v is %t", c.name, c.b, c.a, got)
		}
	}
}
