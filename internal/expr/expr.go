// Package expr holds the arithmetic values the solver builds up and the
// rules for combining two of them.
package expr

import (
	"fmt"
	"strconv"
)

// Bounds every intermediate value must stay within.
const (
	MinValue = 1
	MaxValue = 100000
)

// op symbols
const (
	opAdd = "+"
	opSub = "-"
	opMul = "*"
	opDiv = "/"
)

// Expr is a reachable value together with the fully parenthesised text that
// derives it. The zero value is not meaningful; build one with Leaf or Combine.
type Expr struct {
	Val  int
	Repr string
}

// Leaf returns the expression for a single input number.
func Leaf(n int) Expr {
	return Expr{Val: n, Repr: strconv.Itoa(n)}
}

func (e Expr) String() string { return e.Repr }

// InRange reports whether v is a legal value for any expression.
func InRange(v int64) bool { return v >= MinValue && v <= MaxValue }

// Combine returns every legal expression built from l and r with one operator,
// in the order addition, subtraction, multiplication, division.
func Combine(l, r Expr) []Expr {
	a, b := l.Val, r.Val
	out := make([]Expr, 0, 4)

	// +
	addIfInRange(&out, int64(a)+int64(b), l, opAdd, r)

	// -
	if a > b {
		addIfInRange(&out, int64(a-b), l, opSub, r)
	} else if b > a {
		addIfInRange(&out, int64(b-a), r, opSub, l)
	}

	// * (never by 1)
	if a >= 2 && b >= 2 {
		addIfInRange(&out, int64(a)*int64(b), l, opMul, r)
	}

	// / (exact only, divisor > 1)
	if b > 1 && a%b == 0 {
		addIfInRange(&out, int64(a/b), l, opDiv, r)
	}
	if a > 1 && a != b && b%a == 0 {
		addIfInRange(&out, int64(b/a), r, opDiv, l)
	}
	return out
}

func addIfInRange(out *[]Expr, v int64, x Expr, op string, y Expr) {
	if !InRange(v) {
		return
	}
	*out = append(*out, Expr{Val: int(v), Repr: fmt.Sprintf("(%s %s %s)", x.Repr, op, y.Repr)})
}
