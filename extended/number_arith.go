// SPDX-License-Identifier: MIT

package extended

import "github.com/katalvlaran/extnum/numeric"

// sign is the ordering of v against T's zero.
func sign[T numeric.Arithmetic[T]](v T) int {
	return v.Compare(v.Zero())
}

// sameSign reports whether a and b are both strictly positive or both
// strictly negative.
func sameSign[T numeric.Arithmetic[T]](a, b T) bool {
	sa, sb := sign(a), sign(b)
	return (sa > 0 && sb > 0) || (sa < 0 && sb < 0)
}

// Add returns n + o.
//
// A finite sum that does not fit T is promoted to the infinity of the
// first operand's sign (a > 0 gives +∞, anything else -∞). An infinity
// absorbs any finite operand. +∞ + (-∞) in either order panics with
// ErrIndeterminate.
func (n Number[T]) Add(o Number[T]) Number[T] {
	switch {
	case n.kind == Finite && o.kind == Finite:
		if s, ok := n.value.CheckedAdd(o.value); ok {
			return New(s)
		}
		return infOfSign[T](sign(n.value) > 0)
	case n.kind != Finite && o.kind != Finite && n.kind != o.kind:
		panic(indeterminate("add", "+inf + (-inf)"))
	case n.kind == PosInfinity || o.kind == PosInfinity:
		return PosInf[T]()
	default:
		return NegInf[T]()
	}
}

// Sub returns n - o.
//
// Overflow is promoted by the first operand's sign, as in Add.
// +∞ - x and x - (-∞) give +∞; -∞ - x and x - (+∞) give -∞.
// +∞ - (+∞) and -∞ - (-∞) panic with ErrIndeterminate.
func (n Number[T]) Sub(o Number[T]) Number[T] {
	switch {
	case n.kind == Finite && o.kind == Finite:
		if d, ok := n.value.CheckedSub(o.value); ok {
			return New(d)
		}
		return infOfSign[T](sign(n.value) > 0)
	case n.kind == o.kind:
		panic(indeterminate("sub", "inf - inf"))
	case n.kind == PosInfinity || o.kind == NegInfinity:
		return PosInf[T]()
	default:
		return NegInf[T]()
	}
}

// Mul returns n * o.
//
// A finite product that does not fit T is promoted to the infinity whose
// sign is the product of the operand signs. Finite(0) times either
// infinity panics with ErrIndeterminate; any other finite times an
// infinity, and infinity times infinity, follow the sign-of-product rule.
func (n Number[T]) Mul(o Number[T]) Number[T] {
	switch {
	case n.kind == Finite && o.kind == Finite:
		if p, ok := n.value.CheckedMul(o.value); ok {
			return New(p)
		}
		return infOfSign[T](sameSign(n.value, o.value))
	case n.kind != Finite && o.kind != Finite:
		return infOfSign[T](n.kind == o.kind)
	}

	// 1. exactly one side is infinite
	inf, f := n.kind, o.value
	if inf == Finite {
		inf, f = o.kind, n.value
	}
	// 2. zero times infinity has no value
	if f.IsZero() {
		if inf == PosInfinity {
			panic(indeterminate("mul", "0 * inf"))
		}
		panic(indeterminate("mul", "0 * -inf"))
	}
	// 3. a positive factor keeps the infinity, anything else flips it
	if sign(f) > 0 {
		return Number[T]{kind: inf}
	}

	return Number[T]{kind: -inf}
}

// Div returns n / o.
//
// A zero divisor panics with ErrDivisionByZero whether the dividend is
// finite or infinite. A finite quotient that does not fit T (Min / -1) is
// promoted by the sign of the quotient. Finite over either infinity is
// Finite(0). Infinity over a positive finite keeps its sign, over a
// negative one it flips. Infinity over infinity panics with
// ErrIndeterminate.
func (n Number[T]) Div(o Number[T]) Number[T] {
	switch {
	case n.kind == Finite && o.kind == Finite:
		if o.value.IsZero() {
			panic(divisionByZero("x / 0"))
		}
		if q, ok := n.value.CheckedDiv(o.value); ok {
			return New(q)
		}
		return infOfSign[T](sameSign(n.value, o.value))
	case n.kind == Finite:
		return New(n.value.Zero())
	case o.kind == Finite:
		if o.value.IsZero() {
			panic(divisionByZero("inf / 0"))
		}
		if sign(o.value) > 0 {
			return n
		}
		return n.Negate()
	case n.kind == o.kind:
		panic(indeterminate("div", "inf / inf"))
	default:
		panic(indeterminate("div", "inf / -inf"))
	}
}
