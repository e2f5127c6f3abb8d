// SPDX-License-Identifier: MIT

package extended

// Add returns n + o. A finite sum that does not fit T becomes Infinity,
// and Infinity absorbs anything.
func (n NonNegative[T]) Add(o NonNegative[T]) NonNegative[T] {
	if n.kind == Finite && o.kind == Finite {
		if s, ok := n.value.CheckedAdd(o.value); ok {
			return NewNonNegative(s)
		}
	}

	return Inf[T]()
}

// Sub returns n - o, saturating at Finite(0). Infinity minus anything is
// Infinity; a finite value minus Infinity is Finite(0). Sub never panics.
func (n NonNegative[T]) Sub(o NonNegative[T]) NonNegative[T] {
	switch {
	case n.kind == Infinity:
		return n
	case o.kind == Infinity:
		return NewNonNegative(n.value.Zero())
	}
	if d, ok := n.value.CheckedSub(o.value); ok {
		return NewNonNegative(d)
	}

	return NewNonNegative(n.value.Zero())
}

// Mul returns n * o. Overflow becomes Infinity. Finite(0) times Infinity,
// in either order, panics with ErrIndeterminate.
func (n NonNegative[T]) Mul(o NonNegative[T]) NonNegative[T] {
	switch {
	case n.kind == Finite && o.kind == Finite:
		if p, ok := n.value.CheckedMul(o.value); ok {
			return NewNonNegative(p)
		}
	case n.kind == Finite && n.value.IsZero(), o.kind == Finite && o.value.IsZero():
		panic(indeterminate("mul", "0 * inf"))
	}

	return Inf[T]()
}

// Div returns n / o.
//
// Any dividend over Finite(0) panics with ErrDivisionByZero, Infinity
// included. Infinity over Infinity panics with ErrIndeterminate. A finite
// value over Infinity is Finite(0); Infinity over a non-zero finite stays
// Infinity.
func (n NonNegative[T]) Div(o NonNegative[T]) NonNegative[T] {
	switch {
	case o.kind == Finite && o.value.IsZero():
		if n.kind == Infinity {
			panic(divisionByZero("inf / 0"))
		}
		panic(divisionByZero("x / 0"))
	case n.kind == Infinity && o.kind == Infinity:
		panic(indeterminate("div", "inf / inf"))
	case n.kind == Infinity:
		return n
	case o.kind == Infinity:
		return NewNonNegative(n.value.Zero())
	}
	if q, ok := n.value.CheckedDiv(o.value); ok {
		return NewNonNegative(q)
	}

	return Inf[T]()
}
