// SPDX-License-Identifier: MIT

package extended

import (
	"fmt"

	"github.com/katalvlaran/extnum/numeric"
)

// Number is a double-bounded extended number: NegInfinity, Finite(T) or
// PosInfinity. The zero Number is Finite holding T's zero value.
//
// Number is an immutable value type; every operation returns a new value.
type Number[T numeric.Signed[T]] struct {
	kind  Kind
	value T
}

// New wraps a finite value.
func New[T numeric.Signed[T]](v T) Number[T] {
	return Number[T]{kind: Finite, value: v}
}

// PosInf returns +∞.
func PosInf[T numeric.Signed[T]]() Number[T] {
	return Number[T]{kind: PosInfinity}
}

// NegInf returns -∞.
func NegInf[T numeric.Signed[T]]() Number[T] {
	return Number[T]{kind: NegInfinity}
}

func infOfSign[T numeric.Signed[T]](positive bool) Number[T] {
	if positive {
		return PosInf[T]()
	}

	return NegInf[T]()
}

// Kind returns the state tag.
func (n Number[T]) Kind() Kind { return n.kind }

// IsFinite reports whether n wraps an ordinary value.
func (n Number[T]) IsFinite() bool { return n.kind == Finite }

// IsInf reports whether n is either infinity.
func (n Number[T]) IsInf() bool { return n.kind != Finite }

// IsPosInf reports whether n is +∞.
func (n Number[T]) IsPosInf() bool { return n.kind == PosInfinity }

// IsNegInf reports whether n is -∞.
func (n Number[T]) IsNegInf() bool { return n.kind == NegInfinity }

// Value returns the wrapped value; ok is false for the infinities.
func (n Number[T]) Value() (v T, ok bool) {
	if n.kind != Finite {
		return v, false
	}

	return n.value, true
}

// IsZero is true only for a finite value whose own IsZero is true.
func (n Number[T]) IsZero() bool {
	return n.kind == Finite && n.value.IsZero()
}

// Negate negates a finite value and swaps the infinities. It never fails.
func (n Number[T]) Negate() Number[T] {
	switch n.kind {
	case PosInfinity:
		return NegInf[T]()
	case NegInfinity:
		return PosInf[T]()
	default:
		return New(n.value.Negate())
	}
}

// String renders the finite value with fmt, or "+infinity" / "-infinity".
func (n Number[T]) String() string {
	switch n.kind {
	case PosInfinity:
		return posInfText
	case NegInfinity:
		return negInfText
	default:
		return fmt.Sprint(n.value)
	}
}

// Compare returns -1, 0 or +1 under the total order
// NegInfinity < Finite(_) < PosInfinity. Each infinity equals itself.
func (n Number[T]) Compare(o Number[T]) int {
	if n.kind == Finite && o.kind == Finite {
		return n.value.Compare(o.value)
	}

	return compareKinds(n.kind, o.kind)
}

// Equal reports whether n and o are the same infinity or equal finite values.
func (n Number[T]) Equal(o Number[T]) bool { return n.Compare(o) == 0 }

// Less reports n < o under the total order.
func (n Number[T]) Less(o Number[T]) bool { return n.Compare(o) < 0 }

// IndeterminateCompare is Compare with the extended-real reading of
// same-sign infinities: +∞ against +∞ and -∞ against -∞ have no defined
// order, and ok is false.
func (n Number[T]) IndeterminateCompare(o Number[T]) (c int, ok bool) {
	if n.kind != Finite && n.kind == o.kind {
		return 0, false
	}

	return n.Compare(o), true
}

// Min returns the smaller of n and o, preferring n on a tie.
func (n Number[T]) Min(o Number[T]) Number[T] {
	if o.Less(n) {
		return o
	}

	return n
}

// Max returns the larger of n and o, preferring n on a tie.
func (n Number[T]) Max(o Number[T]) Number[T] {
	if n.Less(o) {
		return o
	}

	return n
}
