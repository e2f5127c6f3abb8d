// SPDX-License-Identifier: MIT

package extended

import (
	"fmt"

	"github.com/katalvlaran/extnum/numeric"
)

// NonNegative is a single-bounded extended number: Finite(T) or Infinity.
// There is no negative infinity and no negation. The zero NonNegative is
// Finite(0).
type NonNegative[T numeric.Unsigned[T]] struct {
	kind  Kind
	value T
}

// NewNonNegative wraps a finite value.
func NewNonNegative[T numeric.Unsigned[T]](v T) NonNegative[T] {
	return NonNegative[T]{kind: Finite, value: v}
}

// Inf returns Infinity.
func Inf[T numeric.Unsigned[T]]() NonNegative[T] {
	return NonNegative[T]{kind: Infinity}
}

// Kind returns Finite or Infinity.
func (n NonNegative[T]) Kind() Kind { return n.kind }

// IsFinite reports whether n wraps an ordinary value.
func (n NonNegative[T]) IsFinite() bool { return n.kind == Finite }

// IsInf reports whether n is Infinity.
func (n NonNegative[T]) IsInf() bool { return n.kind == Infinity }

// IsPosInf is IsInf; it exists so both families share an accessor set.
func (n NonNegative[T]) IsPosInf() bool { return n.kind == Infinity }

// IsNegInf is always false.
func (n NonNegative[T]) IsNegInf() bool { return false }

// Value returns the wrapped value; ok is false for Infinity.
func (n NonNegative[T]) Value() (v T, ok bool) {
	if n.kind != Finite {
		return v, false
	}

	return n.value, true
}

// IsZero is true only for a finite value whose own IsZero is true.
func (n NonNegative[T]) IsZero() bool {
	return n.kind == Finite && n.value.IsZero()
}

// String renders the finite value with fmt, or "+infinity".
func (n NonNegative[T]) String() string {
	if n.kind == Infinity {
		return posInfText
	}

	return fmt.Sprint(n.value)
}

// Compare orders Finite(_) < Infinity; Infinity equals itself.
func (n NonNegative[T]) Compare(o NonNegative[T]) int {
	if n.kind == Finite && o.kind == Finite {
		return n.value.Compare(o.value)
	}

	return compareKinds(n.kind, o.kind)
}

// Equal reports whether both are Infinity or equal finite values.
func (n NonNegative[T]) Equal(o NonNegative[T]) bool { return n.Compare(o) == 0 }

// Less reports n < o.
func (n NonNegative[T]) Less(o NonNegative[T]) bool { return n.Compare(o) < 0 }

// IndeterminateCompare is Compare except that Infinity against Infinity
// has no defined order and ok is false.
func (n NonNegative[T]) IndeterminateCompare(o NonNegative[T]) (c int, ok bool) {
	if n.kind == Infinity && o.kind == Infinity {
		return 0, false
	}

	return n.Compare(o), true
}

// Min returns the smaller of n and o, preferring n on a tie.
func (n NonNegative[T]) Min(o NonNegative[T]) NonNegative[T] {
	if o.Less(n) {
		return o
	}

	return n
}

// Max returns the larger of n and o, preferring n on a tie.
func (n NonNegative[T]) Max(o NonNegative[T]) NonNegative[T] {
	if n.Less(o) {
		return o
	}

	return n
}
