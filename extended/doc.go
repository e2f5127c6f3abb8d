// SPDX-License-Identifier: MIT

// Package extended provides integers extended with infinity: a value that
// is either an ordinary number or an explicit, ordered, arithmetic-aware
// infinity.
//
// What & Why
//
//   - What is an extended number?
//     Number[T] is NegInfinity | Finite(T) | PosInfinity (the extended
//     reals restricted to T). NonNegative[T] is Finite(T) | Infinity (the
//     extended naturals restricted to T).
//
//   - Why not a sentinel?
//     Algorithms that seed "unreachable" with math.MaxUint32 silently break
//     as soon as a real weight equals the sentinel, and a sentinel plus a
//     weight wraps around. An explicit infinity compares strictly above
//     every finite value and absorbs arithmetic instead of wrapping.
//
// Operator Semantics
//
//   - Overflow is absorbed. A finite result that does not fit T becomes an
//     infinity: Mul and Div use the sign of the exact result; Add and Sub
//     use the sign of the first operand. In the non-negative family, Sub
//     saturates at Finite(0) instead.
//
//   - Indeterminate forms panic. +∞ + (-∞), ∞ - ∞ (same sign),
//     0 × ±∞ and ±∞ / ±∞ panic with *ArithmeticError wrapping
//     ErrIndeterminate.
//
//   - Division by zero panics. x / Finite(0) and ±∞ / Finite(0) panic with
//     *ArithmeticError wrapping ErrDivisionByZero.
//
//   - Try recovers exactly these panics as errors:
//
//     q, err := extended.Try(func() extended.Int64 { return a.Div(b) })
//
// Ordering
//
//	Compare is total: NegInfinity < Finite(_) < PosInfinity, finite values
//	ordered by T.Compare, and each infinity equal to itself. This is the
//	order used by Less, Min, Max, Sort and the immutable.SortedMap
//	comparers. IndeterminateCompare is the partial reading in which two
//	same-sign infinities are unordered.
//
// Conversions & Literals
//
//	Int8 … Int64, Int and Uint8 … Uint64, Uint, Uintptr alias the
//	fixed-width instantiations. FromInt32 / ToInt32 (and peers) convert to
//	and from the primitive; the narrowing direction saturates, so +∞ maps
//	to the maximum and -∞ to the minimum. Parse and ParseNonNegative read
//	"inf", "+inf", "-inf" and the String forms "+infinity", "-infinity".
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free; values are plain structs
//     safe to copy and share between goroutines.
package extended
