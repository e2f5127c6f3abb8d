// SPDX-License-Identifier: MIT

// Package numeric defines the capability contracts a primitive numeric type
// must satisfy before it can be wrapped by package extended, together with
// adapter types for Go's fixed-width integers.
//
// What & Why
//
//	Go's built-in integers carry no methods, and Go generics bound type
//	parameters by method sets. The contracts here are therefore
//	self-referential interfaces (Arithmetic[T], Signed[T], Unsigned[T]) and
//	the adapter types (Int8 … Int64, Uint8 … Uint64, Int, Uint, Uintptr) are
//	named integers that implement them:
//
//	    var a numeric.Int32 = math.MaxInt32
//	    _, ok := a.CheckedAdd(1) // ok == false: the exact sum does not fit
//
// Contracts
//
//   - Zeroer[T]: Zero() T, IsZero() bool.
//   - Comparer[T]: Compare(T) int, the ordering used by the operators.
//   - Negater[T]: Negate() T (signed family only).
//   - Checked*[T]: CheckedAdd/Sub/Mul/Div(T) (T, bool). ok is false
//     exactly when the mathematically exact result is not representable in
//     T: overflow, underflow, and for division a zero divisor or Min / -1.
//   - Unsigned marker: NonNegative(), no behaviour; asserts T has no
//     negative values.
//   - Bounded[T]: MaxValue() T, MinValue() T, used by the lossy
//     narrowing conversions in package extended.
//
// None of the contracts fail: checked operations report through ok, and
// Zero/Negate are total. Negate wraps the most negative value onto itself,
// following Go's two's-complement rule.
//
// Generic helpers (AddSigned, MulUnsigned, MaxSigned, ParseSigned, …) are
// bounded by golang.org/x/exp/constraints and are what the adapter methods
// delegate to; they are exported so callers can build adapters for their
// own named integer types.
//
// Go has no 128-bit integer type; the widest adapters are 64-bit.
package numeric
