// SPDX-License-Identifier: MIT

package numeric

// Zeroer produces the additive identity of T and tests against it.
// Adapters compare with 0; custom types may use a tolerance instead.
type Zeroer[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T
	// IsZero reports whether the receiver is (treated as) zero.
	IsZero() bool
}

// Comparer orders two values of T: -1 if the receiver is smaller,
// 0 if equal, +1 if greater.
type Comparer[T any] interface {
	Compare(T) int
}

// Negater produces the additive inverse of T.
type Negater[T any] interface {
	Negate() T
}

// CheckedAdder adds without wrapping; ok is false if the sum does not fit T.
type CheckedAdder[T any] interface {
	CheckedAdd(T) (T, bool)
}

// CheckedSubtracter subtracts without wrapping; ok is false if the
// difference does not fit T.
type CheckedSubtracter[T any] interface {
	CheckedSub(T) (T, bool)
}

// CheckedMultiplier multiplies without wrapping; ok is false if the
// product does not fit T.
type CheckedMultiplier[T any] interface {
	CheckedMul(T) (T, bool)
}

// CheckedDivider divides without faulting; ok is false if the divisor is
// zero or the quotient does not fit T.
type CheckedDivider[T any] interface {
	CheckedDiv(T) (T, bool)
}

// Arithmetic is the capability set shared by both extended-number families.
type Arithmetic[T any] interface {
	Zeroer[T]
	Comparer[T]
	CheckedAdder[T]
	CheckedSubtracter[T]
	CheckedMultiplier[T]
	CheckedDivider[T]
}

// Signed is the capability set required by the double-bounded family.
type Signed[T any] interface {
	Arithmetic[T]
	Negater[T]
}

// Unsigned is the capability set required by the single-bounded family.
// NonNegative is a marker: implementing it asserts that every value of T
// is ≥ 0.
type Unsigned[T any] interface {
	Arithmetic[T]
	NonNegative()
}

// Bounded exposes the representable range of T.
type Bounded[T any] interface {
	MaxValue() T
	MinValue() T
}

// BoundedSigned is a Signed type with a known range.
type BoundedSigned[T any] interface {
	Signed[T]
	Bounded[T]
}

// BoundedUnsigned is an Unsigned type with a known range.
type BoundedUnsigned[T any] interface {
	Unsigned[T]
	Bounded[T]
}
