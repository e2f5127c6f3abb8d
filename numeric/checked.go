// SPDX-License-Identifier: MIT

package numeric

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MaxSigned returns the largest value representable in T.
func MaxSigned[T constraints.Signed]() T {
	bits := unsafe.Sizeof(T(0)) * 8
	return T(^uint64(0) >> (65 - bits))
}

// MinSigned returns the most negative value representable in T.
func MinSigned[T constraints.Signed]() T {
	return -MaxSigned[T]() - 1
}

// MaxUnsigned returns the largest value representable in T.
func MaxUnsigned[T constraints.Unsigned]() T {
	return ^T(0)
}

// AddSigned returns a + b and whether the sum fits T.
// Go defines signed overflow as two's-complement wrap, so the
// wrapped sum moving against the sign of b is the overflow signal.
func AddSigned[T constraints.Signed](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// SubSigned returns a - b and whether the difference fits T.
func SubSigned[T constraints.Signed](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}

	return d, true
}

// MulSigned returns a * b and whether the product fits T.
func MulSigned[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// Min * -1 wraps to Min and survives the division check below.
	minimum := MinSigned[T]()
	if (a == -1 && b == minimum) || (b == -1 && a == minimum) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// DivSigned returns a / b (truncated toward zero) and whether the quotient
// exists and fits T. It is false for b == 0 and for Min / -1.
func DivSigned[T constraints.Signed](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if b == -1 && a == MinSigned[T]() {
		return 0, false
	}

	return a / b, true
}

// AddUnsigned returns a + b and whether the sum fits T.
func AddUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	s := a + b
	if s < a {
		return 0, false
	}

	return s, true
}

// SubUnsigned returns a - b and whether the difference is non-negative.
func SubUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if a < b {
		return 0, false
	}

	return a - b, true
}

// MulUnsigned returns a * b and whether the product fits T.
func MulUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if b != 0 && a > MaxUnsigned[T]()/b {
		return 0, false
	}

	return a * b, true
}

// DivUnsigned returns a / b and whether b is non-zero.
func DivUnsigned[T constraints.Unsigned](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}

	return a / b, true
}

// compare is the three-way comparison behind every adapter's Compare.
func compare[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
