// SPDX-License-Identifier: MIT

package numeric

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseSigned parses a base-10 literal into T, rejecting values outside
// T's range. Errors are *strconv.NumError.
func ParseSigned[T constraints.Signed](s string) (T, error) {
	bits := int(unsafe.Sizeof(T(0)) * 8)
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, err
	}

	return T(v), nil
}

// ParseUnsigned parses a base-10 literal into T, rejecting values outside
// T's range. Errors are *strconv.NumError.
func ParseUnsigned[T constraints.Unsigned](s string) (T, error) {
	bits := int(unsafe.Sizeof(T(0)) * 8)
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, err
	}

	return T(v), nil
}
