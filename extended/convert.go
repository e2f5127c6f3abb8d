// SPDX-License-Identifier: MIT

package extended

import "github.com/katalvlaran/extnum/numeric"

// Aliases for the fixed-width instantiations.
type (
	Int   = Number[numeric.Int]
	Int8  = Number[numeric.Int8]
	Int16 = Number[numeric.Int16]
	Int32 = Number[numeric.Int32]
	Int64 = Number[numeric.Int64]

	Uint    = NonNegative[numeric.Uint]
	Uint8   = NonNegative[numeric.Uint8]
	Uint16  = NonNegative[numeric.Uint16]
	Uint32  = NonNegative[numeric.Uint32]
	Uint64  = NonNegative[numeric.Uint64]
	Uintptr = NonNegative[numeric.Uintptr]
)

// Saturate narrows n to T: PosInfinity maps to T's maximum and NegInfinity
// to its minimum. The conversion is lossy by definition and never fails.
func Saturate[T numeric.BoundedSigned[T]](n Number[T]) T {
	var zero T
	switch n.kind {
	case PosInfinity:
		return zero.MaxValue()
	case NegInfinity:
		return zero.MinValue()
	default:
		return n.value
	}
}

// SaturateNonNegative narrows n to T, mapping Infinity to T's maximum.
func SaturateNonNegative[T numeric.BoundedUnsigned[T]](n NonNegative[T]) T {
	if n.kind == Infinity {
		var zero T
		return zero.MaxValue()
	}

	return n.value
}

// FromInt wraps v as a finite Int.
func FromInt(v int) Int { return New(numeric.Int(v)) }

// ToInt narrows n to int, saturating the infinities.
func ToInt(n Int) int { return int(Saturate(n)) }

// FromInt8 wraps v as a finite Int8.
func FromInt8(v int8) Int8 { return New(numeric.Int8(v)) }

// ToInt8 narrows n to int8, saturating the infinities.
func ToInt8(n Int8) int8 { return int8(Saturate(n)) }

// FromInt16 wraps v as a finite Int16.
func FromInt16(v int16) Int16 { return New(numeric.Int16(v)) }

// ToInt16 narrows n to int16, saturating the infinities.
func ToInt16(n Int16) int16 { return int16(Saturate(n)) }

// FromInt32 wraps v as a finite Int32.
func FromInt32(v int32) Int32 { return New(numeric.Int32(v)) }

// ToInt32 narrows n to int32, saturating the infinities.
func ToInt32(n Int32) int32 { return int32(Saturate(n)) }

// FromInt64 wraps v as a finite Int64.
func FromInt64(v int64) Int64 { return New(numeric.Int64(v)) }

// ToInt64 narrows n to int64, saturating the infinities.
func ToInt64(n Int64) int64 { return int64(Saturate(n)) }

// FromUint wraps v as a finite Uint.
func FromUint(v uint) Uint { return NewNonNegative(numeric.Uint(v)) }

// ToUint narrows n to uint, mapping Infinity to its maximum.
func ToUint(n Uint) uint { return uint(SaturateNonNegative(n)) }

// FromUint8 wraps v as a finite Uint8.
func FromUint8(v uint8) Uint8 { return NewNonNegative(numeric.Uint8(v)) }

// ToUint8 narrows n to uint8, mapping Infinity to its maximum.
func ToUint8(n Uint8) uint8 { return uint8(SaturateNonNegative(n)) }

// FromUint16 wraps v as a finite Uint16.
func FromUint16(v uint16) Uint16 { return NewNonNegative(numeric.Uint16(v)) }

// ToUint16 narrows n to uint16, mapping Infinity to its maximum.
func ToUint16(n Uint16) uint16 { return uint16(SaturateNonNegative(n)) }

// FromUint32 wraps v as a finite Uint32.
func FromUint32(v uint32) Uint32 { return NewNonNegative(numeric.Uint32(v)) }

// ToUint32 narrows n to uint32, mapping Infinity to its maximum.
func ToUint32(n Uint32) uint32 { return uint32(SaturateNonNegative(n)) }

// FromUint64 wraps v as a finite Uint64.
func FromUint64(v uint64) Uint64 { return NewNonNegative(numeric.Uint64(v)) }

// ToUint64 narrows n to uint64, mapping Infinity to its maximum.
func ToUint64(n Uint64) uint64 { return uint64(SaturateNonNegative(n)) }

// FromUintptr wraps v as a finite Uintptr.
func FromUintptr(v uintptr) Uintptr { return NewNonNegative(numeric.Uintptr(v)) }

// ToUintptr narrows n to uintptr, mapping Infinity to its maximum.
func ToUintptr(n Uintptr) uintptr { return uintptr(SaturateNonNegative(n)) }
