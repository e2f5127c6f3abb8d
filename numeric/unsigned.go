// SPDX-License-Identifier: MIT

package numeric

// Unsigned adapters. NonNegative is the marker required by Unsigned[T].
type (
	Uint    uint
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Uintptr uintptr
)

// Compile-time contract checks.
var (
	_ BoundedUnsigned[Uint]    = Uint(0)
	_ BoundedUnsigned[Uint8]   = Uint8(0)
	_ BoundedUnsigned[Uint16]  = Uint16(0)
	_ BoundedUnsigned[Uint32]  = Uint32(0)
	_ BoundedUnsigned[Uint64]  = Uint64(0)
	_ BoundedUnsigned[Uintptr] = Uintptr(0)
)

func (Uint) Zero() Uint { return 0 }
func (a Uint) IsZero() bool { return a == 0 }
func (a Uint) Compare(b Uint) int { return compare(a, b) }
func (a Uint) CheckedAdd(b Uint) (Uint, bool) { return AddUnsigned(a, b) }
func (a Uint) CheckedSub(b Uint) (Uint, bool) { return SubUnsigned(a, b) }
func (a Uint) CheckedMul(b Uint) (Uint, bool) { return MulUnsigned(a, b) }
func (a Uint) CheckedDiv(b Uint) (Uint, bool) { return DivUnsigned(a, b) }
func (Uint) MaxValue() Uint { return MaxUnsigned[Uint]() }
func (Uint) MinValue() Uint { return 0 }
func (Uint) NonNegative() {}

func (Uint8) Zero() Uint8 { return 0 }
func (a Uint8) IsZero() bool { return a == 0 }
func (a Uint8) Compare(b Uint8) int { return compare(a, b) }
func (a Uint8) CheckedAdd(b Uint8) (Uint8, bool) { return AddUnsigned(a, b) }
func (a Uint8) CheckedSub(b Uint8) (Uint8, bool) { return SubUnsigned(a, b) }
func (a Uint8) CheckedMul(b Uint8) (Uint8, bool) { return MulUnsigned(a, b) }
func (a Uint8) CheckedDiv(b Uint8) (Uint8, bool) { return DivUnsigned(a, b) }
func (Uint8) MaxValue() Uint8 { return MaxUnsigned[Uint8]() }
func (Uint8) MinValue() Uint8 { return 0 }
func (Uint8) NonNegative() {}

func (Uint16) Zero() Uint16 { return 0 }
func (a Uint16) IsZero() bool { return a == 0 }
func (a Uint16) Compare(b Uint16) int { return compare(a, b) }
func (a Uint16) CheckedAdd(b Uint16) (Uint16, bool) { return AddUnsigned(a, b) }
func (a Uint16) CheckedSub(b Uint16) (Uint16, bool) { return SubUnsigned(a, b) }
func (a Uint16) CheckedMul(b Uint16) (Uint16, bool) { return MulUnsigned(a, b) }
func (a Uint16) CheckedDiv(b Uint16) (Uint16, bool) { return DivUnsigned(a, b) }
func (Uint16) MaxValue() Uint16 { return MaxUnsigned[Uint16]() }
func (Uint16) MinValue() Uint16 { return 0 }
func (Uint16) NonNegative() {}

func (Uint32) Zero() Uint32 { return 0 }
func (a Uint32) IsZero() bool { return a == 0 }
func (a Uint32) Compare(b Uint32) int { return compare(a, b) }
func (a Uint32) CheckedAdd(b Uint32) (Uint32, bool) { return AddUnsigned(a, b) }
func (a Uint32) CheckedSub(b Uint32) (Uint32, bool) { return SubUnsigned(a, b) }
func (a Uint32) CheckedMul(b Uint32) (Uint32, bool) { return MulUnsigned(a, b) }
func (a Uint32) CheckedDiv(b Uint32) (Uint32, bool) { return DivUnsigned(a, b) }
func (Uint32) MaxValue() Uint32 { return MaxUnsigned[Uint32]() }
func (Uint32) MinValue() Uint32 { return 0 }
func (Uint32) NonNegative() {}

func (Uint64) Zero() Uint64 { return 0 }
func (a Uint64) IsZero() bool { return a == 0 }
func (a Uint64) Compare(b Uint64) int { return compare(a, b) }
func (a Uint64) CheckedAdd(b Uint64) (Uint64, bool) { return AddUnsigned(a, b) }
func (a Uint64) CheckedSub(b Uint64) (Uint64, bool) { return SubUnsigned(a, b) }
func (a Uint64) CheckedMul(b Uint64) (Uint64, bool) { return MulUnsigned(a, b) }
func (a Uint64) CheckedDiv(b Uint64) (Uint64, bool) { return DivUnsigned(a, b) }
func (Uint64) MaxValue() Uint64 { return MaxUnsigned[Uint64]() }
func (Uint64) MinValue() Uint64 { return 0 }
func (Uint64) NonNegative() {}

func (Uintptr) Zero() Uintptr { return 0 }
func (a Uintptr) IsZero() bool { return a == 0 }
func (a Uintptr) Compare(b Uintptr) int { return compare(a, b) }
func (a Uintptr) CheckedAdd(b Uintptr) (Uintptr, bool) { return AddUnsigned(a, b) }
func (a Uintptr) CheckedSub(b Uintptr) (Uintptr, bool) { return SubUnsigned(a, b) }
func (a Uintptr) CheckedMul(b Uintptr) (Uintptr, bool) { return MulUnsigned(a, b) }
func (a Uintptr) CheckedDiv(b Uintptr) (Uintptr, bool) { return DivUnsigned(a, b) }
func (Uintptr) MaxValue() Uintptr { return MaxUnsigned[Uintptr]() }
func (Uintptr) MinValue() Uintptr { return 0 }
func (Uintptr) NonNegative() {}
