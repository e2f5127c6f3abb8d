// SPDX-License-Identifier: MIT

package numeric

// Signed adapters. Each is a named integer whose methods delegate to the
// generic helpers in checked.go.
type (
	Int   int
	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64
)

// Compile-time contract checks.
var (
	_ BoundedSigned[Int]   = Int(0)
	_ BoundedSigned[Int8]  = Int8(0)
	_ BoundedSigned[Int16] = Int16(0)
	_ BoundedSigned[Int32] = Int32(0)
	_ BoundedSigned[Int64] = Int64(0)
)

func (Int) Zero() Int { return 0 }
func (a Int) IsZero() bool { return a == 0 }
func (a Int) Compare(b Int) int { return compare(a, b) }
func (a Int) Negate() Int { return -a }
func (a Int) CheckedAdd(b Int) (Int, bool) { return AddSigned(a, b) }
func (a Int) CheckedSub(b Int) (Int, bool) { return SubSigned(a, b) }
func (a Int) CheckedMul(b Int) (Int, bool) { return MulSigned(a, b) }
func (a Int) CheckedDiv(b Int) (Int, bool) { return DivSigned(a, b) }
func (Int) MaxValue() Int { return MaxSigned[Int]() }
func (Int) MinValue() Int { return MinSigned[Int]() }

func (Int8) Zero() Int8 { return 0 }
func (a Int8) IsZero() bool { return a == 0 }
func (a Int8) Compare(b Int8) int { return compare(a, b) }
func (a Int8) Negate() Int8 { return -a }
func (a Int8) CheckedAdd(b Int8) (Int8, bool) { return AddSigned(a, b) }
func (a Int8) CheckedSub(b Int8) (Int8, bool) { return SubSigned(a, b) }
func (a Int8) CheckedMul(b Int8) (Int8, bool) { return MulSigned(a, b) }
func (a Int8) CheckedDiv(b Int8) (Int8, bool) { return DivSigned(a, b) }
func (Int8) MaxValue() Int8 { return MaxSigned[Int8]() }
func (Int8) MinValue() Int8 { return MinSigned[Int8]() }

func (Int16) Zero() Int16 { return 0 }
func (a Int16) IsZero() bool { return a == 0 }
func (a Int16) Compare(b Int16) int { return compare(a, b) }
func (a Int16) Negate() Int16 { return -a }
func (a Int16) CheckedAdd(b Int16) (Int16, bool) { return AddSigned(a, b) }
func (a Int16) CheckedSub(b Int16) (Int16, bool) { return SubSigned(a, b) }
func (a Int16) CheckedMul(b Int16) (Int16, bool) { return MulSigned(a, b) }
func (a Int16) CheckedDiv(b Int16) (Int16, bool) { return DivSigned(a, b) }
func (Int16) MaxValue() Int16 { return MaxSigned[Int16]() }
func (Int16) MinValue() Int16 { return MinSigned[Int16]() }

func (Int32) Zero() Int32 { return 0 }
func (a Int32) IsZero() bool { return a == 0 }
func (a Int32) Compare(b Int32) int { return compare(a, b) }
func (a Int32) Negate() Int32 { return -a }
func (a Int32) CheckedAdd(b Int32) (Int32, bool) { return AddSigned(a, b) }
func (a Int32) CheckedSub(b Int32) (Int32, bool) { return SubSigned(a, b) }
func (a Int32) CheckedMul(b Int32) (Int32, bool) { return MulSigned(a, b) }
func (a Int32) CheckedDiv(b Int32) (Int32, bool) { return DivSigned(a, b) }
func (Int32) MaxValue() Int32 { return MaxSigned[Int32]() }
func (Int32) MinValue() Int32 { return MinSigned[Int32]() }

func (Int64) Zero() Int64 { return 0 }
func (a Int64) IsZero() bool { return a == 0 }
func (a Int64) Compare(b Int64) int { return compare(a, b) }
func (a Int64) Negate() Int64 { return -a }
func (a Int64) CheckedAdd(b Int64) (Int64, bool) { return AddSigned(a, b) }
func (a Int64) CheckedSub(b Int64) (Int64, bool) { return SubSigned(a, b) }
func (a Int64) CheckedMul(b Int64) (Int64, bool) { return MulSigned(a, b) }
func (a Int64) CheckedDiv(b Int64) (Int64, bool) { return DivSigned(a, b) }
func (Int64) MaxValue() Int64 { return MaxSigned[Int64]() }
func (Int64) MinValue() Int64 { return MinSigned[Int64]() }
