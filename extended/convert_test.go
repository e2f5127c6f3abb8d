// SPDX-License-Identifier: MIT

package extended_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/numeric"
	"github.com/stretchr/testify/assert"
)

// TestConvert_Signed checks the saturating narrowing of every signed width.
func TestConvert_Signed(t *testing.T) {
	assert.Equal(t, int8(-3), extended.ToInt8(extended.FromInt8(-3)))
	assert.Equal(t, int8(math.MaxInt8), extended.ToInt8(extended.PosInf[numeric.Int8]()))
	assert.Equal(t, int8(math.MinInt8), extended.ToInt8(extended.NegInf[numeric.Int8]()))

	assert.Equal(t, int16(math.MaxInt16), extended.ToInt16(extended.PosInf[numeric.Int16]()))
	assert.Equal(t, int16(math.MinInt16), extended.ToInt16(extended.NegInf[numeric.Int16]()))

	assert.Equal(t, int32(math.MaxInt32), extended.ToInt32(extended.PosInf[numeric.Int32]()))
	assert.Equal(t, int32(7), extended.ToInt32(extended.FromInt32(7)))

	assert.Equal(t, int64(math.MinInt64), extended.ToInt64(extended.NegInf[numeric.Int64]()))
	assert.Equal(t, int64(math.MaxInt64), extended.ToInt64(extended.FromInt64(math.MaxInt64)))

	assert.Equal(t, math.MaxInt, extended.ToInt(extended.PosInf[numeric.Int]()))
	assert.Equal(t, math.MinInt, extended.ToInt(extended.NegInf[numeric.Int]()))
	assert.Equal(t, 11, extended.ToInt(extended.FromInt(11)))
}

// TestConvert_Unsigned checks that Infinity narrows to the maximum.
func TestConvert_Unsigned(t *testing.T) {
	assert.Equal(t, uint8(math.MaxUint8), extended.ToUint8(extended.Inf[numeric.Uint8]()))
	assert.Equal(t, uint16(math.MaxUint16), extended.ToUint16(extended.Inf[numeric.Uint16]()))
	assert.Equal(t, uint32(math.MaxUint32), extended.ToUint32(extended.Inf[numeric.Uint32]()))
	assert.Equal(t, uint64(math.MaxUint64), extended.ToUint64(extended.Inf[numeric.Uint64]()))
	assert.Equal(t, uint(math.MaxUint), extended.ToUint(extended.Inf[numeric.Uint]()))
	assert.Equal(t, ^uintptr(0), extended.ToUintptr(extended.Inf[numeric.Uintptr]()))
	assert.Equal(t, uint16(12), extended.ToUint16(extended.FromUint16(12)))
	assert.Equal(t, uintptr(4096), extended.ToUintptr(extended.FromUintptr(4096)))
}

// TestConvert_OverflowRoundTrip shows the lossy round trip through an
// overflowing sum.
func TestConvert_OverflowRoundTrip(t *testing.T) {
	sum := extended.FromInt16(30000).Add(extended.FromInt16(30000))
	assert.True(t, sum.IsPosInf())
	assert.Equal(t, int16(math.MaxInt16), extended.ToInt16(sum))

	prod := extended.FromUint64(math.MaxUint64).Mul(extended.FromUint64(2))
	assert.Equal(t, uint64(math.MaxUint64), extended.ToUint64(prod))
}
