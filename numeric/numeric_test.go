// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/extnum/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBounds checks the width-derived limits against the math constants.
func TestBounds(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), numeric.MaxSigned[int8]())
	assert.Equal(t, int8(math.MinInt8), numeric.MinSigned[int8]())
	assert.Equal(t, int16(math.MaxInt16), numeric.MaxSigned[int16]())
	assert.Equal(t, int32(math.MinInt32), numeric.MinSigned[int32]())
	assert.Equal(t, int64(math.MaxInt64), numeric.MaxSigned[int64]())
	assert.Equal(t, int64(math.MinInt64), numeric.MinSigned[int64]())
	assert.Equal(t, uint8(math.MaxUint8), numeric.MaxUnsigned[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), numeric.MaxUnsigned[uint64]())

	assert.Equal(t, numeric.Int32(math.MaxInt32), numeric.Int32(0).MaxValue())
	assert.Equal(t, numeric.Uint16(0), numeric.Uint16(7).MinValue())
}

// TestCheckedSigned covers the boundary cases of the signed helpers.
func TestCheckedSigned(t *testing.T) {
	const maxV, minV = math.MaxInt8, math.MinInt8
	cases := []struct {
		name string
		fn   func(a, b int8) (int8, bool)
		a, b int8
		want int8
		ok   bool
	}{
		{"add/fits", numeric.AddSigned[int8], 100, 27, 127, true},
		{"add/overflow", numeric.AddSigned[int8], 100, 28, 0, false},
		{"add/underflow", numeric.AddSigned[int8], -100, -29, 0, false},
		{"add/mixed", numeric.AddSigned[int8], minV, maxV, -1, true},
		{"sub/fits", numeric.SubSigned[int8], -100, 28, -128, true},
		{"sub/underflow", numeric.SubSigned[int8], -100, 29, 0, false},
		{"sub/overflow", numeric.SubSigned[int8], 0, minV, 0, false},
		{"mul/fits", numeric.MulSigned[int8], -16, 8, -128, true},
		{"mul/overflow", numeric.MulSigned[int8], 16, 8, 0, false},
		{"mul/min*-1", numeric.MulSigned[int8], minV, -1, 0, false},
		{"mul/-1*min", numeric.MulSigned[int8], -1, minV, 0, false},
		{"mul/zero", numeric.MulSigned[int8], 0, minV, 0, true},
		{"div/truncates", numeric.DivSigned[int8], -7, 2, -3, true},
		{"div/zero", numeric.DivSigned[int8], 5, 0, 0, false},
		{"div/min/-1", numeric.DivSigned[int8], minV, -1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.fn(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestCheckedUnsigned covers the boundary cases of the unsigned helpers.
func TestCheckedUnsigned(t *testing.T) {
	cases := []struct {
		name string
		fn   func(a, b uint8) (uint8, bool)
		a, b uint8
		want uint8
		ok   bool
	}{
		{"add/fits", numeric.AddUnsigned[uint8], 200, 55, 255, true},
		{"add/overflow", numeric.AddUnsigned[uint8], 200, 56, 0, false},
		{"sub/fits", numeric.SubUnsigned[uint8], 10, 10, 0, true},
		{"sub/underflow", numeric.SubUnsigned[uint8], 5, 10, 0, false},
		{"mul/fits", numeric.MulUnsigned[uint8], 15, 17, 255, true},
		{"mul/overflow", numeric.MulUnsigned[uint8], 16, 16, 0, false},
		{"mul/zero", numeric.MulUnsigned[uint8], 255, 0, 0, true},
		{"div/fits", numeric.DivUnsigned[uint8], 255, 2, 127, true},
		{"div/zero", numeric.DivUnsigned[uint8], 1, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.fn(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestAdapters exercises the method set through the contract interfaces.
func TestAdapters(t *testing.T) {
	var s numeric.Signed[numeric.Int64] = numeric.Int64(math.MaxInt64)
	_, ok := s.CheckedAdd(1)
	assert.False(t, ok)
	assert.Equal(t, numeric.Int64(math.MinInt64+1), s.Negate())
	assert.Equal(t, 1, s.Compare(0))
	assert.True(t, s.Zero().IsZero())

	// Negate is total: the most negative value wraps onto itself.
	m := numeric.Int8(math.MinInt8)
	assert.Equal(t, m, m.Negate())

	var u numeric.Unsigned[numeric.Uint32] = numeric.Uint32(3)
	_, ok = u.CheckedSub(4)
	assert.False(t, ok)
	q, ok := u.CheckedDiv(2)
	require.True(t, ok)
	assert.Equal(t, numeric.Uint32(1), q)
	assert.Equal(t, -1, u.Compare(9))
	assert.False(t, u.IsZero())
}

// TestParse checks width-aware literal parsing.
func TestParse(t *testing.T) {
	v, err := numeric.ParseSigned[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = numeric.ParseSigned[int8]("128")
	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	assert.ErrorIs(t, err, strconv.ErrRange)

	w, err := numeric.ParseUnsigned[numeric.Uint16]("65535")
	require.NoError(t, err)
	assert.Equal(t, numeric.Uint16(65535), w)

	_, err = numeric.ParseUnsigned[uint32]("-1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}
