// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/endian"
)

var (
	_ fmt.Stringer = endian.Uint8LE(0)
	_ fmt.Stringer = endian.Int16BE(0)
	_ fmt.Stringer = endian.Uint32LE(0)
	_ fmt.Stringer = endian.Int64BE(0)
)

// --- Round Trips ---

func TestRoundTrip_Uint8(t *testing.T) {
	for v := 0; v <= math.MaxUint8; v++ {
		u := uint8(v)
		assert.Equal(t, u, endian.ToUint8LE(u).Native())
		assert.Equal(t, u, endian.ToUint8BE(u).Native())
	}
}

func TestRoundTrip_Uint16(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1234, 0x8000, math.MaxUint16} {
		assert.Equal(t, v, endian.ToUint16LE(v).Native())
		assert.Equal(t, v, endian.ToUint16BE(v).Native())
	}
}

func TestRoundTrip_Uint32(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xdeadbeef, 0x80000000, math.MaxUint32} {
		assert.Equal(t, v, endian.ToUint32LE(v).Native())
		assert.Equal(t, v, endian.ToUint32BE(v).Native())
	}
}

func TestRoundTrip_Uint64(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x0102030405060708, 0x8000000000000000, math.MaxUint64} {
		assert.Equal(t, v, endian.ToUint64LE(v).Native())
		assert.Equal(t, v, endian.ToUint64BE(v).Native())
	}
}

func TestRoundTrip_Int8(t *testing.T) {
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		i := int8(v)
		assert.Equal(t, i, endian.ToInt8LE(i).Native())
		assert.Equal(t, i, endian.ToInt8BE(i).Native())
	}
}

func TestRoundTrip_Int16(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -2, -1, 0, 1, 0x1234, math.MaxInt16} {
		assert.Equal(t, v, endian.ToInt16LE(v).Native())
		assert.Equal(t, v, endian.ToInt16BE(v).Native())
	}
}

func TestRoundTrip_Int32(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -2, -1, 0, 1, 0x12345678, math.MaxInt32} {
		assert.Equal(t, v, endian.ToInt32LE(v).Native())
		assert.Equal(t, v, endian.ToInt32BE(v).Native())
	}
}

func TestRoundTrip_Int64(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -2, -1, 0, 1, 0x0102030405060708, math.MaxInt64} {
		assert.Equal(t, v, endian.ToInt64LE(v).Native())
		assert.Equal(t, v, endian.ToInt64BE(v).Native())
	}
}

func TestZeroValue(t *testing.T) {
	var (
		a endian.Uint16LE
		b endian.Uint32BE
		c endian.Int64LE
	)
	assert.Zero(t, a.Native())
	assert.Zero(t, b.Native())
	assert.Zero(t, c.Native())
	assert.Equal(t, endian.ToUint32BE(0), b)
}

// --- Comparisons ---

func TestCompare_SameOrder(t *testing.T) {
	a, b := endian.ToUint32LE(7), endian.ToUint32LE(9)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Equal(endian.ToUint32LE(7)))
	assert.True(t, a == endian.ToUint32LE(7))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))
}

func TestCompare_LogicalNotLexicographic(t *testing.T) {
	// 256 stores as 00 01 on the little end, 255 as ff 00. A byte-wise
	// comparison of the stored forms would invert the answer.
	assert.False(t, endian.ToUint16LE(256).Less(endian.ToUint16LE(255)))
	assert.True(t, endian.ToUint16LE(255).Less(endian.ToUint16LE(256)))
}

func TestCompare_SignedOrdering(t *testing.T) {
	neg, pos := endian.ToInt16BE(-1), endian.ToInt16BE(1)
	// -1 stores as ff ff, yet orders before 1.
	assert.True(t, neg.Less(pos))
	assert.Equal(t, -1, neg.Compare(pos))
	assert.Equal(t, 1, pos.Compare(neg))
	assert.True(t, endian.ToInt64LE(math.MinInt64).Less(endian.ToInt64LE(math.MaxInt64)))
}

func TestCompare_Native(t *testing.T) {
	x := endian.ToUint32BE(1000)
	assert.True(t, x.EqualNative(1000))
	assert.False(t, x.EqualNative(999))
	assert.True(t, x.LessNative(1001))
	assert.False(t, x.LessNative(1000))
	assert.Equal(t, 0, x.CompareNative(1000))
	assert.Equal(t, -1, x.CompareNative(2000))
	assert.Equal(t, 1, x.CompareNative(1))

	n := endian.ToInt32LE(-5)
	assert.True(t, n.LessNative(0))
	assert.Equal(t, -1, n.CompareNative(-4))
}

func TestMapKey(t *testing.T) {
	// Fixed storage is a bijection, so == and map keys follow logical value.
	m := map[endian.Uint32BE]string{}
	m[endian.ToUint32BE(1)] = "one"
	m[endian.ToUint32BE(2)] = "two"
	m[endian.ToUint32BE(1)] = "uno"
	assert.Len(t, m, 2)
	assert.Equal(t, "uno", m[endian.ToUint32BE(1)])
}

// --- Formatting ---

func TestString(t *testing.T) {
	assert.Equal(t, "4660", endian.ToUint16LE(0x1234).String())
	assert.Equal(t, "4660", endian.ToUint16BE(0x1234).String())
	assert.Equal(t, "-2", endian.ToInt32BE(-2).String())
	assert.Equal(t, "-128", endian.ToInt8LE(math.MinInt8).String())
	assert.Equal(t, "18446744073709551615", endian.ToUint64LE(math.MaxUint64).String())
	assert.Equal(t, "255", fmt.Sprint(endian.ToUint8BE(255)))
}

// --- Host Order ---

func TestHostOrder(t *testing.T) {
	x := uint16(0x0102)
	probe := *(*[2]byte)(unsafe.Pointer(&x))
	switch endian.HostOrder() {
	case binary.LittleEndian:
		require.Equal(t, [2]byte{0x02, 0x01}, probe)
	case binary.BigEndian:
		require.Equal(t, [2]byte{0x01, 0x02}, probe)
	default:
		t.Fatalf("unexpected host order %v", endian.HostOrder())
	}
}
