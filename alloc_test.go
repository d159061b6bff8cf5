// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"testing"

	"code.hybscloud.com/endian"
)

// Conversions and operations are plain integer arithmetic and must not
// allocate.

func TestAllocs_Convert(t *testing.T) {
	var sink uint64
	allocs := testing.AllocsPerRun(1000, func() {
		sink += endian.ToUint64BE(0xdeadbeefcafef00d).Native()
		sink += uint64(endian.ToUint32LE(0xcafebabe).Native())
	})
	if allocs != 0 {
		t.Fatalf("allocs/op = %v want 0", allocs)
	}
	_ = sink
}

func TestAllocs_PutLoad(t *testing.T) {
	buf := make([]byte, 8)
	var sink endian.Uint64LE
	allocs := testing.AllocsPerRun(1000, func() {
		endian.ToUint64LE(0x0102030405060708).Put(buf)
		sink = endian.LoadUint64LE(buf)
	})
	if allocs != 0 {
		t.Fatalf("allocs/op = %v want 0", allocs)
	}
	_ = sink
}

func TestAllocs_AppendWithinCapacity(t *testing.T) {
	buf := make([]byte, 0, 16)
	allocs := testing.AllocsPerRun(1000, func() {
		b := endian.ToUint32BE(0xcafebabe).Append(buf[:0])
		b = endian.ToUint32LE(0xcafebabe).Append(b)
		buf = b[:0]
	})
	if allocs != 0 {
		t.Fatalf("allocs/op = %v want 0", allocs)
	}
}

func TestAllocs_Arithmetic(t *testing.T) {
	a, b := endian.ToUint32BE(40), endian.ToUint32BE(2)
	var sink endian.Uint32BE
	allocs := testing.AllocsPerRun(1000, func() {
		sink = a.Add(b).Mul(b).Sub(b).Div(b)
		sink = sink.And(a).Or(b).Xor(a)
	})
	if allocs != 0 {
		t.Fatalf("allocs/op = %v want 0", allocs)
	}
	_ = sink
}
