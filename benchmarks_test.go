// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"testing"

	"code.hybscloud.com/endian"
)

func BenchmarkEncode_Uint64BE(b *testing.B) {
	var sink endian.Uint64BE
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = endian.ToUint64BE(uint64(i))
	}
	_ = sink
}

func BenchmarkDecode_Uint64BE(b *testing.B) {
	x := endian.ToUint64BE(0xdeadbeefcafef00d)
	var sink uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += x.Native()
	}
	_ = sink
}

func BenchmarkDecode_Uint64LE(b *testing.B) {
	x := endian.ToUint64LE(0xdeadbeefcafef00d)
	var sink uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += x.Native()
	}
	_ = sink
}

func BenchmarkPut_Uint64BE(b *testing.B) {
	buf := make([]byte, 8)
	x := endian.ToUint64BE(0x0102030405060708)
	b.SetBytes(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Put(buf)
	}
}

func BenchmarkLoad_Uint32BE(b *testing.B) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	var sink endian.Uint32BE
	b.SetBytes(4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = endian.LoadUint32BE(buf)
	}
	_ = sink
}

func BenchmarkAdd_Uint32LE(b *testing.B) {
	x, y := endian.ToUint32LE(1), endian.ToUint32LE(2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Add(y)
	}
	_ = x
}

func BenchmarkCompare_Int64LE(b *testing.B) {
	x, y := endian.ToInt64LE(-1), endian.ToInt64LE(1)
	var sink int
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += x.Compare(y)
	}
	_ = sink
}
