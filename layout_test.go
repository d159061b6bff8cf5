// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian

import (
	"math/bits"
	"testing"
	"unsafe"
)

func TestSizeAndAlignment(t *testing.T) {
	tests := []struct {
		name        string
		size, align uintptr
		wantSize    uintptr
		wantAlign   uintptr
	}{
		{"Uint8LE", unsafe.Sizeof(Uint8LE(0)), unsafe.Alignof(Uint8LE(0)), unsafe.Sizeof(uint8(0)), unsafe.Alignof(uint8(0))},
		{"Uint8BE", unsafe.Sizeof(Uint8BE(0)), unsafe.Alignof(Uint8BE(0)), unsafe.Sizeof(uint8(0)), unsafe.Alignof(uint8(0))},
		{"Int8LE", unsafe.Sizeof(Int8LE(0)), unsafe.Alignof(Int8LE(0)), unsafe.Sizeof(int8(0)), unsafe.Alignof(int8(0))},
		{"Int8BE", unsafe.Sizeof(Int8BE(0)), unsafe.Alignof(Int8BE(0)), unsafe.Sizeof(int8(0)), unsafe.Alignof(int8(0))},
		{"Uint16LE", unsafe.Sizeof(Uint16LE(0)), unsafe.Alignof(Uint16LE(0)), unsafe.Sizeof(uint16(0)), unsafe.Alignof(uint16(0))},
		{"Uint16BE", unsafe.Sizeof(Uint16BE(0)), unsafe.Alignof(Uint16BE(0)), unsafe.Sizeof(uint16(0)), unsafe.Alignof(uint16(0))},
		{"Int16LE", unsafe.Sizeof(Int16LE(0)), unsafe.Alignof(Int16LE(0)), unsafe.Sizeof(int16(0)), unsafe.Alignof(int16(0))},
		{"Int16BE", unsafe.Sizeof(Int16BE(0)), unsafe.Alignof(Int16BE(0)), unsafe.Sizeof(int16(0)), unsafe.Alignof(int16(0))},
		{"Uint32LE", unsafe.Sizeof(Uint32LE(0)), unsafe.Alignof(Uint32LE(0)), unsafe.Sizeof(uint32(0)), unsafe.Alignof(uint32(0))},
		{"Uint32BE", unsafe.Sizeof(Uint32BE(0)), unsafe.Alignof(Uint32BE(0)), unsafe.Sizeof(uint32(0)), unsafe.Alignof(uint32(0))},
		{"Int32LE", unsafe.Sizeof(Int32LE(0)), unsafe.Alignof(Int32LE(0)), unsafe.Sizeof(int32(0)), unsafe.Alignof(int32(0))},
		{"Int32BE", unsafe.Sizeof(Int32BE(0)), unsafe.Alignof(Int32BE(0)), unsafe.Sizeof(int32(0)), unsafe.Alignof(int32(0))},
		{"Uint64LE", unsafe.Sizeof(Uint64LE(0)), unsafe.Alignof(Uint64LE(0)), unsafe.Sizeof(uint64(0)), unsafe.Alignof(uint64(0))},
		{"Uint64BE", unsafe.Sizeof(Uint64BE(0)), unsafe.Alignof(Uint64BE(0)), unsafe.Sizeof(uint64(0)), unsafe.Alignof(uint64(0))},
		{"Int64LE", unsafe.Sizeof(Int64LE(0)), unsafe.Alignof(Int64LE(0)), unsafe.Sizeof(int64(0)), unsafe.Alignof(int64(0))},
		{"Int64BE", unsafe.Sizeof(Int64BE(0)), unsafe.Alignof(Int64BE(0)), unsafe.Sizeof(int64(0)), unsafe.Alignof(int64(0))},
	}
	for _, tt := range tests {
		if tt.size != tt.wantSize {
			t.Errorf("%s: size=%d want=%d", tt.name, tt.size, tt.wantSize)
		}
		if tt.align != tt.wantAlign {
			t.Errorf("%s: align=%d want=%d", tt.name, tt.align, tt.wantAlign)
		}
	}
}

// The storage invariant: the in-memory bytes of a value are its declared-order
// encoding, on every host.
func TestStorageInvariant_MemoryBytes(t *testing.T) {
	be := ToUint32BE(0xdeadbeef)
	if got := *(*[4]byte)(unsafe.Pointer(&be)); got != [4]byte{0xde, 0xad, 0xbe, 0xef} {
		t.Fatalf("Uint32BE memory = %x want deadbeef", got)
	}
	le := ToUint32LE(0xdeadbeef)
	if got := *(*[4]byte)(unsafe.Pointer(&le)); got != [4]byte{0xef, 0xbe, 0xad, 0xde} {
		t.Fatalf("Uint32LE memory = %x want efbeadde", got)
	}
	s := ToInt16BE(-2)
	if got := *(*[2]byte)(unsafe.Pointer(&s)); got != [2]byte{0xff, 0xfe} {
		t.Fatalf("Int16BE memory = %x want fffe", got)
	}
	w := ToUint64LE(0x0102030405060708)
	if got := *(*[8]byte)(unsafe.Pointer(&w)); got != [8]byte{8, 7, 6, 5, 4, 3, 2, 1} {
		t.Fatalf("Uint64LE memory = %x", got)
	}
}

// Values embedded in a struct keep their encoding, so a fixed-layout struct
// can be overlaid on wire bytes directly.
func TestStorageInvariant_StructOverlay(t *testing.T) {
	type header struct {
		Magic Uint32BE
		Count Uint16BE
		Flag  Uint8LE
		_     uint8
	}
	if unsafe.Sizeof(header{}) != 8 {
		t.Fatalf("header size=%d want=8", unsafe.Sizeof(header{}))
	}
	h := header{Magic: ToUint32BE(0xcafebabe), Count: ToUint16BE(3), Flag: ToUint8LE(1)}
	got := *(*[8]byte)(unsafe.Pointer(&h))
	want := [8]byte{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x03, 0x01, 0x00}
	if got != want {
		t.Fatalf("header memory = %x want %x", got, want)
	}
}

func TestSwapHelpers_Involution(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1234, 0xffff} {
		if got := le16(le16(v)); got != v {
			t.Fatalf("le16 applied twice = %#x want %#x", got, v)
		}
		if got := be16(be16(v)); got != v {
			t.Fatalf("be16 applied twice = %#x want %#x", got, v)
		}
	}
	for _, v := range []uint32{0, 0xdeadbeef, 0xffffffff} {
		if got := le32(le32(v)); got != v {
			t.Fatalf("le32 applied twice = %#x want %#x", got, v)
		}
		if got := be32(be32(v)); got != v {
			t.Fatalf("be32 applied twice = %#x want %#x", got, v)
		}
	}
	for _, v := range []uint64{0, 0xdeadbeefcafef00d, 0xffffffffffffffff} {
		if got := le64(le64(v)); got != v {
			t.Fatalf("le64 applied twice = %#x want %#x", got, v)
		}
		if got := be64(be64(v)); got != v {
			t.Fatalf("be64 applied twice = %#x want %#x", got, v)
		}
	}
}

// Whatever the host order, the two storage orders differ by exactly one whole
// byte reversal.
func TestSwapHelpers_OrdersAreReverses(t *testing.T) {
	if got, want := be16(0x1234), bits.ReverseBytes16(le16(0x1234)); got != want {
		t.Fatalf("be16=%#x want=%#x", got, want)
	}
	if got, want := be32(0xdeadbeef), bits.ReverseBytes32(le32(0xdeadbeef)); got != want {
		t.Fatalf("be32=%#x want=%#x", got, want)
	}
	if got, want := be64(0x0102030405060708), bits.ReverseBytes64(le64(0x0102030405060708)); got != want {
		t.Fatalf("be64=%#x want=%#x", got, want)
	}
}
