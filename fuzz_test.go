// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian_test

import (
	"math"
	"testing"

	"code.hybscloud.com/endian"
)

// FuzzRoundTrip drives every type from one 64-bit sample: each narrower and
// signed value is derived by truncation and reinterpretation.
func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(0x8000000000000000))
	f.Add(uint64(0xdeadbeefcafef00d))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, u uint64) {
		if got := endian.ToUint64LE(u).Native(); got != u {
			t.Fatalf("Uint64LE: %#x want %#x", got, u)
		}
		if got := endian.ToUint64BE(u).Native(); got != u {
			t.Fatalf("Uint64BE: %#x want %#x", got, u)
		}
		if v := uint32(u); endian.ToUint32LE(v).Native() != v || endian.ToUint32BE(v).Native() != v {
			t.Fatalf("uint32 round trip failed for %#x", v)
		}
		if v := uint16(u); endian.ToUint16LE(v).Native() != v || endian.ToUint16BE(v).Native() != v {
			t.Fatalf("uint16 round trip failed for %#x", v)
		}
		if v := uint8(u); endian.ToUint8LE(v).Native() != v || endian.ToUint8BE(v).Native() != v {
			t.Fatalf("uint8 round trip failed for %#x", v)
		}
		if v := int64(u); endian.ToInt64LE(v).Native() != v || endian.ToInt64BE(v).Native() != v {
			t.Fatalf("int64 round trip failed for %d", v)
		}
		if v := int32(u); endian.ToInt32LE(v).Native() != v || endian.ToInt32BE(v).Native() != v {
			t.Fatalf("int32 round trip failed for %d", v)
		}
		if v := int16(u); endian.ToInt16LE(v).Native() != v || endian.ToInt16BE(v).Native() != v {
			t.Fatalf("int16 round trip failed for %d", v)
		}
		if v := int8(u); endian.ToInt8LE(v).Native() != v || endian.ToInt8BE(v).Native() != v {
			t.Fatalf("int8 round trip failed for %d", v)
		}
	})
}

// FuzzWire checks that the byte-level surface stays consistent: stored bytes
// reload to the same value, and the two orders are byte reversals of each
// other.
func FuzzWire(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(0x0102030405060708))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, u uint64) {
		le, be := endian.ToUint64LE(u), endian.ToUint64BE(u)

		lb, bb := le.Bytes(), be.Bytes()
		for i := range lb {
			if lb[i] != bb[len(bb)-1-i] {
				t.Fatalf("byte %d: le=%#x be=%#x not mirrored", i, lb, bb)
			}
		}

		if got := endian.LoadUint64LE(lb[:]); got != le {
			t.Fatalf("LoadUint64LE(Bytes()) = %v want %v", got, le)
		}
		if got := endian.LoadUint64BE(bb[:]); got != be {
			t.Fatalf("LoadUint64BE(Bytes()) = %v want %v", got, be)
		}

		var buf [8]byte
		le.Put(buf[:])
		if buf != lb {
			t.Fatalf("Put = %x want %x", buf, lb)
		}
		if got := be.Append(nil); len(got) != 8 || [8]byte(got) != bb {
			t.Fatalf("Append = %x want %x", got, bb)
		}
	})
}
