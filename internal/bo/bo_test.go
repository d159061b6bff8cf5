package bo

import (
	"encoding/binary"
	"testing"
	"unsafe"
)

func TestNativeReturnsValidByteOrder(t *testing.T) {
	b := Native()
	if b != binary.BigEndian && b != binary.LittleEndian {
		t.Fatalf("unexpected byte order: %T", b)
	}
}

func TestNativeMatchesBig(t *testing.T) {
	if Big && Native() != binary.BigEndian {
		t.Fatalf("Big=true but Native()=%v", Native())
	}
	if !Big && Native() != binary.LittleEndian {
		t.Fatalf("Big=false but Native()=%v", Native())
	}
}

// TestBigMatchesMemoryProbe verifies the build-tag selection against the
// machine's actual memory layout.
func TestBigMatchesMemoryProbe(t *testing.T) {
	var x uint16 = 0x0102
	b := *(*[2]byte)(unsafe.Pointer(&x))
	probeBig := b[0] == 0x01
	if Big != probeBig {
		t.Fatalf("Big=%v but memory probe says big=%v", Big, probeBig)
	}
}
