// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package endian provides endian-tagged integer types: fixed-width integers
// whose in-memory byte order is part of the type and independent of the host
// architecture.
//
// Semantics and design:
//   - Fixed storage: Uint32LE holds a uint32 whose bytes are always the
//     little-endian encoding of the value, Uint32BE the big-endian one, and
//     likewise for every width in {8,16,32,64} bits, signed and unsigned.
//     Each type has the same size and alignment as the native integer it
//     wraps, so structs of endian types overlay wire and file formats
//     directly.
//   - Drop-in operations: arithmetic, comparison, and bitwise methods convert
//     to host order, compute with native integer semantics, and re-wrap in
//     the receiver's order. Same-order equality works with plain == (the
//     storage mapping is bijective), so the types serve as map keys. The
//     remaining built-in operators (+, -, <, and so on) also compile, but
//     they act on the stored form and compute logical values only when the
//     declared order matches the host; use the methods for everything
//     beyond ==.
//   - Mixed orders do not combine: a little-endian and a big-endian value of
//     the same width are distinct types with no shared operand surface, so
//     combining them directly is a compile error. Convert one side through
//     Native() first.
//   - Raw access: Bytes, Put, Append, and the Load functions move the stored
//     representation verbatim, with no reordering.
//
// Overflow policy: arithmetic follows Go's fixed-width integer semantics.
// Results wrap on overflow (two's complement, signed and unsigned alike) and
// division by zero panics; the types add no checks beyond the native
// operation.
//
// The package performs no I/O, allocates only in Append (amortized slice
// growth), and is usable in constrained runtimes.
package endian

//go:generate go run gen.go

import (
	"encoding/binary"
	"math/bits"

	"code.hybscloud.com/endian/internal/bo"
)

// HostOrder returns the host's native byte order as an encoding/binary value,
// for composing with ByteOrder-parameterized APIs.
func HostOrder() binary.ByteOrder { return bo.Native() }

// Conversion between host order and a declared storage order, one function
// per multi-byte width and order. Each transform is a conditional whole-value
// byte swap and is its own inverse, so construction and extraction share it.
// bo.Big is constant on every port.

func le16(v uint16) uint16 {
	if bo.Big {
		return bits.ReverseBytes16(v)
	}
	return v
}

func le32(v uint32) uint32 {
	if bo.Big {
		return bits.ReverseBytes32(v)
	}
	return v
}

func le64(v uint64) uint64 {
	if bo.Big {
		return bits.ReverseBytes64(v)
	}
	return v
}

func be16(v uint16) uint16 {
	if !bo.Big {
		return bits.ReverseBytes16(v)
	}
	return v
}

func be32(v uint32) uint32 {
	if !bo.Big {
		return bits.ReverseBytes32(v)
	}
	return v
}

func be64(v uint64) uint64 {
	if !bo.Big {
		return bits.ReverseBytes64(v)
	}
	return v
}
