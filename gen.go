//go:build ignore

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command gen emits types_gen.go and layout_gen.go: one concrete type per
// (width, signedness, byte order) combination with its conversion, raw-byte,
// comparison, arithmetic, and bitwise surface, plus the compile-time layout
// assertions. Run via go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const header = `// Code generated by gen.go; DO NOT EDIT.

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package endian
`

// variant describes one generated type.
type variant struct {
	Name   string // Uint32LE
	Native string // uint32
	Uns    string // unsigned type of the same width
	Swap   string // le32 / be32; empty for single-byte widths
	Bits   int
	Size   int    // bytes
	Order  string // "little" or "big"
	Signed bool
}

func variants() []variant {
	var out []variant
	for _, bits := range []int{8, 16, 32, 64} {
		for _, signed := range []bool{false, true} {
			for _, order := range []string{"little", "big"} {
				out = append(out, newVariant(bits, signed, order))
			}
		}
	}
	return out
}

func newVariant(bits int, signed bool, order string) variant {
	s := variant{Bits: bits, Size: bits / 8, Order: order, Signed: signed}
	s.Uns = fmt.Sprintf("uint%d", bits)
	s.Native = s.Uns
	kind := "Uint"
	if signed {
		kind = "Int"
		s.Native = fmt.Sprintf("int%d", bits)
	}
	suffix, swap := "LE", "le"
	if order == "big" {
		suffix, swap = "BE", "be"
	}
	s.Name = fmt.Sprintf("%s%d%s", kind, bits, suffix)
	if bits > 8 {
		s.Swap = fmt.Sprintf("%s%d", swap, bits)
	}
	return s
}

// fromExpr is the stored form of the host-order value v.
func (s variant) fromExpr() string {
	switch {
	case s.Swap == "":
		return fmt.Sprintf("%s(v)", s.Name)
	case s.Signed:
		return fmt.Sprintf("%s(%s(%s(v)))", s.Name, s.Swap, s.Uns)
	default:
		return fmt.Sprintf("%s(%s(v))", s.Name, s.Swap)
	}
}

// nativeExpr is the host-order value of the receiver x.
func (s variant) nativeExpr() string {
	switch {
	case s.Swap == "":
		return fmt.Sprintf("%s(x)", s.Native)
	case s.Signed:
		return fmt.Sprintf("%s(%s(%s(x)))", s.Native, s.Swap, s.Uns)
	default:
		return fmt.Sprintf("%s(%s(x))", s.Swap, s.Uns)
	}
}

func main() {
	all := variants()
	write("types_gen.go", genTypes(all))
	write("layout_gen.go", genLayout(all))
}

func write(name string, src []byte) {
	formatted, err := format.Source(src)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	if err := os.WriteFile(name, formatted, 0o644); err != nil {
		log.Fatal(err)
	}
}

func genTypes(all []variant) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString(`
import (
	"cmp"
	"strconv"

	"code.hybscloud.com/endian/internal/bo"
)
`)
	for _, s := range all {
		writeType(&b, s)
	}
	return b.Bytes()
}

func writeType(b *bytes.Buffer, s variant) {
	article := "a"
	if s.Signed {
		article = "an"
	}
	fmt.Fprintf(b, `
// %[1]s is %[4]s %[2]s stored in %[3]s-endian byte order regardless of the
// host's native order. The zero value is zero. A direct conversion such as
// %[1]s(v) reinterprets v as an already-encoded bit pattern; use To%[1]s
// to encode a native value.
`, s.Name, s.Native, s.Order, article)
	if s.Size == 1 {
		fmt.Fprintf(b, `// A single byte reads the same in either order; the distinct type keeps
// declarations explicit.
`)
	} else {
		fmt.Fprintf(b, `// Built-in operators other than == act on the stored form; use the methods
// for arithmetic and ordering.
`)
	}
	fmt.Fprintf(b, `type %[1]s %[2]s

// To%[1]s encodes a host-order %[2]s into %[3]s-endian storage.
func To%[1]s(v %[2]s) %[1]s { return %[4]s }
`, s.Name, s.Native, s.Order, s.fromExpr())

	if s.Size == 1 {
		fmt.Fprintf(b, `
// Load%[1]s reads the first byte of b. It panics when b is empty.
func Load%[1]s(b []byte) %[1]s { return %[1]s(b[0]) }
`, s.Name)
	} else {
		fmt.Fprintf(b, `
// Load%[1]s reads the first %[2]d bytes of b as a %[3]s-endian %[4]s.
// It panics when b is shorter than %[2]d bytes.
func Load%[1]s(b []byte) %[1]s { return %[1]s(bo.Native().Uint%[5]d(b)) }
`, s.Name, s.Size, s.Order, s.Native, s.Bits)
	}

	fmt.Fprintf(b, `
// Native returns the value in host order.
func (x %s) Native() %s { return %s }
`, s.Name, s.Native, s.nativeExpr())

	if s.Size == 1 {
		fmt.Fprintf(b, `
// Bytes returns the stored byte.
func (x %[1]s) Bytes() [1]byte { return [1]byte{byte(x)} }

// Put writes the stored byte into b[0]. It panics when b is empty.
func (x %[1]s) Put(b []byte) { b[0] = byte(x) }

// Append appends the stored byte to b and returns the extended slice.
func (x %[1]s) Append(b []byte) []byte { return append(b, byte(x)) }
`, s.Name)
	} else {
		fmt.Fprintf(b, `
// Bytes returns the stored bytes: the %[3]s-endian encoding of the value.
func (x %[1]s) Bytes() [%[2]d]byte {
	var b [%[2]d]byte
	bo.Native().PutUint%[4]d(b[:], uint%[4]d(x))
	return b
}

// Put writes the stored bytes into b[:%[2]d] with no reordering.
// It panics when b is shorter than %[2]d bytes.
func (x %[1]s) Put(b []byte) { bo.Native().PutUint%[4]d(b, uint%[4]d(x)) }

// Append appends the stored bytes to b and returns the extended slice.
func (x %[1]s) Append(b []byte) []byte {
	s := x.Bytes()
	return append(b, s[:]...)
}
`, s.Name, s.Size, s.Order, s.Bits)
	}

	formatCall := "strconv.FormatUint(uint64(x.Native()), 10)"
	if s.Signed {
		formatCall = "strconv.FormatInt(int64(x.Native()), 10)"
	}
	fmt.Fprintf(b, `
// String formats the logical value in decimal.
func (x %s) String() string { return %s }
`, s.Name, formatCall)

	fmt.Fprintf(b, `
// Equal reports whether x and y hold the same value; plain == is equivalent.
func (x %[1]s) Equal(y %[1]s) bool { return x == y }

// Less reports whether x orders before y by logical value.
func (x %[1]s) Less(y %[1]s) bool { return x.Native() < y.Native() }

// Compare orders x against y by logical value: -1, 0, or +1.
func (x %[1]s) Compare(y %[1]s) int { return cmp.Compare(x.Native(), y.Native()) }

// EqualNative reports whether x holds the native value v.
func (x %[1]s) EqualNative(v %[2]s) bool { return x.Native() == v }

// LessNative reports whether x orders before the native value v.
func (x %[1]s) LessNative(v %[2]s) bool { return x.Native() < v }

// CompareNative orders x against the native value v: -1, 0, or +1.
func (x %[1]s) CompareNative(v %[2]s) int { return cmp.Compare(x.Native(), v) }
`, s.Name, s.Native)

	fmt.Fprintf(b, `
// Add returns x + y in the receiver's byte order. Overflow wraps.
func (x %[1]s) Add(y %[1]s) %[1]s { return To%[1]s(x.Native() + y.Native()) }

// Sub returns x - y in the receiver's byte order. Overflow wraps.
func (x %[1]s) Sub(y %[1]s) %[1]s { return To%[1]s(x.Native() - y.Native()) }

// Mul returns x * y in the receiver's byte order. Overflow wraps.
func (x %[1]s) Mul(y %[1]s) %[1]s { return To%[1]s(x.Native() * y.Native()) }

// Div returns x / y in the receiver's byte order. Division by zero panics.
func (x %[1]s) Div(y %[1]s) %[1]s { return To%[1]s(x.Native() / y.Native()) }

// And returns x AND y. Byte order permutes whole bytes, so same-order stored
// forms combine directly.
func (x %[1]s) And(y %[1]s) %[1]s { return x & y }

// Or returns x OR y on the stored forms.
func (x %[1]s) Or(y %[1]s) %[1]s { return x | y }

// Xor returns x XOR y on the stored forms.
func (x %[1]s) Xor(y %[1]s) %[1]s { return x ^ y }

// AddNative returns x + v in the receiver's byte order. Overflow wraps.
func (x %[1]s) AddNative(v %[2]s) %[1]s { return To%[1]s(x.Native() + v) }

// SubNative returns x - v in the receiver's byte order. Overflow wraps.
func (x %[1]s) SubNative(v %[2]s) %[1]s { return To%[1]s(x.Native() - v) }

// MulNative returns x * v in the receiver's byte order. Overflow wraps.
func (x %[1]s) MulNative(v %[2]s) %[1]s { return To%[1]s(x.Native() * v) }

// DivNative returns x / v in the receiver's byte order. Division by zero panics.
func (x %[1]s) DivNative(v %[2]s) %[1]s { return To%[1]s(x.Native() / v) }

// AndNative returns x AND the native value v.
func (x %[1]s) AndNative(v %[2]s) %[1]s { return x & To%[1]s(v) }

// OrNative returns x OR the native value v.
func (x %[1]s) OrNative(v %[2]s) %[1]s { return x | To%[1]s(v) }

// XorNative returns x XOR the native value v.
func (x %[1]s) XorNative(v %[2]s) %[1]s { return x ^ To%[1]s(v) }
`, s.Name, s.Native)
}

func genLayout(all []variant) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString(`
import "unsafe"

// Layout transparency: each endian type must match its native integer in size
// and alignment exactly. A mismatch underflows one of the constant array
// lengths below and breaks the build.
var (
`)
	for i, s := range all {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\t_ [unsafe.Sizeof(%[1]s(0)) - unsafe.Sizeof(%[2]s(0))]struct{}\n", s.Name, s.Native)
		fmt.Fprintf(&b, "\t_ [unsafe.Sizeof(%[2]s(0)) - unsafe.Sizeof(%[1]s(0))]struct{}\n", s.Name, s.Native)
		fmt.Fprintf(&b, "\t_ [unsafe.Alignof(%[1]s(0)) - unsafe.Alignof(%[2]s(0))]struct{}\n", s.Name, s.Native)
		fmt.Fprintf(&b, "\t_ [unsafe.Alignof(%[2]s(0)) - unsafe.Alignof(%[1]s(0))]struct{}\n", s.Name, s.Native)
	}
	b.WriteString(")\n")
	return b.Bytes()
}
