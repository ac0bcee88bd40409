package riscv

import (
	"fmt"
	"math/bits"
	"slices"
)

// XLEN is the width in bits of a CSR on this target.
const XLEN = bits.UintSize

// Bit is a single-bit field at position Pos.
type Bit struct {
	Pos uint
}

func (f Bit) Mask() uintptr {
	return 1 << f.Pos
}

func (f Bit) Get(bits uintptr) bool {
	return (bits>>f.Pos)&1 != 0
}

// Set returns bits with the field updated.  It only computes the in-memory
// value; nothing is written to hardware.
func (f Bit) Set(bits uintptr, v bool) uintptr {
	if v {
		return bits | f.Mask()
	}
	return bits &^ f.Mask()
}

// BitRange is a run of single-bit fields of the same kind, Lo through Hi
// inclusive, selected by a runtime index (e.g. mcountinhibit.HPM[3..31]).
type BitRange struct {
	Lo, Hi uint
}

func (f BitRange) Contains(i int) bool {
	return i >= int(f.Lo) && i <= int(f.Hi)
}

func (f BitRange) Mask() uintptr {
	return FieldRange(f.Lo, f.Hi).Mask()
}

// Get panics if i is not within [Lo,Hi].
func (f BitRange) Get(bits uintptr, i int) bool {
	f.check(i)
	return Bit{Pos: uint(i)}.Get(bits)
}

// Set panics if i is not within [Lo,Hi].
func (f BitRange) Set(bits uintptr, i int, v bool) uintptr {
	f.check(i)
	return Bit{Pos: uint(i)}.Set(bits, v)
}

func (f BitRange) check(i int) {
	if !f.Contains(i) {
		panic(fmt.Sprintf("bit index %d outside of range [%d:%d]", i, f.Hi, f.Lo))
	}
}

// Field is a contiguous multi-bit field of Width bits starting at Lo.
type Field struct {
	Lo, Width uint
}

// FieldRange builds the field covering bits lsb through msb inclusive.  It
// panics on a malformed range.
func FieldRange(lsb, msb uint) Field {
	if msb >= XLEN || lsb >= XLEN {
		panic("field range value for lsb/msb out of range")
	}
	if msb < lsb {
		panic("field range msb < lsb")
	}
	return Field{Lo: lsb, Width: msb - lsb + 1}
}

func (f Field) valueMask() uintptr {
	if f.Width >= XLEN {
		return ^uintptr(0)
	}
	return (1 << f.Width) - 1
}

// Mask is the field's bits in register position.
func (f Field) Mask() uintptr {
	return f.valueMask() << f.Lo
}

// Get returns only the field's bits, shifted down.  Bits above the field are
// never part of the result.
func (f Field) Get(bits uintptr) uintptr {
	return (bits >> f.Lo) & f.valueMask()
}

// Set truncates v to the field width and leaves every other bit of bits as
// it was.
func (f Field) Set(bits uintptr, v uintptr) uintptr {
	return (bits &^ f.Mask()) | ((v & f.valueMask()) << f.Lo)
}

// Variant is the underlying type of an enumerated field's values.
type Variant interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// EnumField is a multi-bit field whose valid values are listed in Variants.
// Default is the variant written by Reset.
type EnumField[E Variant] struct {
	Name     string
	Field    Field
	Default  E
	Variants []E
}

// Raw returns the undecoded field value.
func (f EnumField[E]) Raw(bits uintptr) uint {
	return uint(f.Field.Get(bits))
}

// Get returns the variant held in bits.  The second result is false when the
// value matches no declared variant; no default is substituted.
func (f EnumField[E]) Get(bits uintptr) (E, bool) {
	raw := f.Field.Get(bits)
	e := E(raw)
	if uintptr(e) != raw || !slices.Contains(f.Variants, e) {
		var zero E
		return zero, false
	}
	return e, true
}

// TryGet is Get reporting a mismatch as an InvalidFieldVariant error that
// carries the field name and the raw value.
func (f EnumField[E]) TryGet(bits uintptr) (E, error) {
	e, ok := f.Get(bits)
	if !ok {
		return e, invalidFieldVariant(f.Name, f.Raw(bits))
	}
	return e, nil
}

func (f EnumField[E]) Set(bits uintptr, e E) uintptr {
	return f.Field.Set(bits, uintptr(e))
}

// Reset writes the default variant.
func (f EnumField[E]) Reset(bits uintptr) uintptr {
	return f.Set(bits, f.Default)
}
