// Package mmio gives address-only handles to memory-mapped registers.  All
// accesses go through a Bus so the same peripheral code runs on a target and
// against an in-memory model.
package mmio

// Bus performs volatile loads and stores of naturally aligned registers.
type Bus interface {
	Load32(addr uintptr) uint32
	Store32(addr uintptr, v uint32)
	Load64(addr uintptr) uint64
	Store64(addr uintptr, v uint64)
}

var bus Bus = defaultBus()

// Default returns the bus used by Reg32 and Reg64.
func Default() Bus {
	return bus
}

// SetBus replaces the bus and returns the previous one.  Call it before any
// register access, not concurrently with it.
func SetBus(b Bus) Bus {
	prev := bus
	bus = b
	return prev
}

// Reg32 is a 32 bit register at the given address.
type Reg32 uintptr

func (r Reg32) Addr() uintptr { return uintptr(r) }

func (r Reg32) Get() uint32 {
	return bus.Load32(uintptr(r))
}

func (r Reg32) Set(v uint32) {
	bus.Store32(uintptr(r), v)
}

// SetBits is a read-modify-write; it is not atomic.
func (r Reg32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits is a read-modify-write; it is not atomic.
func (r Reg32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

func (r Reg32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits replaces the bits selected by mask, after shifting both
// value and mask left by pos.
func (r Reg32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | (value&mask)<<pos)
}

// Offset returns the register n words of size stride past r.
func (r Reg32) Offset(n int, stride uintptr) Reg32 {
	return Reg32(uintptr(r) + uintptr(n)*stride)
}

// Reg64 is a 64 bit register at the given address.
type Reg64 uintptr

func (r Reg64) Addr() uintptr { return uintptr(r) }

func (r Reg64) Get() uint64 {
	return bus.Load64(uintptr(r))
}

func (r Reg64) Set(v uint64) {
	bus.Store64(uintptr(r), v)
}

func (r Reg64) Offset(n int, stride uintptr) Reg64 {
	return Reg64(uintptr(r) + uintptr(n)*stride)
}
