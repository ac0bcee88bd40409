// Package plic drives the platform-level interrupt controller of a RISC-V
// target.  The PLIC routes external interrupt sources to hart contexts; a
// context takes an interrupt by claiming it and hands it back by completing
// it.
package plic

import (
	"rvperiph/hardware/mmio"
	"rvperiph/hardware/riscv"
)

// register block offsets from the PLIC base
const (
	prioritiesOffset = 0x0000
	pendingsOffset   = 0x1000
	enablesOffset    = 0x2000
	contextsOffset   = 0x20_0000

	enablesStride = 0x80
	contextStride = 0x1000
)

// InterruptNumber is an external interrupt source.  Source 0 means "no
// interrupt" and is never a valid argument.
type InterruptNumber interface {
	Number() uint16
}

// PriorityNumber is a source priority or a context threshold.  0 never
// interrupts.
type PriorityNumber interface {
	Number() uint8
}

// Source is a plain InterruptNumber for targets without an enumeration of
// their sources.
type Source uint16

func (s Source) Number() uint16 { return uint16(s) }

// Priority is a plain PriorityNumber.
type Priority uint8

func (p Priority) Number() uint8 { return uint8(p) }

func sourceNumber(src InterruptNumber) uint16 {
	n := src.Number()
	if n == 0 {
		panic("plic: interrupt source 0 is reserved")
	}
	return n
}

// word index and bit mask of a source in the pending and enable arrays
func sourceBit(n uint16) (int, uint32) {
	return int(n / 32), 1 << (n % 32)
}

// Plic is implemented by a zero-sized marker type naming the base address of
// a target's PLIC.
type Plic interface {
	Base() uintptr
}

// PLIC is the zero-sized handle of the PLIC at P's base address, for the
// harts described by H.
type PLIC[P Plic, H riscv.HartID[H]] struct{}

func (PLIC[P, H]) base() uintptr {
	var p P
	return p.Base()
}

// IsInterrupting returns true if a machine external interrupt is pending.
func (PLIC[P, H]) IsInterrupting() bool { return riscv.ReadMip().MExt() }

// IsEnabled returns true if machine external interrupts are enabled.
func (PLIC[P, H]) IsEnabled() bool { return riscv.ReadMie().MExt() }

// Enable lets the PLIC interrupt this hart.  It may break mask-based
// critical sections.
func (PLIC[P, H]) Enable() { riscv.SetMie(riscv.MachineExternal) }

func (PLIC[P, H]) Disable() { riscv.ClearMie(riscv.MachineExternal) }

func (p PLIC[P, H]) Priorities() PRIORITIES {
	return PRIORITIES{reg0: mmio.Reg32(p.base() + prioritiesOffset)}
}

func (p PLIC[P, H]) Pendings() PENDINGS {
	return PENDINGS{reg0: mmio.Reg32(p.base() + pendingsOffset)}
}

// Ctx returns the machine context of hart h.
func (p PLIC[P, H]) Ctx(h H) CTX {
	i := riscv.HartIndex(h).Inner()
	return CTX{
		id:      i,
		enable0: mmio.Reg32(p.base() + enablesOffset).Offset(i, enablesStride),
		ctx:     mmio.Reg32(p.base() + contextsOffset).Offset(i, contextStride),
	}
}

// CtxMhartid returns the context of the hart running the caller.  It reads
// mhartid, so it only works in machine mode, and panics when mhartid is not
// one of H.
func (p PLIC[P, H]) CtxMhartid() CTX {
	return p.Ctx(riscv.MustCurrentHart[H]())
}

// PRIORITIES holds one priority word per source.
type PRIORITIES struct {
	reg0 mmio.Reg32
}

func (r PRIORITIES) reg(n uint16) mmio.Reg32 {
	return r.reg0.Offset(int(n), 4)
}

func (r PRIORITIES) Priority(src InterruptNumber) Priority {
	return Priority(r.reg(sourceNumber(src)).Get())
}

func (r PRIORITIES) SetPriority(src InterruptNumber, p PriorityNumber) {
	r.reg(sourceNumber(src)).Set(uint32(p.Number()))
}

// Reset sets the priority of sources 1 through n to 0, which masks them.
func (r PRIORITIES) Reset(n uint16) {
	for i := uint16(1); i <= n && i != 0; i++ {
		r.reg(i).Set(0)
	}
}

// PENDINGS is the read-only pending bit array.
type PENDINGS struct {
	reg0 mmio.Reg32
}

func (r PENDINGS) IsPending(src InterruptNumber) bool {
	w, bit := sourceBit(sourceNumber(src))
	return r.reg0.Offset(w, 4).HasBits(bit)
}
