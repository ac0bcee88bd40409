package aclint

import (
	"rvperiph/hardware/mmio"
	"rvperiph/hardware/riscv"
)

const mtimecmpStride = 8

// MTIMER is the machine timer device: the shared mtime counter and one
// mtimecmp register per hart.
type MTIMER[H riscv.HartID[H]] struct {
	mtimecmp0 mmio.Reg64
	mtime     MTIME
}

// Mtimecmp returns the compare register of hart h.
func (t MTIMER[H]) Mtimecmp(h H) MTIMECMP {
	return MTIMECMP{reg: t.mtimecmp0.Offset(riscv.HartIndex(h).Inner(), mtimecmpStride)}
}

// MtimecmpMhartid returns the compare register of the running hart.  It
// panics when mhartid is not one of H.
func (t MTIMER[H]) MtimecmpMhartid() MTIMECMP {
	return t.Mtimecmp(riscv.MustCurrentHart[H]())
}

func (t MTIMER[H]) Mtime() MTIME {
	return t.mtime
}

// MTIMECMP raises the timer interrupt of its hart while mtime >= its value.
type MTIMECMP struct {
	reg mmio.Reg64
}

func (m MTIMECMP) Addr() uintptr { return m.reg.Addr() }
func (m MTIMECMP) Get() uint64   { return m.reg.Get() }

// Set arms the comparator.  On RV32 the high word is parked at all ones
// first so no spurious interrupt fires between the two halves.
func (m MTIMECMP) Set(v uint64) {
	if riscv.XLEN == 32 {
		lo := mmio.Reg32(m.reg.Addr())
		hi := mmio.Reg32(m.reg.Addr() + 4)
		hi.Set(^uint32(0))
		lo.Set(uint32(v))
		hi.Set(uint32(v >> 32))
		return
	}
	m.reg.Set(v)
}

// MTIME is the free running timer counter shared by all harts.
type MTIME struct {
	reg mmio.Reg64
}

func (m MTIME) Addr() uintptr { return m.reg.Addr() }

// Get reads the counter.  On RV32 the halves are re-read until the high
// word is stable.
func (m MTIME) Get() uint64 {
	if riscv.XLEN == 32 {
		lo := mmio.Reg32(m.reg.Addr())
		hi := mmio.Reg32(m.reg.Addr() + 4)
		for {
			h := hi.Get()
			l := lo.Get()
			if hi.Get() == h {
				return uint64(h)<<32 | uint64(l)
			}
		}
	}
	return m.reg.Get()
}

func (m MTIME) Set(v uint64) {
	m.reg.Set(v)
}
