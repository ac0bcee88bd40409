package aclint

import (
	"rvperiph/hardware/mmio"
	"rvperiph/hardware/riscv"
)

const msipStride = 4

// MSWI is the machine software interrupt device: one msip register per hart.
type MSWI[H riscv.HartID[H]] struct {
	msip0 mmio.Reg32
}

// Msip returns the msip register of hart h.
func (m MSWI[H]) Msip(h H) MSIP {
	return MSIP{reg: m.msip0.Offset(riscv.HartIndex(h).Inner(), msipStride)}
}

// MsipMhartid returns the msip register of the hart running the caller.  It
// panics when mhartid is not one of H.
func (m MSWI[H]) MsipMhartid() MSIP {
	return m.Msip(riscv.MustCurrentHart[H]())
}

// MSIP raises and lowers the machine software interrupt of one hart.  Only
// bit 0 is defined.
type MSIP struct {
	reg mmio.Reg32
}

func (m MSIP) Addr() uintptr { return m.reg.Addr() }

func (m MSIP) IsPending() bool {
	return m.reg.HasBits(1)
}

// Pend raises a software interrupt on the target hart.
func (m MSIP) Pend() {
	m.reg.Set(1)
}

// Unpend clears the software interrupt; handlers call this to acknowledge.
func (m MSIP) Unpend() {
	m.reg.Set(0)
}
