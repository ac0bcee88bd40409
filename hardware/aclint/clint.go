// Package aclint drives the core-local interruptor of a RISC-V target: the
// machine software interrupt device (MSWI) and the machine timer (MTIMER).
package aclint

import (
	"rvperiph/hardware/mmio"
	"rvperiph/hardware/riscv"
)

// register block offsets from the CLINT base
const (
	mswiOffset     = 0x0000
	mtimecmpOffset = 0x4000
	mtimeOffset    = 0xBFF8
)

// Clint is implemented by a zero-sized marker type whose only job is to
// name the base address of a target's CLINT.
type Clint interface {
	Base() uintptr
}

// CLINT is the zero-sized handle of the CLINT at C's base address, for the
// harts described by H.
type CLINT[C Clint, H riscv.HartID[H]] struct{}

func (CLINT[C, H]) base() uintptr {
	var c C
	return c.Base()
}

// IsInterrupting returns true if a machine timer OR software interrupt is
// pending.
func (c CLINT[C, H]) IsInterrupting() bool {
	return c.MSWIIsInterrupting() || c.MTIMERIsInterrupting()
}

// IsEnabled returns true if machine timer OR software interrupts are enabled.
func (c CLINT[C, H]) IsEnabled() bool {
	return c.MSWIIsEnabled() || c.MTIMERIsEnabled()
}

// Enable enables machine software AND timer interrupts.  The two bits are
// set one after the other, not atomically.
//
// Enabling the CLINT may break mask-based critical sections.
func (c CLINT[C, H]) Enable() {
	c.MSWIEnable()
	c.MTIMEREnable()
}

// Disable clears machine software AND timer interrupt enables.
func (c CLINT[C, H]) Disable() {
	c.MSWIDisable()
	c.MTIMERDisable()
}

func (CLINT[C, H]) MSWIIsInterrupting() bool { return riscv.ReadMip().MSoft() }
func (CLINT[C, H]) MSWIIsEnabled() bool      { return riscv.ReadMie().MSoft() }
func (CLINT[C, H]) MSWIEnable()              { riscv.SetMie(riscv.MachineSoft) }
func (CLINT[C, H]) MSWIDisable()             { riscv.ClearMie(riscv.MachineSoft) }

func (CLINT[C, H]) MTIMERIsInterrupting() bool { return riscv.ReadMip().MTimer() }
func (CLINT[C, H]) MTIMERIsEnabled() bool      { return riscv.ReadMie().MTimer() }
func (CLINT[C, H]) MTIMEREnable()              { riscv.SetMie(riscv.MachineTimer) }
func (CLINT[C, H]) MTIMERDisable()             { riscv.ClearMie(riscv.MachineTimer) }

// MSWI returns the software interrupt block.
func (c CLINT[C, H]) MSWI() MSWI[H] {
	return MSWI[H]{msip0: mmio.Reg32(c.base() + mswiOffset)}
}

// MTIMER returns the timer block.
func (c CLINT[C, H]) MTIMER() MTIMER[H] {
	return MTIMER[H]{
		mtimecmp0: mmio.Reg64(c.base() + mtimecmpOffset),
		mtime:     MTIME{reg: mmio.Reg64(c.base() + mtimeOffset)},
	}
}

// Mtime returns the shared timer counter.
func (c CLINT[C, H]) Mtime() MTIME {
	return c.MTIMER().Mtime()
}
