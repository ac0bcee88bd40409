//go:build tinygo && riscv

package riscv

import "device/riscv"

// hartCSRFile issues the csr instructions on the running hart.  The CSR
// number is part of the instruction encoding so every register this package
// knows about gets its own instruction string.
type hartCSRFile struct{}

func defaultCSRFile() CSRFile {
	return hartCSRFile{}
}

func (hartCSRFile) Read(csr CSR) uintptr {
	switch csr {
	case CSRMstatus:
		return riscv.AsmFull("csrr {}, mstatus", nil)
	case CSRMie:
		return riscv.AsmFull("csrr {}, mie", nil)
	case CSRMtvec:
		return riscv.AsmFull("csrr {}, mtvec", nil)
	case CSRMcountinhibit:
		return riscv.AsmFull("csrr {}, 0x320", nil)
	case CSRMip:
		return riscv.AsmFull("csrr {}, mip", nil)
	case CSRMhartid:
		return riscv.AsmFull("csrr {}, mhartid", nil)
	}
	panic("read of unsupported CSR " + csr.String())
}

func (hartCSRFile) Write(csr CSR, bits uintptr) {
	regs := map[string]interface{}{"bits": bits}
	switch csr {
	case CSRMstatus:
		riscv.AsmFull("csrw mstatus, {bits}", regs)
	case CSRMie:
		riscv.AsmFull("csrw mie, {bits}", regs)
	case CSRMtvec:
		riscv.AsmFull("csrw mtvec, {bits}", regs)
	case CSRMcountinhibit:
		riscv.AsmFull("csrw 0x320, {bits}", regs)
	case CSRMip:
		riscv.AsmFull("csrw mip, {bits}", regs)
	default:
		panic("write of unsupported CSR " + csr.String())
	}
}

func (hartCSRFile) Set(csr CSR, mask uintptr) {
	regs := map[string]interface{}{"mask": mask}
	switch csr {
	case CSRMstatus:
		riscv.AsmFull("csrs mstatus, {mask}", regs)
	case CSRMie:
		riscv.AsmFull("csrs mie, {mask}", regs)
	case CSRMcountinhibit:
		riscv.AsmFull("csrs 0x320, {mask}", regs)
	case CSRMip:
		riscv.AsmFull("csrs mip, {mask}", regs)
	default:
		panic("set of unsupported CSR " + csr.String())
	}
}

func (hartCSRFile) Clear(csr CSR, mask uintptr) {
	regs := map[string]interface{}{"mask": mask}
	switch csr {
	case CSRMstatus:
		riscv.AsmFull("csrc mstatus, {mask}", regs)
	case CSRMie:
		riscv.AsmFull("csrc mie, {mask}", regs)
	case CSRMcountinhibit:
		riscv.AsmFull("csrc 0x320, {mask}", regs)
	case CSRMip:
		riscv.AsmFull("csrc mip, {mask}", regs)
	default:
		panic("clear of unsupported CSR " + csr.String())
	}
}
