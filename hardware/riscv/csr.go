// Package riscv models the machine-mode CSRs of a RISC-V hart as typed
// values built from reusable bit field descriptions, plus the index and
// hart identity types the peripheral packages are parameterized by.
package riscv

import (
	"fmt"
	"sync"
)

// CSR is the 12-bit number of a control and status register.
type CSR uint16

const (
	CSRMstatus       CSR = 0x300
	CSRMie           CSR = 0x304
	CSRMtvec         CSR = 0x305
	CSRMcountinhibit CSR = 0x320
	CSRMip           CSR = 0x344
	CSRMhartid       CSR = 0xF14
)

func (c CSR) String() string {
	switch c {
	case CSRMstatus:
		return "mstatus"
	case CSRMie:
		return "mie"
	case CSRMtvec:
		return "mtvec"
	case CSRMcountinhibit:
		return "mcountinhibit"
	case CSRMip:
		return "mip"
	case CSRMhartid:
		return "mhartid"
	}
	return fmt.Sprintf("csr%#03x", uint16(c))
}

// CSRFile is the instruction-level access to the CSRs of the running hart.
// Set and Clear are the atomic csrrs/csrrc forms.
type CSRFile interface {
	Read(csr CSR) uintptr
	Write(csr CSR, bits uintptr)
	Set(csr CSR, mask uintptr)
	Clear(csr CSR, mask uintptr)
}

var machine CSRFile = defaultCSRFile()

// Machine returns the CSR backend used by the package level helpers.
func Machine() CSRFile {
	return machine
}

// SetMachine replaces the CSR backend and returns the previous one.  It is
// meant to be called once at startup (or by tests), not concurrently with
// register access.
func SetMachine(f CSRFile) CSRFile {
	prev := machine
	machine = f
	return prev
}

// SimCSRFile is an in-memory CSR file.  Hosted builds use one as the default
// backend; tests use it to observe what the register layer does.
type SimCSRFile struct {
	mu   sync.Mutex
	regs map[CSR]uintptr
}

func NewSimCSRFile() *SimCSRFile {
	return &SimCSRFile{regs: make(map[CSR]uintptr)}
}

func (s *SimCSRFile) Read(csr CSR) uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[csr]
}

func (s *SimCSRFile) Write(csr CSR, bits uintptr) {
	s.mu.Lock()
	s.regs[csr] = bits
	s.mu.Unlock()
}

func (s *SimCSRFile) Set(csr CSR, mask uintptr) {
	s.mu.Lock()
	s.regs[csr] |= mask
	s.mu.Unlock()
}

func (s *SimCSRFile) Clear(csr CSR, mask uintptr) {
	s.mu.Lock()
	s.regs[csr] &^= mask
	s.mu.Unlock()
}
