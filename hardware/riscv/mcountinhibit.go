package riscv

var (
	mcountinhibitCY  = Bit{Pos: 0}
	mcountinhibitIR  = Bit{Pos: 2}
	mcountinhibitHPM = BitRange{Lo: 3, Hi: 31}
)

// McountinhibitBitmask covers cy, ir and hpm3 through hpm31.
const McountinhibitBitmask uintptr = 0xFFFF_FFFD

// Mcountinhibit is a value of the machine counter-inhibit register.
type Mcountinhibit struct {
	bits uintptr
}

func McountinhibitFromBits(bits uintptr) Mcountinhibit { return Mcountinhibit{bits: bits} }
func (m Mcountinhibit) Bits() uintptr                  { return m.bits }
func (m Mcountinhibit) Bitmask() uintptr               { return McountinhibitBitmask }

// CY is the cycle[h] inhibit bit.
func (m Mcountinhibit) CY() bool { return mcountinhibitCY.Get(m.bits) }

// SetCY only updates the in-memory value without touching the CSR.
func (m *Mcountinhibit) SetCY(v bool) { m.bits = mcountinhibitCY.Set(m.bits, v) }

// IR is the instret[h] inhibit bit.
func (m Mcountinhibit) IR() bool { return mcountinhibitIR.Get(m.bits) }

// SetIR only updates the in-memory value without touching the CSR.
func (m *Mcountinhibit) SetIR(v bool) { m.bits = mcountinhibitIR.Set(m.bits, v) }

// HPM is the mhpmcounterX[h] inhibit bit.  index must be in [3,31]; anything
// else panics.
func (m Mcountinhibit) HPM(index int) bool { return mcountinhibitHPM.Get(m.bits, index) }

// SetHPM only updates the in-memory value.  index must be in [3,31].
func (m *Mcountinhibit) SetHPM(index int, v bool) {
	m.bits = mcountinhibitHPM.Set(m.bits, index, v)
}

// HPMAt is HPM for an index already known to be in range.
func (m Mcountinhibit) HPMAt(index HPMIndex) bool { return m.HPM(index.Inner()) }

func ReadMcountinhibit() Mcountinhibit {
	return Mcountinhibit{bits: machine.Read(CSRMcountinhibit)}
}

func WriteMcountinhibit(m Mcountinhibit) { machine.Write(CSRMcountinhibit, m.bits) }

func SetMcountinhibitCY()   { machine.Set(CSRMcountinhibit, mcountinhibitCY.Mask()) }
func ClearMcountinhibitCY() { machine.Clear(CSRMcountinhibit, mcountinhibitCY.Mask()) }
func SetMcountinhibitIR()   { machine.Set(CSRMcountinhibit, mcountinhibitIR.Mask()) }
func ClearMcountinhibitIR() { machine.Clear(CSRMcountinhibit, mcountinhibitIR.Mask()) }

// SetMcountinhibitHPM panics unless index is in [3,31].
func SetMcountinhibitHPM(index int) {
	if !mcountinhibitHPM.Contains(index) {
		panic("mcountinhibit: hpm index out of range")
	}
	machine.Set(CSRMcountinhibit, 1<<uint(index))
}

// ClearMcountinhibitHPM panics unless index is in [3,31].
func ClearMcountinhibitHPM(index int) {
	if !mcountinhibitHPM.Contains(index) {
		panic("mcountinhibit: hpm index out of range")
	}
	machine.Clear(CSRMcountinhibit, 1<<uint(index))
}
