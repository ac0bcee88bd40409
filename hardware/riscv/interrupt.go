package riscv

// Interrupt names one bit of mie/mip.
type Interrupt uintptr

const (
	SupervisorSoft     Interrupt = 1 << 1
	MachineSoft        Interrupt = 1 << 3
	SupervisorTimer    Interrupt = 1 << 5
	MachineTimer       Interrupt = 1 << 7
	SupervisorExternal Interrupt = 1 << 9
	MachineExternal    Interrupt = 1 << 11
)

// interrupt enable and pending registers share a layout
var (
	ssoftBit  = Bit{Pos: 1}
	msoftBit  = Bit{Pos: 3}
	stimerBit = Bit{Pos: 5}
	mtimerBit = Bit{Pos: 7}
	sextBit   = Bit{Pos: 9}
	mextBit   = Bit{Pos: 11}
)

// InterruptBitmask covers the bits defined in both mie and mip.
const InterruptBitmask uintptr = 0xAAA

// Mie is a value of the machine interrupt enable register.
type Mie struct {
	bits uintptr
}

func MieFromBits(bits uintptr) Mie { return Mie{bits: bits} }
func (m Mie) Bits() uintptr        { return m.bits }
func (m Mie) Bitmask() uintptr     { return InterruptBitmask }

func (m Mie) SSoft() bool  { return ssoftBit.Get(m.bits) }
func (m Mie) MSoft() bool  { return msoftBit.Get(m.bits) }
func (m Mie) STimer() bool { return stimerBit.Get(m.bits) }
func (m Mie) MTimer() bool { return mtimerBit.Get(m.bits) }
func (m Mie) SExt() bool   { return sextBit.Get(m.bits) }
func (m Mie) MExt() bool   { return mextBit.Get(m.bits) }

// Setters only update the in-memory value; use WriteMie to store it.
func (m *Mie) SetSSoft(v bool)  { m.bits = ssoftBit.Set(m.bits, v) }
func (m *Mie) SetMSoft(v bool)  { m.bits = msoftBit.Set(m.bits, v) }
func (m *Mie) SetSTimer(v bool) { m.bits = stimerBit.Set(m.bits, v) }
func (m *Mie) SetMTimer(v bool) { m.bits = mtimerBit.Set(m.bits, v) }
func (m *Mie) SetSExt(v bool)   { m.bits = sextBit.Set(m.bits, v) }
func (m *Mie) SetMExt(v bool)   { m.bits = mextBit.Set(m.bits, v) }

// Enabled reports whether every bit of i is set.
func (m Mie) Enabled(i Interrupt) bool { return m.bits&uintptr(i) == uintptr(i) }

func ReadMie() Mie         { return Mie{bits: machine.Read(CSRMie)} }
func WriteMie(m Mie)       { machine.Write(CSRMie, m.bits) }
func SetMie(i Interrupt)   { machine.Set(CSRMie, uintptr(i)) }
func ClearMie(i Interrupt) { machine.Clear(CSRMie, uintptr(i)) }

// Mip is a value of the machine interrupt pending register.  Only the
// supervisor bits are writable on real hardware; the machine bits follow the
// interrupt controllers.
type Mip struct {
	bits uintptr
}

func MipFromBits(bits uintptr) Mip { return Mip{bits: bits} }
func (m Mip) Bits() uintptr        { return m.bits }
func (m Mip) Bitmask() uintptr     { return InterruptBitmask }

func (m Mip) SSoft() bool  { return ssoftBit.Get(m.bits) }
func (m Mip) MSoft() bool  { return msoftBit.Get(m.bits) }
func (m Mip) STimer() bool { return stimerBit.Get(m.bits) }
func (m Mip) MTimer() bool { return mtimerBit.Get(m.bits) }
func (m Mip) SExt() bool   { return sextBit.Get(m.bits) }
func (m Mip) MExt() bool   { return mextBit.Get(m.bits) }

func (m *Mip) SetSSoft(v bool)  { m.bits = ssoftBit.Set(m.bits, v) }
func (m *Mip) SetSTimer(v bool) { m.bits = stimerBit.Set(m.bits, v) }
func (m *Mip) SetSExt(v bool)   { m.bits = sextBit.Set(m.bits, v) }

// Pending reports whether every bit of i is set.
func (m Mip) Pending(i Interrupt) bool { return m.bits&uintptr(i) == uintptr(i) }

func ReadMip() Mip         { return Mip{bits: machine.Read(CSRMip)} }
func SetMip(i Interrupt)   { machine.Set(CSRMip, uintptr(i)) }
func ClearMip(i Interrupt) { machine.Clear(CSRMip, uintptr(i)) }
