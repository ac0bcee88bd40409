package riscv

// SPP is the previous privilege mode for supervisor traps.
type SPP uint8

const (
	SPPUser       SPP = 0
	SPPSupervisor SPP = 1
)

func (s SPP) String() string {
	if s == SPPSupervisor {
		return "Supervisor"
	}
	return "User"
}

// MPP is the previous privilege mode for machine traps.  Encoding 2 is
// reserved.
type MPP uint8

const (
	MPPUser       MPP = 0
	MPPSupervisor MPP = 1
	MPPMachine    MPP = 3
)

func (m MPP) String() string {
	switch m {
	case MPPUser:
		return "User"
	case MPPSupervisor:
		return "Supervisor"
	case MPPMachine:
		return "Machine"
	}
	return "Reserved"
}

// FS is the floating point unit state.
type FS uint8

const (
	FSOff     FS = 0
	FSInitial FS = 1
	FSClean   FS = 2
	FSDirty   FS = 3
)

func (f FS) String() string {
	return [...]string{"Off", "Initial", "Clean", "Dirty"}[f&3]
}

var (
	mstatusSIE  = Bit{Pos: 1}
	mstatusMIE  = Bit{Pos: 3}
	mstatusSPIE = Bit{Pos: 5}
	mstatusMPIE = Bit{Pos: 7}
	mstatusSPP  = EnumField[SPP]{
		Name:     "spp",
		Field:    FieldRange(8, 8),
		Default:  SPPUser,
		Variants: []SPP{SPPUser, SPPSupervisor},
	}
	mstatusMPP = EnumField[MPP]{
		Name:     "mpp",
		Field:    FieldRange(11, 12),
		Default:  MPPMachine,
		Variants: []MPP{MPPUser, MPPSupervisor, MPPMachine},
	}
	mstatusFS = EnumField[FS]{
		Name:     "fs",
		Field:    FieldRange(13, 14),
		Default:  FSOff,
		Variants: []FS{FSOff, FSInitial, FSClean, FSDirty},
	}
)

// MstatusBitmask covers the fields modeled by Mstatus.
const MstatusBitmask uintptr = 0x79AA

// Mstatus is a value of the machine status register.
type Mstatus struct {
	bits uintptr
}

func MstatusFromBits(bits uintptr) Mstatus { return Mstatus{bits: bits} }
func (m Mstatus) Bits() uintptr            { return m.bits }
func (m Mstatus) Bitmask() uintptr         { return MstatusBitmask }

func (m Mstatus) SIE() bool  { return mstatusSIE.Get(m.bits) }
func (m Mstatus) MIE() bool  { return mstatusMIE.Get(m.bits) }
func (m Mstatus) SPIE() bool { return mstatusSPIE.Get(m.bits) }
func (m Mstatus) MPIE() bool { return mstatusMPIE.Get(m.bits) }

func (m *Mstatus) SetSIE(v bool)  { m.bits = mstatusSIE.Set(m.bits, v) }
func (m *Mstatus) SetMIE(v bool)  { m.bits = mstatusMIE.Set(m.bits, v) }
func (m *Mstatus) SetSPIE(v bool) { m.bits = mstatusSPIE.Set(m.bits, v) }
func (m *Mstatus) SetMPIE(v bool) { m.bits = mstatusMPIE.Set(m.bits, v) }

// SPP is a single bit, so every value decodes.
func (m Mstatus) SPP() SPP {
	s, _ := mstatusSPP.Get(m.bits)
	return s
}
func (m *Mstatus) SetSPP(s SPP) { m.bits = mstatusSPP.Set(m.bits, s) }

// MPP returns false for the reserved encoding.
func (m Mstatus) MPP() (MPP, bool)     { return mstatusMPP.Get(m.bits) }
func (m Mstatus) TryMPP() (MPP, error) { return mstatusMPP.TryGet(m.bits) }
func (m *Mstatus) SetMPP(p MPP)        { m.bits = mstatusMPP.Set(m.bits, p) }

func (m Mstatus) FS() FS {
	f, _ := mstatusFS.Get(m.bits)
	return f
}
func (m *Mstatus) SetFS(f FS) { m.bits = mstatusFS.Set(m.bits, f) }

func ReadMstatus() Mstatus   { return Mstatus{bits: machine.Read(CSRMstatus)} }
func WriteMstatus(m Mstatus) { machine.Write(CSRMstatus, m.bits) }

// SetMstatusMIE globally enables machine interrupts on this hart.
func SetMstatusMIE()   { machine.Set(CSRMstatus, mstatusMIE.Mask()) }
func ClearMstatusMIE() { machine.Clear(CSRMstatus, mstatusMIE.Mask()) }
