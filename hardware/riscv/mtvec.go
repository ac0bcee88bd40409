package riscv

// TrapMode selects how traps find their handler.
type TrapMode uint8

const (
	TrapDirect   TrapMode = 0
	TrapVectored TrapMode = 1
)

func (t TrapMode) String() string {
	if t == TrapVectored {
		return "Vectored"
	}
	return "Direct"
}

var mtvecMode = EnumField[TrapMode]{
	Name:     "mode",
	Field:    FieldRange(0, 1),
	Default:  TrapDirect,
	Variants: []TrapMode{TrapDirect, TrapVectored},
}

// Mtvec is a value of the machine trap vector base address register.  The
// low two bits hold the mode, the rest is the 4-byte aligned base.
type Mtvec struct {
	bits uintptr
}

func MtvecFromBits(bits uintptr) Mtvec { return Mtvec{bits: bits} }
func (m Mtvec) Bits() uintptr          { return m.bits }
func (m Mtvec) Bitmask() uintptr       { return ^uintptr(0) }

func (m Mtvec) Address() uintptr { return m.bits &^ mtvecMode.Field.Mask() }

// SetAddress panics if addr is not 4-byte aligned.
func (m *Mtvec) SetAddress(addr uintptr) {
	if addr&mtvecMode.Field.Mask() != 0 {
		panic("mtvec base address must be 4-byte aligned")
	}
	m.bits = addr | (m.bits & mtvecMode.Field.Mask())
}

// Mode returns false for the reserved encodings 2 and 3.
func (m Mtvec) Mode() (TrapMode, bool)     { return mtvecMode.Get(m.bits) }
func (m Mtvec) TryMode() (TrapMode, error) { return mtvecMode.TryGet(m.bits) }
func (m *Mtvec) SetMode(t TrapMode)        { m.bits = mtvecMode.Set(m.bits, t) }

func ReadMtvec() Mtvec   { return Mtvec{bits: machine.Read(CSRMtvec)} }
func WriteMtvec(m Mtvec) { machine.Write(CSRMtvec, m.bits) }
