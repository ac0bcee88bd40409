package plic

import "rvperiph/hardware/mmio"

// CTX is one hart context of the PLIC: its enable bits, priority threshold
// and claim/complete register.
type CTX struct {
	id      int
	enable0 mmio.Reg32
	ctx     mmio.Reg32
}

// ID is the context number.
func (c CTX) ID() int { return c.id }

func (c CTX) Enables() ENABLES { return ENABLES{reg0: c.enable0} }

func (c CTX) Threshold() THRESHOLD { return THRESHOLD{reg: c.ctx} }

func (c CTX) Claim() CLAIM { return CLAIM{reg: c.ctx.Offset(1, 4)} }

// ENABLES is the per-context enable bit array.  Enable and Disable are
// read-modify-write sequences; do not race them against each other on the
// same word.
type ENABLES struct {
	reg0 mmio.Reg32
}

func (r ENABLES) word(w int) mmio.Reg32 {
	return r.reg0.Offset(w, 4)
}

func (r ENABLES) IsEnabled(src InterruptNumber) bool {
	w, bit := sourceBit(sourceNumber(src))
	return r.word(w).HasBits(bit)
}

func (r ENABLES) Enable(src InterruptNumber) {
	w, bit := sourceBit(sourceNumber(src))
	r.word(w).SetBits(bit)
}

func (r ENABLES) Disable(src InterruptNumber) {
	w, bit := sourceBit(sourceNumber(src))
	r.word(w).ClearBits(bit)
}

// EnableAll enables sources 1 through n.
func (r ENABLES) EnableAll(n uint16) {
	r.eachWord(n, func(reg mmio.Reg32, mask uint32) { reg.SetBits(mask) })
}

// DisableAll disables sources 1 through n.
func (r ENABLES) DisableAll(n uint16) {
	r.eachWord(n, func(reg mmio.Reg32, mask uint32) { reg.ClearBits(mask) })
}

// eachWord calls f once per enable word with the mask of sources 1..n it
// holds.  Bit 0 of word 0 is source 0 and is never included.
func (r ENABLES) eachWord(n uint16, f func(mmio.Reg32, uint32)) {
	if n == 0 {
		return
	}
	last, _ := sourceBit(n)
	for w := 0; w <= last; w++ {
		mask := ^uint32(0)
		if w == last {
			mask = ^uint32(0) >> (31 - n%32)
		}
		if w == 0 {
			mask &^= 1
		}
		if mask != 0 {
			f(r.word(w), mask)
		}
	}
}

// THRESHOLD masks every source whose priority is not above it.
type THRESHOLD struct {
	reg mmio.Reg32
}

func (t THRESHOLD) Get() Priority { return Priority(t.reg.Get()) }

func (t THRESHOLD) Set(p PriorityNumber) { t.reg.Set(uint32(p.Number())) }

// CLAIM is the claim/complete register of a context.
type CLAIM struct {
	reg mmio.Reg32
}

// Claim takes the highest priority pending source, clearing its pending
// bit.  It returns false when nothing is pending.
func (c CLAIM) Claim() (uint16, bool) {
	n := uint16(c.reg.Get())
	return n, n != 0
}

// Complete tells the PLIC the handler for src is done so it can be
// signalled again.
func (c CLAIM) Complete(src InterruptNumber) {
	c.reg.Set(uint32(sourceNumber(src)))
}
