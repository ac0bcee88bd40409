package riscv

// HartID is implemented by a target's dense hart identity type.  Bounds
// gives the valid numbers (Min is 0, Max is the highest hart number) so an
// identity doubles as the bounds of its own RangedIndex.  FromNumber is
// called on the zero value and fails with ErrOutOfBounds.
type HartID[H any] interface {
	comparable
	Bounds
	Number() int
	FromNumber(n int) (H, error)
}

// HartIndex converts an identity to a bounded per-hart offset.
func HartIndex[H HartID[H]](h H) RangedIndex[H] {
	return ClampIndex[H](h.Number())
}

// ReadMhartid returns the number of the hart running the caller.
func ReadMhartid() int {
	return int(machine.Read(CSRMhartid))
}

// CurrentHart decodes mhartid into H.
func CurrentHart[H HartID[H]]() (H, error) {
	var zero H
	return zero.FromNumber(ReadMhartid())
}

// MustCurrentHart panics if the running hart is not one of H.
func MustCurrentHart[H HartID[H]]() H {
	h, err := CurrentHart[H]()
	if err != nil {
		panic("mhartid is not a hart of this target")
	}
	return h
}
