package riscv

// Bounds carries an inclusive valid range in a type.  Implementations are
// zero-sized marker types with value receivers; the methods must return
// constants with Min() <= Max().
type Bounds interface {
	Min() int
	Max() int
}

// RangedIndex is an index restricted to the range given by B.  Values
// obtained from IndexFrom are always within [B.Min(), B.Max()]; ClampIndex
// saturates instead of failing.
type RangedIndex[B Bounds] struct {
	v int
}

// NewRangedIndex returns the lowest valid index.
func NewRangedIndex[B Bounds]() RangedIndex[B] {
	var b B
	return RangedIndex[B]{v: b.Min()}
}

// ClampIndex creates an index from its inner representation, clamping v to
// the nearest in-range value when it falls outside the valid range.
func ClampIndex[B Bounds](v int) RangedIndex[B] {
	var b B
	switch {
	case v <= b.Min():
		return RangedIndex[B]{v: b.Min()}
	case v >= b.Max():
		return RangedIndex[B]{v: b.Max()}
	}
	return RangedIndex[B]{v: v}
}

// IndexFrom fails with ErrOutOfBounds exactly when v is outside the range.
func IndexFrom[B Bounds](v int) (RangedIndex[B], error) {
	var b B
	if v < b.Min() || v > b.Max() {
		return RangedIndex[B]{}, ErrOutOfBounds
	}
	return RangedIndex[B]{v: v}, nil
}

// Inner returns the index value.
func (r RangedIndex[B]) Inner() int {
	return r.v
}

// HPMCounters bounds the hardware performance monitor counters, 3 through 31.
type HPMCounters struct{}

func (HPMCounters) Min() int { return 3 }
func (HPMCounters) Max() int { return 31 }

// HPMIndex selects one of the mhpmcounter registers.
type HPMIndex = RangedIndex[HPMCounters]
