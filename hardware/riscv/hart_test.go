package riscv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHart struct{ n uint8 }

var (
	hart0 = testHart{0}
	hart1 = testHart{1}
)

func (h testHart) Number() int { return int(h.n) }
func (testHart) Min() int      { return 0 }
func (testHart) Max() int      { return 1 }
func (testHart) FromNumber(n int) (testHart, error) {
	idx, err := IndexFrom[testHart](n)
	if err != nil {
		return testHart{}, err
	}
	return testHart{uint8(idx.Inner())}, nil
}

func TestCurrentHart(t *testing.T) {
	sim := withSimCSRs(t)

	h, err := CurrentHart[testHart]()
	require.NoError(t, err)
	assert.Equal(t, hart0, h)

	sim.Write(CSRMhartid, 1)
	assert.Equal(t, 1, ReadMhartid())
	assert.Equal(t, hart1, MustCurrentHart[testHart]())
	assert.Equal(t, 1, HartIndex(hart1).Inner())

	sim.Write(CSRMhartid, 5)
	_, err = CurrentHart[testHart]()
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Panics(t, func() { MustCurrentHart[testHart]() })
}
