package riscv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type twoToSeven struct{}

func (twoToSeven) Min() int { return 2 }
func (twoToSeven) Max() int { return 7 }

func TestClampIndex(t *testing.T) {
	for v := -4; v <= 12; v++ {
		want := min(max(v, 2), 7)
		got := ClampIndex[twoToSeven](v).Inner()
		assert.Equal(t, want, got, "clamp of %d", v)
		assert.GreaterOrEqual(t, got, 2)
		assert.LessOrEqual(t, got, 7)
	}
}

func TestIndexFrom(t *testing.T) {
	for v := 2; v <= 7; v++ {
		idx, err := IndexFrom[twoToSeven](v)
		require.NoError(t, err)
		assert.Equal(t, v, idx.Inner())
	}
	for _, v := range []int{-1, 0, 1, 8, 100} {
		_, err := IndexFrom[twoToSeven](v)
		assert.ErrorIs(t, err, ErrOutOfBounds, "value %d", v)
		assert.False(t, errors.Is(err, ErrInvalidFieldVariant))
	}
}

func TestNewRangedIndex(t *testing.T) {
	assert.Equal(t, 2, NewRangedIndex[twoToSeven]().Inner())
	assert.Equal(t, 3, NewRangedIndex[HPMCounters]().Inner())
}

func TestHPMIndex(t *testing.T) {
	idx, err := IndexFrom[HPMCounters](31)
	require.NoError(t, err)
	var m Mcountinhibit
	m.SetHPM(idx.Inner(), true)
	assert.True(t, m.HPMAt(idx))

	_, err = IndexFrom[HPMCounters](32)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
