package aclint

import (
	"math"
	"math/bits"
	"time"
)

const nsPerSecond = uint64(time.Second)

// Ticks converts d into mtime ticks at freq Hz, rounding down.  The product
// is computed in 128 bits; results that do not fit saturate.  Negative
// durations are zero ticks.
func Ticks(d time.Duration, freq uint64) uint64 {
	if d <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d), freq)
	if hi >= nsPerSecond {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, nsPerSecond)
	return q
}

// Delay is a busy-waiting delay clocked by mtime.  Its resolution is one
// mtime tick at the declared frequency.
type Delay struct {
	mtime MTIME
	freq  uint64
}

func NewDelay(mtime MTIME, freq uint64) Delay {
	return Delay{mtime: mtime, freq: freq}
}

func (d Delay) Freq() uint64 { return d.freq }

// Ticks is the number of mtime ticks Sleep(dur) waits for.
func (d Delay) Ticks(dur time.Duration) uint64 {
	return Ticks(dur, d.freq)
}

// Sleep polls mtime until dur has elapsed.  The counter is compared by
// wrapping difference so a rollover during the wait is harmless.
func (d Delay) Sleep(dur time.Duration) {
	n := d.Ticks(dur)
	t0 := d.mtime.Get()
	for d.mtime.Get()-t0 < n {
	}
}

func (d Delay) DelayNs(ns uint32) {
	d.Sleep(time.Duration(ns))
}

func (d Delay) DelayUs(us uint32) {
	d.Sleep(time.Duration(us) * time.Microsecond)
}

func (d Delay) DelayMs(ms uint32) {
	d.Sleep(time.Duration(ms) * time.Millisecond)
}
