package aclint

import (
	"context"
	"maps"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/btree"

	"rvperiph/hardware/riscv"
	"rvperiph/lib/trust"
)

// wakeup is one suspended Wait.  seq keeps equal deadlines in arrival order.
// The timer interrupt only ever sets fired; the waiter polls it.
type wakeup struct {
	due   uint64
	seq   uint64
	fired atomic.Bool
}

func wakeupLess(a, b *wakeup) bool {
	if a.due != b.due {
		return a.due < b.due
	}
	return a.seq < b.seq
}

// timerQueue holds the pending wakeups of one hart, earliest first.  The
// hart's mtimecmp always holds the earliest deadline, or all ones when the
// queue is empty.
//
// Thread code touches a queue only with the hart's timer interrupt masked,
// so HandleMachineTimer never finds one half updated.
type timerQueue struct {
	mu      queueLock
	pending *btree.BTreeG[*wakeup]
	seq     uint64
}

// queues maps an mtimecmp address to its queue.  The map is replaced, never
// modified, so the interrupt handler can read it without a lock.
var (
	queuesMu sync.Mutex
	queues   atomic.Pointer[map[uintptr]*timerQueue]
)

func lookupQueue(addr uintptr) *timerQueue {
	if m := queues.Load(); m != nil {
		return (*m)[addr]
	}
	return nil
}

// one queue per mtimecmp register, which is one per hart
func queueFor(cmp MTIMECMP) *timerQueue {
	if q := lookupQueue(cmp.Addr()); q != nil {
		return q
	}
	queuesMu.Lock()
	defer queuesMu.Unlock()
	if q := lookupQueue(cmp.Addr()); q != nil {
		return q
	}
	next := map[uintptr]*timerQueue{}
	if m := queues.Load(); m != nil {
		maps.Copy(next, *m)
	}
	q := &timerQueue{pending: btree.NewG(8, wakeupLess)}
	next[cmp.Addr()] = q
	queues.Store(&next)
	return q
}

// maskTimer clears MTIE on the running hart and reports whether it was set.
func maskTimer() bool {
	on := riscv.ReadMie().MTimer()
	riscv.ClearMie(riscv.MachineTimer)
	return on
}

func unmaskTimer(on bool) {
	if on {
		riscv.SetMie(riscv.MachineTimer)
	}
}

// schedule queues a wakeup at due and leaves the timer interrupt enabled.
// A deadline mtime has already reached fires before schedule returns.
func (q *timerQueue) schedule(cmp MTIMECMP, mtime MTIME, due uint64) *wakeup {
	maskTimer()
	defer riscv.SetMie(riscv.MachineTimer)
	q.mu.Lock()
	defer q.mu.Unlock()
	w := &wakeup{due: due, seq: q.seq}
	q.seq++
	q.pending.ReplaceOrInsert(w)
	q.expire(cmp, mtime)
	return w
}

// cancel removes w and reports whether it was still pending.
func (q *timerQueue) cancel(cmp MTIMECMP, w *wakeup) bool {
	defer unmaskTimer(maskTimer())
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, found := q.pending.Delete(w); !found {
		return false
	}
	q.arm(cmp)
	return true
}

// expire fires every wakeup due at or before mtime, re-arms mtimecmp and
// returns how many fired.  Caller holds mu with the timer masked.
func (q *timerQueue) expire(cmp MTIMECMP, mtime MTIME) int {
	n := 0
	for {
		now := mtime.Get()
		for {
			w, ok := q.pending.Min()
			if !ok || w.due > now {
				break
			}
			q.pending.DeleteMin()
			w.fired.Store(true)
			n++
		}
		q.arm(cmp)
		// the next deadline may have passed while arming
		if w, ok := q.pending.Min(); !ok || w.due > mtime.Get() {
			return n
		}
	}
}

// caller holds mu
func (q *timerQueue) arm(cmp MTIMECMP) {
	if w, ok := q.pending.Min(); ok {
		cmp.Set(w.due)
		return
	}
	cmp.Set(math.MaxUint64)
}

// AsyncDelay suspends the calling goroutine until a machine timer interrupt
// reports that the delay has elapsed.
//
// It schedules wakeups through the mtimecmp register of the hart that
// created it.  Wait must only be called on that same hart, and nothing else
// may write that hart's mtimecmp while delays are pending.  The interrupt
// must reach HandleMachineTimer.
type AsyncDelay[H riscv.HartID[H]] struct {
	mtimer MTIMER[H]
	freq   uint64
	hart   H
}

// NewAsyncDelay binds a delay to the running hart.
func NewAsyncDelay[H riscv.HartID[H]](mtimer MTIMER[H], freq uint64) *AsyncDelay[H] {
	return &AsyncDelay[H]{mtimer: mtimer, freq: freq, hart: riscv.MustCurrentHart[H]()}
}

func (d *AsyncDelay[H]) Hart() H      { return d.hart }
func (d *AsyncDelay[H]) Freq() uint64 { return d.freq }

// Wait returns nil once dur has elapsed, or ctx.Err() if ctx ends first.
// It enables the machine timer interrupt and yields to other goroutines
// until the interrupt handler fires its wakeup.  Calling it from a hart
// other than the one the delay was created on panics.
func (d *AsyncDelay[H]) Wait(ctx context.Context, dur time.Duration) error {
	if h := riscv.MustCurrentHart[H](); h != d.hart {
		panic("aclint: async delay used on a different hart than it was created on")
	}
	n := Ticks(dur, d.freq)
	if n == 0 {
		return nil
	}
	cmp := d.mtimer.Mtimecmp(d.hart)
	mtime := d.mtimer.Mtime()
	q := queueFor(cmp)
	t0 := mtime.Get()
	due := t0 + n
	if due < t0 {
		due = math.MaxUint64
	}
	w := q.schedule(cmp, mtime, due)
	trust.Debugf("hart %d: waiting for mtime %d (%d ticks)", d.hart.Number(), due, n)

	for !w.fired.Load() {
		if err := ctx.Err(); err != nil {
			if q.cancel(cmp, w) {
				return err
			}
			return nil
		}
		runtime.Gosched()
	}
	return nil
}

func (d *AsyncDelay[H]) DelayNs(ctx context.Context, ns uint32) error {
	return d.Wait(ctx, time.Duration(ns))
}

func (d *AsyncDelay[H]) DelayUs(ctx context.Context, us uint32) error {
	return d.Wait(ctx, time.Duration(us)*time.Microsecond)
}

func (d *AsyncDelay[H]) DelayMs(ctx context.Context, ms uint32) error {
	return d.Wait(ctx, time.Duration(ms)*time.Millisecond)
}

// HandleMachineTimer is the body of the machine timer interrupt handler.  It
// fires the running hart's expired delays, re-arms mtimecmp with the next
// deadline (which also clears the interrupt) and returns how many delays
// fired.  It never blocks and does not allocate.
func HandleMachineTimer[H riscv.HartID[H]](t MTIMER[H]) int {
	cmp := t.MtimecmpMhartid()
	q := lookupQueue(cmp.Addr())
	if q == nil {
		cmp.Set(math.MaxUint64)
		return 0
	}
	// mtimecmp is left alone, so the interrupt stays pending and is taken
	// again once the holder is done
	if !q.mu.TryLock() {
		return 0
	}
	defer q.mu.Unlock()
	return q.expire(cmp, t.Mtime())
}
