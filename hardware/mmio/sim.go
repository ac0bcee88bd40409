package mmio

import (
	"fmt"
	"sync"
)

// SimBus is a sparse little-endian memory standing in for device registers.
// Unwritten locations read as zero.  It is safe for concurrent use, so
// several goroutines can play separate harts.
type SimBus struct {
	mu       sync.Mutex
	words    map[uintptr]uint32
	counters map[uintptr]uint64
}

func NewSimBus() *SimBus {
	return &SimBus{
		words:    make(map[uintptr]uint32),
		counters: make(map[uintptr]uint64),
	}
}

// AddCounter turns the 64 bit location at addr into a free running counter
// that advances by step after every load of it.  Stores still set its value.
func (s *SimBus) AddCounter(addr uintptr, step uint64) {
	checkAligned(addr, 8)
	s.mu.Lock()
	s.counters[addr] = step
	s.mu.Unlock()
}

func (s *SimBus) Load32(addr uintptr) uint32 {
	checkAligned(addr, 4)
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.words[addr]
	s.tick(addr)
	return v
}

func (s *SimBus) Store32(addr uintptr, v uint32) {
	checkAligned(addr, 4)
	s.mu.Lock()
	s.words[addr] = v
	s.mu.Unlock()
}

func (s *SimBus) Load64(addr uintptr) uint64 {
	checkAligned(addr, 8)
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.load64(addr)
	s.tick(addr)
	return v
}

func (s *SimBus) Store64(addr uintptr, v uint64) {
	checkAligned(addr, 8)
	s.mu.Lock()
	s.store64(addr, v)
	s.mu.Unlock()
}

// Peek64 reads without advancing counters.
func (s *SimBus) Peek64(addr uintptr) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load64(addr)
}

// Peek32 reads without advancing counters.
func (s *SimBus) Peek32(addr uintptr) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words[addr]
}

// Len is the number of words ever written.
func (s *SimBus) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

func (s *SimBus) load64(addr uintptr) uint64 {
	return uint64(s.words[addr]) | uint64(s.words[addr+4])<<32
}

func (s *SimBus) store64(addr uintptr, v uint64) {
	s.words[addr] = uint32(v)
	s.words[addr+4] = uint32(v >> 32)
}

// caller holds mu
func (s *SimBus) tick(addr uintptr) {
	step, ok := s.counters[addr]
	if !ok {
		return
	}
	s.store64(addr, s.load64(addr)+step)
}

func checkAligned(addr uintptr, size uintptr) {
	if addr%size != 0 {
		panic(fmt.Sprintf("unaligned %d byte access at %#x", size, addr))
	}
}
