//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

type volatileBus struct{}

func defaultBus() Bus {
	return volatileBus{}
}

func (volatileBus) Load32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (volatileBus) Store32(addr uintptr, v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), v)
}

func (volatileBus) Load64(addr uintptr) uint64 {
	return volatile.LoadUint64((*uint64)(unsafe.Pointer(addr)))
}

func (volatileBus) Store64(addr uintptr, v uint64) {
	volatile.StoreUint64((*uint64)(unsafe.Pointer(addr)), v)
}
