//go:build !tinygo

package mmio

// a hosted process has no device memory to touch
func defaultBus() Bus {
	return NewSimBus()
}
