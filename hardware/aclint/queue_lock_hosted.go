//go:build !(tinygo && riscv)

package aclint

import "sync"

// Off target the timer interrupt is just another goroutine calling
// HandleMachineTimer, so masking MTIE does not exclude it.  The handler
// only ever uses TryLock.
type queueLock struct {
	sync.Mutex
}
