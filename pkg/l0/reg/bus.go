package reg

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Addr is the address of a 32-bit register.
type Addr uint32

// Offset returns the address off bytes after a.
func (a Addr) Offset(off uint32) Addr {
	return a + Addr(off)
}

// String implements fmt.Stringer.
func (a Addr) String() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// Bus reads and writes 32-bit registers.
type Bus interface {
	Read(addr Addr) uint32
	Write(addr Addr, val uint32)
}

// ErrTimeout indicates a polled register never reached the expected value.
var ErrTimeout = errors.New("register poll timeout")

// Set sets the bits in mask (read-modify-write).
func Set(b Bus, addr Addr, mask uint32) {
	b.Write(addr, b.Read(addr)|mask)
}

// Clear clears the bits in mask (read-modify-write).
func Clear(b Bus, addr Addr, mask uint32) {
	b.Write(addr, b.Read(addr)&^mask)
}

// Modify clears then sets bits in a single read-modify-write.
func Modify(b Bus, addr Addr, clear, set uint32) {
	b.Write(addr, b.Read(addr)&^clear|set)
}

// IsSet reports whether all bits in mask are set.
func IsSet(b Bus, addr Addr, mask uint32) bool {
	return b.Read(addr)&mask == mask
}

// WaitFor polls addr until the bits selected by mask equal want.
// It gives up with ErrTimeout once timeout elapses, or with the context
// error if ctx is done first. The register is always read at least once.
func WaitFor(ctx context.Context, b Bus, addr Addr, mask, want uint32, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if b.Read(addr)&mask == want {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !time.Now().Before(deadline) {
			return ErrTimeout
		}
		runtime.Gosched()
	}
}
