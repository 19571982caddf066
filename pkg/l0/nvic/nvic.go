// Package nvic controls the Cortex-M nested vectored interrupt controller.
package nvic

import (
	"errors"
	"sync"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// Registers.
const (
	EN0  reg.Addr = 0xE000E100
	DIS0 reg.Addr = 0xE000E180
	PRI0 reg.Addr = 0xE000E400
)

// Vector is an exception vector number. External interrupts start at 16.
type Vector uint8

// Vectors used by the board.
const (
	VectorGPIOE Vector = 20
	VectorGPIOF Vector = 46
	VectorCAN0  Vector = 55
	VectorCAN1  Vector = 56
	VectorHIB   Vector = 59
)

// MaxPriority is the lowest urgency representable in 3 priority bits.
const MaxPriority = 7

var (
	// ErrInvalidVector indicates a system exception vector (below 16).
	ErrInvalidVector = errors.New("not an external interrupt vector")
	// ErrInvalidPriority indicates a priority above MaxPriority.
	ErrInvalidPriority = errors.New("invalid interrupt priority")
)

// IRQ returns the external interrupt number.
func (v Vector) IRQ() (uint32, error) {
	if v < 16 {
		return 0, ErrInvalidVector
	}
	return uint32(v) - 16, nil
}

// Controller is the NVIC on a register bus.
type Controller struct {
	Bus reg.Bus
}

// New creates a Controller.
func New(bus reg.Bus) *Controller {
	return &Controller{Bus: bus}
}

// Enable enables the interrupt. EN registers are write-1-to-set.
func (c *Controller) Enable(v Vector) error {
	irq, err := v.IRQ()
	if err != nil {
		return err
	}
	c.Bus.Write(EN0.Offset((irq>>5)*4), 1<<(irq&31))
	return nil
}

// Disable disables the interrupt. DIS registers are write-1-to-clear.
func (c *Controller) Disable(v Vector) error {
	irq, err := v.IRQ()
	if err != nil {
		return err
	}
	c.Bus.Write(DIS0.Offset((irq>>5)*4), 1<<(irq&31))
	return nil
}

// SetPriority sets the 3-bit priority, 0 being the most urgent.
func (c *Controller) SetPriority(v Vector, priority uint8) error {
	irq, err := v.IRQ()
	if err != nil {
		return err
	}
	if priority > MaxPriority {
		return ErrInvalidPriority
	}
	shift := 5 + (irq&3)*8
	reg.Modify(c.Bus, PRI0.Offset((irq>>2)*4), 7<<shift, uint32(priority)<<shift)
	return nil
}

// Masker masks and unmasks all interrupts (CPSID I / CPSIE I).
type Masker interface {
	DisableInterrupts()
	EnableInterrupts()
}

// Masked runs fn with interrupts masked.
func Masked(m Masker, fn func()) {
	m.DisableInterrupts()
	defer m.EnableInterrupts()
	fn()
}

// GlobalMask is a Masker for hosted builds. Masking holds a lock which
// interrupt dispatchers take before running a handler, so a masked section
// is never preempted by a handler.
type GlobalMask struct {
	lock sync.Mutex
}

// DisableInterrupts implements Masker.
func (m *GlobalMask) DisableInterrupts() {
	m.lock.Lock()
}

// EnableInterrupts implements Masker.
func (m *GlobalMask) EnableInterrupts() {
	m.lock.Unlock()
}

// Dispatch runs an interrupt handler unless masked, in which case it waits.
func (m *GlobalMask) Dispatch(handler func()) {
	m.lock.Lock()
	defer m.lock.Unlock()
	handler()
}
