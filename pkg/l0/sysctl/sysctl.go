// Package sysctl drives the TM4C123 system control block: peripheral clock
// gates and the main system clock.
package sysctl

import (
	"errors"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// Registers.
const (
	RCC      reg.Addr = 0x400FE060
	RCGC0    reg.Addr = 0x400FE100
	RCGCGPIO reg.Addr = 0x400FE608
	RCGCHIB  reg.Addr = 0x400FE614
)

// RCC bits.
const (
	RCCXtal16MHz   uint32 = 0x00000540
	RCCOscSrcMain  uint32 = 0x00000000
	RCCUseSysDiv   uint32 = 0x00400000
	RCCSysDivShift        = 23
)

// SettleCycles is the number of cycles to wait after enabling a clock gate
// before the peripheral registers may be accessed.
const SettleCycles = 3

// Gate identifies a peripheral clock gate bit.
type Gate struct {
	Reg  reg.Addr
	Mask uint32
}

// Clock gates.
var (
	GateCAN0 = Gate{Reg: RCGC0, Mask: 0x01000000}
	GateCAN1 = Gate{Reg: RCGC0, Mask: 0x02000000}
	GateHIB  = Gate{Reg: RCGCHIB, Mask: 0x00000001}
)

// GateGPIO returns the clock gate of GPIO port n (A=0 .. F=5).
func GateGPIO(port int) Gate {
	return Gate{Reg: RCGCGPIO, Mask: 1 << uint(port)}
}

// Delayer busy-waits for a number of CPU cycles.
type Delayer interface {
	DelayCycles(n int)
}

// DelayCyclesFunc is the func form of Delayer.
type DelayCyclesFunc func(n int)

// DelayCycles implements Delayer.
func (f DelayCyclesFunc) DelayCycles(n int) {
	f(n)
}

// NoDelay is a Delayer which returns immediately.
var NoDelay = DelayCyclesFunc(func(int) {})

// PeripheralClock enables peripheral clock gates.
type PeripheralClock interface {
	Enable(g Gate)
}

// Clock implements PeripheralClock on a register bus.
type Clock struct {
	Bus     reg.Bus
	Delayer Delayer
	Hz      uint32
}

// ErrUnsupportedClock indicates the requested system clock can't be derived
// from the 200 MHz PLL output with a valid divisor.
var ErrUnsupportedClock = errors.New("unsupported system clock")

// NewClock creates a Clock. The system clock frequency is unknown until
// InitSystemClock is called.
func NewClock(bus reg.Bus, d Delayer) *Clock {
	if d == nil {
		d = NoDelay
	}
	return &Clock{Bus: bus, Delayer: d}
}

// Enable implements PeripheralClock. It sets the gate bit and waits
// SettleCycles before returning.
func (c *Clock) Enable(g Gate) {
	reg.Set(c.Bus, g.Reg, g.Mask)
	c.Delayer.DelayCycles(SettleCycles)
}

// Disable clears the gate bit.
func (c *Clock) Disable(g Gate) {
	reg.Clear(c.Bus, g.Reg, g.Mask)
}

// Enabled reports whether the gate is enabled.
func (c *Clock) Enabled(g Gate) bool {
	return reg.IsSet(c.Bus, g.Reg, g.Mask)
}

// InitSystemClock runs the core from the PLL at hz, using the 16 MHz main
// oscillator. SYSDIV = 200 MHz / hz - 1 must be an integer in [3, 15].
func (c *Clock) InitSystemClock(hz uint32) error {
	const pllHz = 200000000
	if hz == 0 || pllHz%hz != 0 {
		return ErrUnsupportedClock
	}
	div := pllHz/hz - 1
	if div < 3 || div > 15 {
		return ErrUnsupportedClock
	}
	c.Bus.Write(RCC, RCCXtal16MHz|RCCOscSrcMain|RCCUseSysDiv|div<<RCCSysDivShift)
	c.Hz = hz
	glog.V(2).Infof("system clock %d Hz (sysdiv %d)", hz, div)
	return nil
}
