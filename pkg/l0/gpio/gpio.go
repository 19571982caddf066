// Package gpio configures the TM4C123 GPIO ports A-F (APB aperture).
package gpio

import (
	"fmt"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

// Port is a GPIO port.
type Port int

// Ports.
const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
)

var portBases = [...]reg.Addr{
	0x40004000,
	0x40005000,
	0x40006000,
	0x40007000,
	0x40024000,
	0x40025000,
}

// Register offsets from the port base.
const (
	offData  = 0x3FC
	offDir   = 0x400
	offIS    = 0x404
	offIBE   = 0x408
	offIEV   = 0x40C
	offIM    = 0x410
	offICR   = 0x41C
	offAFSel = 0x420
	offPUR   = 0x510
	offDEN   = 0x51C
	offAMSel = 0x528
	offPCTL  = 0x52C
)

// Offsets of the interrupt registers, for emulation.
const (
	OffsetIM  uint32 = offIM
	OffsetRIS uint32 = 0x414
	OffsetMIS uint32 = 0x418
	OffsetICR uint32 = offICR
)

// Base returns the register base of the port.
func (p Port) Base() reg.Addr {
	return portBases[p]
}

// String implements fmt.Stringer.
func (p Port) String() string {
	return "PORT" + string(rune('A'+int(p)))
}

// Pin is one pin of a port.
type Pin struct {
	Port Port
	Num  uint8
}

// P is shorthand for Pin{port, num}.
func P(port Port, num uint8) Pin {
	return Pin{Port: port, Num: num}
}

func (p Pin) mask() uint32 {
	return 1 << p.Num
}

func (p Pin) addr(off uint32) reg.Addr {
	return p.Port.Base().Offset(off)
}

// String implements fmt.Stringer.
func (p Pin) String() string {
	return fmt.Sprintf("P%c%d", 'A'+rune(p.Port), p.Num)
}

// Function is a port-control (PCTL) function number.
type Function uint8

// Alternate functions used by the board.
const (
	FuncCAN0 Function = 8
	FuncCAN1 Function = 8
	FuncI2C  Function = 3
	FuncSSI  Function = 2
)

// Well-known pins.
var (
	CAN0Rx = P(PortB, 4)
	CAN0Tx = P(PortB, 5)
	CAN1Rx = P(PortA, 0)
	CAN1Tx = P(PortA, 1)
)

// PinMux routes pins to peripherals.
type PinMux interface {
	SelectAlternate(pin Pin, fn Function)
}

// Pins configures GPIO pins over a register bus.
type Pins struct {
	Bus   reg.Bus
	Clock sysctl.PeripheralClock
}

// New creates Pins.
func New(bus reg.Bus, clk sysctl.PeripheralClock) *Pins {
	return &Pins{Bus: bus, Clock: clk}
}

// EnablePort turns on the port clock.
func (g *Pins) EnablePort(port Port) {
	g.Clock.Enable(sysctl.GateGPIO(int(port)))
}

// SelectAlternate implements PinMux. The pin becomes a digital pin driven
// by the peripheral selected with fn. The port clock is enabled first.
func (g *Pins) SelectAlternate(pin Pin, fn Function) {
	g.EnablePort(pin.Port)
	reg.Clear(g.Bus, pin.addr(offAMSel), pin.mask())
	reg.Set(g.Bus, pin.addr(offAFSel), pin.mask())
	shift := uint32(pin.Num) * 4
	reg.Modify(g.Bus, pin.addr(offPCTL), 0xf<<shift, uint32(fn)<<shift)
	reg.Set(g.Bus, pin.addr(offDEN), pin.mask())
}

// DigitalOutput configures a push-pull digital output.
func (g *Pins) DigitalOutput(pin Pin) {
	reg.Clear(g.Bus, pin.addr(offAFSel), pin.mask())
	reg.Set(g.Bus, pin.addr(offDir), pin.mask())
	reg.Set(g.Bus, pin.addr(offDEN), pin.mask())
}

// DigitalInput configures a digital input.
func (g *Pins) DigitalInput(pin Pin) {
	reg.Clear(g.Bus, pin.addr(offAFSel), pin.mask())
	reg.Clear(g.Bus, pin.addr(offDir), pin.mask())
	reg.Set(g.Bus, pin.addr(offDEN), pin.mask())
}

// PullUp enables the internal pull-up.
func (g *Pins) PullUp(pin Pin) {
	reg.Set(g.Bus, pin.addr(offPUR), pin.mask())
}

// Set drives an output pin.
func (g *Pins) Set(pin Pin, on bool) {
	if on {
		reg.Set(g.Bus, pin.addr(offData), pin.mask())
	} else {
		reg.Clear(g.Bus, pin.addr(offData), pin.mask())
	}
}

// Mask returns the pin bit within the port registers.
func (p Pin) Mask() uint32 {
	return p.mask()
}

// Addr returns the address of the port register at off.
func (p Pin) Addr(off uint32) reg.Addr {
	return p.addr(off)
}

// Get reads a pin.
func (g *Pins) Get(pin Pin) bool {
	return reg.IsSet(g.Bus, pin.addr(offData), pin.mask())
}

// InterruptLowLevel makes the pin interrupt level-sensitive, active low.
func (g *Pins) InterruptLowLevel(pin Pin) {
	reg.Set(g.Bus, pin.addr(offIS), pin.mask())
	reg.Clear(g.Bus, pin.addr(offIBE), pin.mask())
	reg.Clear(g.Bus, pin.addr(offIEV), pin.mask())
}

// EnableInterrupt unmasks the pin interrupt.
func (g *Pins) EnableInterrupt(pin Pin) {
	reg.Set(g.Bus, pin.addr(offIM), pin.mask())
}

// DisableInterrupt masks the pin interrupt.
func (g *Pins) DisableInterrupt(pin Pin) {
	reg.Clear(g.Bus, pin.addr(offIM), pin.mask())
}

// ClearInterrupt acknowledges a pending pin interrupt. ICR is write-1-to-clear.
func (g *Pins) ClearInterrupt(pin Pin) {
	g.Bus.Write(pin.addr(offICR), pin.mask())
}
