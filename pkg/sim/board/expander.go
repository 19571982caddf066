package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/sim"
)

// ErrNoAck is returned by I2C transactions to a different address.
var ErrNoAck = errors.New("i2c: no ack")

// Expander emulates an MCP23008 on I2C and an MCP23S08 on SPI. Inputs
// are the pins in IODIR; a press pulls the button input low.
// INT is active low and released by reading INTCAP or GPIO.
type Expander struct {
	Address uint16
	SPIAddr byte
	// INT is driven when the interrupt output asserts.
	INT sim.InterruptLine

	lock      sync.Mutex
	regs      [expander.RegOLAT + 1]byte
	inputs    byte
	asserted  bool
	patterns  []byte
	intEvents int
}

// NewExpander creates an expander with all inputs pulled high.
func NewExpander() *Expander {
	e := &Expander{
		Address: expander.DefaultI2CAddress,
		SPIAddr: expander.DefaultSPIAddr,
		inputs:  0xFF,
	}
	e.regs[expander.RegIODIR] = 0xFF
	return e
}

// Name implements Named.
func (e *Expander) Name() string {
	return "expander"
}

// Tx implements expander.I2CBus.
func (e *Expander) Tx(addr uint16, w, r []byte) error {
	if addr != e.Address {
		return ErrNoAck
	}
	if len(w) == 0 {
		return fmt.Errorf("i2c: empty write")
	}
	switch {
	case len(w) >= 2:
		e.write(w[0], w[1])
	case len(r) > 0:
		r[0] = e.read(w[0])
	}
	return nil
}

// Transfer implements expander.SPIConn.
func (e *Expander) Transfer(w, r []byte) error {
	if len(w) < 3 || len(r) < len(w) {
		return fmt.Errorf("spi: short transfer")
	}
	opcode := w[0]
	if opcode&^0x07 != 0x40 || (opcode>>1)&0x03 != e.SPIAddr {
		// not addressed, the device stays silent
		return nil
	}
	if opcode&0x01 != 0 {
		r[2] = e.read(w[1])
	} else {
		e.write(w[1], w[2])
	}
	return nil
}

// Press pulls the button input low.
func (e *Expander) Press() {
	e.setInputs(e.currentInputs() &^ expander.ButtonMask)
}

// Release lets the button input float high again.
func (e *Expander) Release() {
	e.setInputs(e.currentInputs() | expander.ButtonMask)
}

// Click presses and releases the button.
func (e *Expander) Click() {
	e.Press()
	e.Release()
}

// Asserted reports whether INT is driven.
func (e *Expander) Asserted() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.asserted
}

// Output returns the output latch.
func (e *Expander) Output() byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.regs[expander.RegOLAT]
}

// Patterns returns the latch values written so far.
func (e *Expander) Patterns() []byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	return append([]byte(nil), e.patterns...)
}

// Interrupts counts the times INT was asserted.
func (e *Expander) Interrupts() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.intEvents
}

// Reg returns a raw register value.
func (e *Expander) Reg(r byte) byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	if int(r) >= len(e.regs) {
		return 0
	}
	return e.regs[r]
}

func (e *Expander) currentInputs() byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.inputs
}

func (e *Expander) port() byte {
	dir := e.regs[expander.RegIODIR]
	return (e.inputs^e.regs[expander.RegIPOL])&dir | e.regs[expander.RegOLAT]&^dir
}

func (e *Expander) setInputs(v byte) {
	e.lock.Lock()
	prev := e.inputs
	e.inputs = v
	raise := e.evaluate(prev)
	e.lock.Unlock()
	if raise && e.INT != nil {
		e.INT.Raise()
	}
}

// evaluate latches INTF and INTCAP on a qualifying change, with the
// lock held.
func (e *Expander) evaluate(prev byte) bool {
	if e.asserted {
		return false
	}
	enabled := e.regs[expander.RegGPINTEN] & e.regs[expander.RegIODIR]
	cmpDef := e.regs[expander.RegINTCON]
	var flags byte
	for bit := byte(1); bit != 0; bit <<= 1 {
		if enabled&bit == 0 {
			continue
		}
		cur := e.inputs & bit
		if cmpDef&bit != 0 {
			if cur != e.regs[expander.RegDEFVAL]&bit {
				flags |= bit
			}
		} else if cur != prev&bit {
			flags |= bit
		}
	}
	if flags == 0 {
		return false
	}
	e.regs[expander.RegINTF] = flags
	e.regs[expander.RegINTCAP] = e.port()
	e.asserted = true
	e.intEvents++
	glog.V(2).Infof("sim expander: INT asserted, intf=0x%02x intcap=0x%02x", flags, e.regs[expander.RegINTCAP])
	return true
}

func (e *Expander) read(r byte) byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	if int(r) >= len(e.regs) {
		return 0
	}
	switch r {
	case expander.RegGPIO:
		e.release()
		return e.port()
	case expander.RegINTCAP:
		v := e.regs[r]
		e.release()
		return v
	}
	return e.regs[r]
}

func (e *Expander) release() {
	e.asserted = false
	e.regs[expander.RegINTF] = 0
}

func (e *Expander) write(r, v byte) {
	e.lock.Lock()
	defer e.lock.Unlock()
	switch r {
	case expander.RegGPIO, expander.RegOLAT:
		e.regs[expander.RegOLAT] = v
		e.patterns = append(e.patterns, v)
	case expander.RegINTF, expander.RegINTCAP:
		// read only
	default:
		if int(r) < len(e.regs) {
			e.regs[r] = v
		}
	}
}
