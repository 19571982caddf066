// Package expander drives MCP23008 (I2C) and MCP23S08 (SPI) IO expanders.
package expander

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/gpio"
)

// DefaultI2CAddress is the MCP23008 address with A2..A0 tied low.
const DefaultI2CAddress uint16 = 0x20

// SPI opcodes, with hardware address bits A1 A0 at bits 2:1.
const (
	spiOpcodeBase  byte = 0x40
	spiOpcodeRead  byte = 0x01
	DefaultSPIAddr byte = 0x03
)

// ChipSelectPin is the SSI0 frame signal, driven as the MCP23S08 chip select.
var ChipSelectPin = gpio.P(gpio.PortA, 3)

// ErrShortRead indicates the bus returned fewer bytes than requested.
var ErrShortRead = errors.New("short read")

// Transport reads and writes single expander registers.
type Transport interface {
	ReadReg(r byte) (byte, error)
	WriteReg(r, val byte) error
}

// I2CBus performs an I2C transaction: write w, then read len(r) bytes.
type I2CBus interface {
	Tx(addr uint16, w, r []byte) error
}

// SPIConn performs a full-duplex SPI transfer.
type SPIConn interface {
	Transfer(w, r []byte) error
}

// PinSetter drives a GPIO output, used for chip select.
type PinSetter interface {
	Set(pin gpio.Pin, on bool)
}

// I2C is an MCP23008 Transport.
type I2C struct {
	Bus  I2CBus
	Addr uint16
}

// NewI2C creates an I2C transport.
func NewI2C(bus I2CBus, addr uint16) *I2C {
	return &I2C{Bus: bus, Addr: addr}
}

// ReadReg implements Transport.
func (t *I2C) ReadReg(r byte) (byte, error) {
	var buf [1]byte
	if err := t.Bus.Tx(t.Addr, []byte{r}, buf[:]); err != nil {
		return 0, fmt.Errorf("i2c 0x%02x read 0x%02x: %w", t.Addr, r, err)
	}
	glog.V(3).Infof("i2c 0x%02x: R 0x%02x = 0x%02x", t.Addr, r, buf[0])
	return buf[0], nil
}

// WriteReg implements Transport.
func (t *I2C) WriteReg(r, val byte) error {
	glog.V(3).Infof("i2c 0x%02x: W 0x%02x = 0x%02x", t.Addr, r, val)
	if err := t.Bus.Tx(t.Addr, []byte{r, val}, nil); err != nil {
		return fmt.Errorf("i2c 0x%02x write 0x%02x: %w", t.Addr, r, err)
	}
	return nil
}

// SPI is an MCP23S08 Transport. Chip select is active low and framed around
// each three byte transfer.
type SPI struct {
	Conn SPIConn
	CS   PinSetter
	Pin  gpio.Pin
	// HWAddr is the A1 A0 strap value.
	HWAddr byte
}

// NewSPI creates an SPI transport.
func NewSPI(conn SPIConn, cs PinSetter, pin gpio.Pin, hwAddr byte) *SPI {
	return &SPI{Conn: conn, CS: cs, Pin: pin, HWAddr: hwAddr}
}

// Opcode returns the control byte, 0x46 for writes and 0x47 for reads with
// both address straps high.
func (t *SPI) Opcode(read bool) byte {
	op := spiOpcodeBase | (t.HWAddr&3)<<1
	if read {
		op |= spiOpcodeRead
	}
	return op
}

func (t *SPI) transfer(w []byte) ([]byte, error) {
	r := make([]byte, len(w))
	t.CS.Set(t.Pin, true)
	t.CS.Set(t.Pin, false)
	defer t.CS.Set(t.Pin, true)
	if err := t.Conn.Transfer(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ReadReg implements Transport.
func (t *SPI) ReadReg(r byte) (byte, error) {
	in, err := t.transfer([]byte{t.Opcode(true), r, 0})
	if err != nil {
		return 0, fmt.Errorf("spi read 0x%02x: %w", r, err)
	}
	if len(in) < 3 {
		return 0, ErrShortRead
	}
	glog.V(3).Infof("spi: R 0x%02x = 0x%02x", r, in[2])
	return in[2], nil
}

// WriteReg implements Transport.
func (t *SPI) WriteReg(r, val byte) error {
	glog.V(3).Infof("spi: W 0x%02x = 0x%02x", r, val)
	if _, err := t.transfer([]byte{t.Opcode(false), r, val}); err != nil {
		return fmt.Errorf("spi write 0x%02x: %w", r, err)
	}
	return nil
}
