package expander

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

type regWrite struct {
	r, v byte
}

type fakeI2C struct {
	addr   uint16
	regs   [11]byte
	writes []regWrite
	err    error
}

func (b *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.addr = addr
	if len(w) == 2 {
		b.regs[w[0]] = w[1]
		b.writes = append(b.writes, regWrite{w[0], w[1]})
	}
	if len(r) > 0 {
		r[0] = b.regs[w[0]]
	}
	return nil
}

type fakeSPI struct {
	regs [11]byte
	cs   *bool
	ops  []byte
}

func (s *fakeSPI) Transfer(w, r []byte) error {
	if *s.cs {
		return errors.New("chip not selected")
	}
	s.ops = append(s.ops, w[0])
	if w[0]&1 != 0 {
		r[2] = s.regs[w[1]]
	} else {
		s.regs[w[1]] = w[2]
	}
	return nil
}

type fakeCS struct {
	high  bool
	edges int
}

func (c *fakeCS) Set(pin gpio.Pin, on bool) {
	if c.high != on {
		c.edges++
	}
	c.high = on
}

func TestI2CTransport(t *testing.T) {
	bus := &fakeI2C{}
	dev := NewDevice(NewI2C(bus, DefaultI2CAddress))
	require.NoError(t, dev.ConfigureInterruptOnChange(0x80, 0x80))
	require.Equal(t, []regWrite{
		{RegIODIR, 0x80},
		{RegDEFVAL, 0x80},
		{RegINTCON, 0x80},
		{RegGPINTEN, 0x80},
	}, bus.writes)
	require.Equal(t, DefaultI2CAddress, bus.addr)

	require.NoError(t, dev.SetOutputs(0x40))
	v, err := dev.ReadInputs()
	require.NoError(t, err)
	require.Equal(t, byte(0x40), v)

	bus.err = errors.New("nak")
	_, err = dev.ClearInterrupt()
	require.Error(t, err)
	require.True(t, errors.Is(err, bus.err))
}

func TestSPITransport(t *testing.T) {
	cs := &fakeCS{high: true}
	conn := &fakeSPI{cs: &cs.high}
	tr := NewSPI(conn, cs, gpio.P(gpio.PortD, 1), DefaultSPIAddr)
	require.Equal(t, byte(0x46), tr.Opcode(false))
	require.Equal(t, byte(0x47), tr.Opcode(true))

	dev := NewDevice(tr)
	require.NoError(t, dev.SetOutputs(0x40))
	conn.regs[RegINTCAP] = 0x7F
	v, err := dev.ClearInterrupt()
	require.NoError(t, err)
	require.Equal(t, byte(0x7F), v)
	require.Equal(t, []byte{0x46, 0x47}, conn.ops)
	require.Equal(t, byte(0x40), conn.regs[RegGPIO])
	require.True(t, cs.high)
	require.Equal(t, 4, cs.edges)
}

func TestIndicator(t *testing.T) {
	mem := reg.NewMemory()
	pins := gpio.New(mem, sysctl.NewClock(mem, nil))
	ic := nvic.New(mem)
	bus := &fakeI2C{}
	ind := NewIndicator(NewDevice(NewI2C(bus, DefaultI2CAddress)), pins)
	var slept []time.Duration
	ind.Sleep = func(d time.Duration) { slept = append(slept, d) }

	require.NoError(t, ind.SetupInterrupt(ic))
	irq, _ := nvic.VectorGPIOE.IRQ()
	require.Equal(t, uint32(1)<<irq, mem.Peek(nvic.EN0))
	require.Equal(t, uint32(1)<<irq, mem.Peek(nvic.DIS0))

	require.NoError(t, ind.Start())
	require.Equal(t, LEDIdle, bus.regs[RegGPIO])

	bus.writes = nil
	bus.regs[RegINTCAP] = 0x7F
	captured, err := ind.HandleInterrupt()
	require.NoError(t, err)
	require.Equal(t, byte(0x7F), captured)
	require.Equal(t, []regWrite{
		{RegGPIO, LEDOff},
		{RegGPIO, LEDFlash},
		{RegGPIO, LEDIdle},
	}, bus.writes)
	require.Equal(t, []time.Duration{DefaultFlashDelay, DefaultFlashDelay}, slept)
	require.Equal(t, uint32(0x02), mem.Peek(gpio.PortE.Base().Offset(0x41C)))

	bus.writes = nil
	require.NoError(t, ind.SetPattern(0xFF))
	require.Equal(t, []regWrite{{RegGPIO, 0x7F}}, bus.writes)
}
