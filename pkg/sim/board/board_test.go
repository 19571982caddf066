package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
	"github.com/robotalks/tiva.go/pkg/sim"
)

type fixture struct {
	board *Board
	clk   *sysctl.Clock
	pins  *gpio.Pins
	ic    *nvic.Controller
}

func newFixture() *fixture {
	b := New()
	clk := sysctl.NewClock(b.Mem, nil)
	return &fixture{
		board: b,
		clk:   clk,
		pins:  gpio.New(b.Mem, clk),
		ic:    nvic.New(b.Mem),
	}
}

type frameLog struct {
	lock   sync.Mutex
	frames []sim.BusFrame
}

func (l *frameLog) FrameTransmitted(f sim.BusFrame) {
	l.lock.Lock()
	l.frames = append(l.frames, f)
	l.lock.Unlock()
}

func (l *frameLog) all() []sim.BusFrame {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append([]sim.BusFrame(nil), l.frames...)
}

func TestCANTransmitAndInterrupt(t *testing.T) {
	env := newFixture()
	b := env.board
	ctl := can.New(b.Mem, can.CAN0)
	require.NoError(t, ctl.Init(env.clk, env.pins, can.DefaultConfig))
	require.Equal(t, can.Running, ctl.State())
	require.Equal(t, ctl.Timing().BitReg(), b.Mem.Peek(b.CAN.Regs.BIT))

	log := &frameLog{}
	b.CAN.SubscribeFrames(log)
	require.NoError(t, env.ic.Enable(can.CAN0.Vector))
	b.RegisterISR(can.CAN0.Vector, ctl.HandleInterrupt)

	f, err := can.NewFrame(can.StandardID(0x123), []byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, ctl.Transmit(context.Background(), 1, &f))
	require.Equal(t, can.StatusTxPending, f.Status)

	frames := log.all()
	require.Len(t, frames, 1)
	require.Equal(t, uint32(0x123), frames[0].ID)
	require.False(t, frames[0].Extended)
	require.Equal(t, []byte{1, 2, 3}, frames[0].Data)
	require.Equal(t, uint8(1), frames[0].Slot)
	require.Equal(t, []uint8{1}, b.CAN.Pending())

	require.Equal(t, []nvic.Vector{can.CAN0.Vector}, b.Pending())
	require.Equal(t, 1, b.Dispatch())
	require.Equal(t, can.Event{Kind: can.EventStatus, Status: can.STSTxOK}, <-ctl.Events())
	ev := <-ctl.Events()
	require.Equal(t, can.EventTxDone, ev.Kind)
	require.Equal(t, uint8(1), ev.Slot)
	require.Empty(t, b.CAN.Pending())
	require.Equal(t, uint64(1), b.CAN.Sent())
}

func TestCANExtendedFrame(t *testing.T) {
	env := newFixture()
	b := env.board
	ctl := can.New(b.Mem, can.CAN0)
	require.NoError(t, ctl.Init(env.clk, env.pins, can.DefaultConfig))
	log := &frameLog{}
	b.CAN.SubscribeFrames(log)

	f, err := can.NewFrame(can.ExtendedID(0x1ABCDEF), []byte{0xFF})
	require.NoError(t, err)
	require.NoError(t, ctl.Transmit(context.Background(), 32, &f))
	frames := log.all()
	require.Len(t, frames, 1)
	require.True(t, frames[0].Extended)
	require.Equal(t, uint32(0x1ABCDEF), frames[0].ID)
	// the vector is disabled, nothing pends
	require.Empty(t, b.Pending())
}

func TestCANTimingRequiresConfigChange(t *testing.T) {
	b := New()
	r := b.CAN.Regs
	b.Mem.Write(r.CTL, 0)
	b.Mem.Write(r.BIT, 0x1234)
	require.Equal(t, uint32(0), b.Mem.Peek(r.BIT))
	b.Mem.Write(r.CTL, can.CTLInit|can.CTLCCE)
	b.Mem.Write(r.BIT, 0x1234)
	require.Equal(t, uint32(0x1234), b.Mem.Peek(r.BIT))
}

func TestCANBusyTimeout(t *testing.T) {
	env := newFixture()
	b := env.board
	ctl := can.New(b.Mem, can.CAN0)
	conf := can.DefaultConfig
	conf.BusyTimeout = 2 * time.Millisecond
	require.NoError(t, ctl.Init(env.clk, env.pins, conf))

	b.CAN.StuckBusy = true
	f, err := can.NewFrame(can.StandardID(1), nil)
	require.NoError(t, err)
	err = ctl.Transmit(context.Background(), 1, &f)
	require.Equal(t, can.ErrInterfaceBusyTimeout, err)
	require.Equal(t, can.Running, ctl.State())
	require.Equal(t, uint64(0), b.CAN.Sent())

	b.CAN.StuckBusy = false
	b.CAN.BusyReads = 2
	require.NoError(t, ctl.Transmit(context.Background(), 1, &f))
	require.Equal(t, uint64(1), b.CAN.Sent())
}

func TestHibernateRTCWake(t *testing.T) {
	env := newFixture()
	b := env.board
	var woke []hib.WakeEvent
	b.Hib.OnWake = func(w hib.WakeEvent) { woke = append(woke, w) }
	h := hib.New(b.Mem, env.clk)
	ctx := context.Background()
	require.NoError(t, h.Init(ctx))
	require.True(t, h.Initialized())

	require.NoError(t, h.Hibernate(ctx, 5, hib.WakeRTC))
	require.True(t, b.Hib.Asleep())
	require.Equal(t, 1, b.Hib.Hibernations())

	b.Advance(4 * time.Second)
	require.True(t, b.Hib.Asleep())
	require.Equal(t, uint32(4), h.Counter())
	b.Advance(time.Second)
	require.False(t, b.Hib.Asleep())
	require.Equal(t, hib.WakeRTC, h.WakeReasons())
	require.Equal(t, []hib.WakeEvent{hib.WakeRTC}, woke)

	require.NoError(t, h.ClearWake(ctx))
	require.Equal(t, hib.WakeNone, h.WakeReasons())
}

func TestHibernatePinWake(t *testing.T) {
	env := newFixture()
	b := env.board
	h := hib.New(b.Mem, env.clk)
	ctx := context.Background()
	require.NoError(t, h.Init(ctx))

	require.False(t, b.Hib.PressWakePin())
	require.NoError(t, h.Hibernate(ctx, 0, hib.WakePin))
	require.False(t, b.Hib.LowBattery())
	b.Advance(10 * time.Second)
	require.True(t, b.Hib.Asleep())
	require.True(t, b.Hib.PressWakePin())
	require.False(t, b.Hib.Asleep())
	require.Equal(t, hib.WakePin, h.WakeReasons())
}

func TestHibernateWriteTimeout(t *testing.T) {
	env := newFixture()
	b := env.board
	h := hib.New(b.Mem, env.clk)
	h.WriteTimeout = 2 * time.Millisecond
	b.Hib.WriteBusy = true
	err := h.Init(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, hib.ErrWriteTimeout))
	require.False(t, b.Hib.Asleep())
}

func TestExpanderButtonInterrupt(t *testing.T) {
	env := newFixture()
	b := env.board
	ind := expander.NewIndicator(expander.NewDevice(expander.NewI2C(b.Expander, expander.DefaultI2CAddress)), env.pins)
	ind.Sleep = func(time.Duration) {}
	require.NoError(t, ind.SetupInterrupt(env.ic))
	require.NoError(t, ind.Start())
	require.Equal(t, expander.LEDIdle, b.Expander.Output())

	var captured []byte
	b.RegisterISR(nvic.VectorGPIOE, func() {
		v, err := ind.HandleInterrupt()
		require.NoError(t, err)
		captured = append(captured, v)
	})

	b.Expander.Click()
	require.True(t, b.Expander.Asserted())
	require.Equal(t, []nvic.Vector{nvic.VectorGPIOE}, b.Pending())
	require.Equal(t, 1, b.Dispatch())
	require.Equal(t, []byte{expander.LEDIdle}, captured)
	require.False(t, b.Expander.Asserted())
	require.Equal(t, []byte{expander.LEDIdle, expander.LEDOff, expander.LEDFlash, expander.LEDIdle}, b.Expander.Patterns())
	ris := expander.IntPin.Addr(gpio.OffsetRIS)
	require.Equal(t, uint32(0), b.Mem.Peek(ris)&expander.IntPin.Mask())
	require.Equal(t, 1, b.Expander.Interrupts())
}

func TestExpanderTransports(t *testing.T) {
	env := newFixture()
	b := env.board
	dev := expander.NewDevice(expander.NewI2C(b.Expander, expander.DefaultI2CAddress+1))
	require.True(t, errors.Is(dev.SetOutputs(1), ErrNoAck))

	spi := expander.NewSPI(b.Expander, env.pins, gpio.P(gpio.PortD, 1), expander.DefaultSPIAddr)
	dev = expander.NewDevice(spi)
	require.NoError(t, dev.SetOutputs(0x12))
	require.Equal(t, byte(0x12), b.Expander.Output())
	v, err := dev.ReadInputs()
	require.NoError(t, err)
	// all pins are inputs after reset, pulled high
	require.Equal(t, byte(0xFF), v)
}

func TestNVICEnableDisable(t *testing.T) {
	env := newFixture()
	b := env.board
	require.False(t, b.Enabled(nvic.VectorHIB))
	require.NoError(t, env.ic.Enable(nvic.VectorHIB))
	require.NoError(t, env.ic.Enable(nvic.VectorCAN0))
	require.True(t, b.Enabled(nvic.VectorHIB))
	require.True(t, b.Enabled(nvic.VectorCAN0))
	require.Equal(t, b.Mem.Read(nvic.EN0+4), b.Mem.Read(nvic.DIS0+4))

	require.NoError(t, env.ic.Disable(nvic.VectorHIB))
	require.False(t, b.Enabled(nvic.VectorHIB))
	require.True(t, b.Enabled(nvic.VectorCAN0))
	b.Raise(nvic.VectorHIB)
	require.Empty(t, b.Pending())

	b.Raise(nvic.VectorCAN0)
	b.Raise(nvic.VectorCAN0)
	require.Equal(t, []nvic.Vector{nvic.VectorCAN0}, b.Pending())
}

func TestBoardRunDispatches(t *testing.T) {
	env := newFixture()
	b := env.board
	require.NoError(t, env.ic.Enable(nvic.VectorHIB))
	served := make(chan struct{}, 1)
	b.RegisterISR(nvic.VectorHIB, func() { served <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- b.Run(ctx) }()
	b.Raise(nvic.VectorHIB)
	select {
	case <-served:
	case <-time.After(5 * time.Second):
		t.Fatal("interrupt not dispatched")
	}
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestBoardLoopAdvancesClock(t *testing.T) {
	env := newFixture()
	b := env.board
	h := hib.New(b.Mem, env.clk)
	require.NoError(t, h.Init(context.Background()))

	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	l := fx.NewLoop()
	l.Clock = fx.TimeFunc(func() time.Time { return now })
	l.AddController(fx.PrLvSense, b)
	l.Step(context.Background())
	require.Equal(t, uint32(0), h.Counter())
	now = now.Add(1500 * time.Millisecond)
	l.Step(context.Background())
	require.Equal(t, uint32(1), h.Counter())
	now = now.Add(600 * time.Millisecond)
	l.Step(context.Background())
	require.Equal(t, uint32(2), h.Counter())
}
