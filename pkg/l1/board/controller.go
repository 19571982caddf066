// Package board is the L1 board controller. It owns the L0 drivers,
// executes commands received through registrars and publishes
// transmit completions, wake-ups and button presses as events.
package board

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/secoc"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/env"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

var (
	// ErrCANNotInitialized rejects transmits before the controller runs.
	ErrCANNotInitialized = errors.New("can controller not initialized")
	// ErrNoExpander indicates the board has no IO expander.
	ErrNoExpander = errors.New("no io expander")
	// ErrNoAuthenticator indicates an authenticated transmit without key.
	ErrNoAuthenticator = errors.New("can authentication not configured")
	// ErrHibernating rejects commands which need the board awake.
	ErrHibernating = errors.New("board is hibernating")
	// ErrUnaligned rejects register accesses off a word boundary.
	ErrUnaligned = errors.New("unaligned register address")
	// ErrNoDump indicates the register bus can't be snapshotted.
	ErrNoDump = errors.New("register dump not supported")
)

// Dumper writes a register file snapshot as Intel HEX.
type Dumper interface {
	DumpHex(w io.Writer) error
}

// InterruptRegistry installs interrupt service routines.
type InterruptRegistry interface {
	RegisterISR(v nvic.Vector, isr func())
}

// Peripherals are the drivers operated by the Controller.
type Peripherals struct {
	Bus   reg.Bus
	Clock *sysctl.Clock
	Pins  *gpio.Pins
	NVIC  *nvic.Controller
	CAN   *can.Controller
	Hib   *hib.Module
	// Indicator is nil without an expander.
	Indicator *expander.Indicator
	// Auth is nil when authentication is disabled.
	Auth *secoc.Authenticator
}

// ExpanderBuses are the serial buses the IO expander may sit on.
// The profile selects which one is used.
type ExpanderBuses struct {
	I2C expander.I2CBus
	SPI expander.SPIConn
}

// NewPeripherals creates the drivers described by profile on bus.
// The expander buses are given separately as they aren't register mapped.
func NewPeripherals(bus reg.Bus, profile *env.Profile, xb ExpanderBuses) (*Peripherals, error) {
	clk := sysctl.NewClock(bus, nil)
	p := &Peripherals{
		Bus:   bus,
		Clock: clk,
		Pins:  gpio.New(bus, clk),
		NVIC:  nvic.New(bus),
		CAN:   can.New(bus, can.CAN0),
		Hib:   hib.New(bus, clk),
	}
	if profile.Hib.WriteTimeout > 0 {
		p.Hib.WriteTimeout = profile.Hib.WriteTimeout
	}
	var xp expander.Transport
	switch profile.Expander.Bus {
	case env.ExpanderI2C:
		if xb.I2C == nil {
			return nil, fmt.Errorf("expander: %w on i2c", ErrNoExpander)
		}
		xp = expander.NewI2C(xb.I2C, profile.Expander.Address)
	case env.ExpanderSPI:
		if xb.SPI == nil {
			return nil, fmt.Errorf("expander: %w on spi", ErrNoExpander)
		}
		xp = expander.NewSPI(xb.SPI, p.Pins, expander.ChipSelectPin, byte(profile.Expander.Address))
	}
	if xp != nil {
		p.Indicator = expander.NewIndicator(expander.NewDevice(xp), p.Pins)
		if profile.Expander.FlashDelay > 0 {
			p.Indicator.FlashDelay = profile.Expander.FlashDelay
		}
	}
	key, err := profile.SecOCKey()
	if err != nil {
		return nil, err
	}
	if key != nil {
		if p.Auth, err = secoc.New(key); err != nil {
			return nil, err
		}
		if profile.SecOC.MACLen > 0 {
			p.Auth.MACLen = profile.SecOC.MACLen
		}
	}
	return p, nil
}

// Controller is the board controller.
type Controller struct {
	Profile   *env.Profile
	Registrar l1.Registrar
	P         *Peripherals

	txq      *can.TxQueue
	canConf  can.Config
	canReady bool
	sleeping bool
	lastDemo time.Time
	outbox   []fx.Message
	buttonCh chan byte
}

type canEventMsg struct {
	event can.Event
}

func (m *canEventMsg) NewMessage() fx.Message { return &canEventMsg{} }

type buttonMsg struct {
	captured byte
}

func (m *buttonMsg) NewMessage() fx.Message { return &buttonMsg{} }

// NewController creates a Controller.
func NewController(profile *env.Profile, p *Peripherals, registrar l1.Registrar) *Controller {
	return &Controller{
		Profile:   profile,
		Registrar: registrar,
		P:         p,
		txq:       can.NewTxQueue(p.CAN),
		buttonCh:  make(chan byte, 4),
	}
}

// Name implements Named.
func (c *Controller) Name() string {
	return "board"
}

// Start brings up the peripherals the way the firmware does after
// reset: system clock, CAN from the profile, the RTC and the expander.
// A board woken from hibernation reports the wake reasons at the next
// iteration.
func (c *Controller) Start(ctx context.Context, isrs InterruptRegistry) error {
	if err := c.P.Clock.InitSystemClock(c.Profile.ClockHz); err != nil {
		return fmt.Errorf("system clock: %w", err)
	}
	conf, err := c.Profile.CANConfig()
	if err != nil {
		return err
	}
	if err := c.initCAN(conf); err != nil {
		return err
	}
	if isrs != nil {
		isrs.RegisterISR(c.P.CAN.Module.Vector, c.P.CAN.HandleInterrupt)
	}
	if err := c.P.NVIC.Enable(c.P.CAN.Module.Vector); err != nil {
		return err
	}
	if c.P.Hib.Initialized() && c.P.Hib.WakeReasons() != hib.WakeNone {
		c.sleeping = true
	} else if err := c.P.Hib.Init(ctx); err != nil {
		return fmt.Errorf("hibernation: %w", err)
	}
	if ind := c.P.Indicator; ind != nil {
		if spi, ok := ind.Device.Transport().(*expander.SPI); ok {
			c.P.Pins.DigitalOutput(spi.Pin)
			c.P.Pins.Set(spi.Pin, true)
		}
		if isrs != nil {
			isrs.RegisterISR(nvic.VectorGPIOE, c.handleButton)
		}
		if err := ind.SetupInterrupt(c.P.NVIC); err != nil {
			return fmt.Errorf("expander interrupt: %w", err)
		}
		if err := ind.Start(); err != nil {
			return fmt.Errorf("expander: %w", err)
		}
	}
	glog.Infof("board %s started", c.Profile.Type)
	return nil
}

func (c *Controller) handleButton() {
	captured, err := c.P.Indicator.HandleInterrupt()
	if err != nil {
		glog.Errorf("button interrupt: %v", err)
		return
	}
	select {
	case c.buttonCh <- captured:
	default:
		glog.Warning("button press dropped")
	}
}

func (c *Controller) initCAN(conf can.Config) error {
	if err := c.P.CAN.Init(c.P.Clock, c.P.Pins, conf); err != nil {
		return err
	}
	c.canConf, c.canReady = conf, true
	return nil
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	// the Controller is registered as a Runnable by AddController
	loop.AddRunnable(c.txq)
	loop.AddController(fx.PrLvSense, fx.ControlFunc(c.sense))
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvActuate, fx.ControlFunc(c.demo))
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.publish))
}

// Run implements Runnable. It forwards interrupt events into the loop.
func (c *Controller) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	events := c.P.CAN.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			loopCtl.PostMessage(&canEventMsg{event: ev})
		case captured := <-c.buttonCh:
			loopCtl.PostMessage(&buttonMsg{captured: captured})
		}
		loopCtl.TriggerNext()
	}
}

func (c *Controller) sense(cc fx.ControlContext) error {
	if !c.sleeping {
		return nil
	}
	wake := c.P.Hib.WakeReasons()
	if wake == hib.WakeNone {
		return nil
	}
	c.sleeping = false
	glog.Infof("board woke up: %s", wake)
	c.emit(&msgs.WakeEvent{WakeEvent: pbWakeEvent(wake)})
	return c.P.Hib.ClearWake(cc.Context())
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *l1.CommandMsg:
			reply, ok := c.execute(cc.Context(), msg.Command.Msg())
			if !ok {
				return
			}
			mctx.MessageTaken()
			if err := msg.Command.Done(reply); err != nil {
				glog.Warningf("reply: %v", err)
			}
		case *canEventMsg:
			mctx.MessageTaken()
			ev := msg.event
			glog.V(2).Infof("can event: %s", ev)
			if ev.Kind == can.EventTxDone {
				c.emit(&msgs.CanTxDone{CanTxDone: pbTxDone(ev)})
			}
		case *buttonMsg:
			mctx.MessageTaken()
			c.emit(&msgs.ButtonPressed{ButtonPressed: pbButton(msg.captured)})
		}
	}))
	return nil
}

// execute runs a command, ok is false for commands of other controllers.
func (c *Controller) execute(ctx context.Context, m fx.Message) (fx.Message, bool) {
	var reply fx.Message
	var err error
	switch cmd := m.(type) {
	case *msgs.CanInit:
		reply, err = c.canInit(cmd)
	case *msgs.CanTimingQuery:
		reply = c.canTiming()
	case *msgs.CanTransmit:
		err = c.canTransmit(ctx, cmd)
	case *msgs.HibInit:
		err = c.P.Hib.Init(ctx)
	case *msgs.HibSleep:
		err = c.hibSleep(ctx, cmd)
	case *msgs.HibStatusQuery:
		reply = c.hibStatus()
	case *msgs.ExpanderLED:
		err = c.setLED(cmd)
	case *msgs.RegRead:
		reply, err = c.regRead(cmd)
	case *msgs.RegWrite:
		err = c.regWrite(cmd)
	case *msgs.RegDump:
		reply, err = c.regDump()
	default:
		return nil, false
	}
	if err != nil {
		glog.Warningf("command %T: %v", m, err)
		return msgs.NewCommandErr(err), true
	}
	if reply == nil {
		reply = msgs.NewCommandOK()
	}
	return reply, true
}

func (c *Controller) canInit(cmd *msgs.CanInit) (fx.Message, error) {
	if c.sleeping {
		return nil, ErrHibernating
	}
	conf, err := c.Profile.CANConfig()
	if err != nil {
		return nil, err
	}
	t := conf.Timing
	if cmd.BitRate != 0 {
		t.BitRate = cmd.BitRate
	}
	if cmd.Sjw != 0 {
		t.SJW = uint8(cmd.Sjw)
	}
	if cmd.SamplePoint > 0 {
		if t, _, err = can.SolveTiming(t.ClockHz, t.BitRate, cmd.SamplePoint, t.SJW); err != nil {
			return nil, err
		}
	}
	conf.Timing = t
	conf.AutoRetransmit = cmd.AutoRetransmit
	if cmd.Interrupts != 0 {
		conf.Interrupts = can.Interrupts(cmd.Interrupts) & can.InterruptAll
	}
	if err := c.initCAN(conf); err != nil {
		return nil, err
	}
	return c.canTiming(), nil
}

func (c *Controller) canTiming() fx.Message {
	if !c.canReady {
		return &msgs.CanTiming{}
	}
	return &msgs.CanTiming{CanTiming: pbTiming(c.canConf.Timing, c.P.CAN.Timing(), c.P.CAN.State() == can.Running)}
}

// Transmit sends a frame from slot, authenticated when auth is set, and
// emits CanFrameSent with the payload put on the bus.
func (c *Controller) Transmit(ctx context.Context, slot uint8, id uint32, extended bool, data []byte, auth bool) error {
	if !c.canReady {
		return ErrCANNotInitialized
	}
	if c.sleeping {
		return ErrHibernating
	}
	if auth {
		if c.P.Auth == nil {
			return ErrNoAuthenticator
		}
		signed, err := c.P.Auth.Sign(id, data)
		if err != nil {
			return err
		}
		data = signed
	}
	arb := can.StandardID(uint16(id))
	if extended {
		arb = can.ExtendedID(id)
	}
	f, err := can.NewFrame(arb, data)
	if err != nil {
		return err
	}
	if err := c.txq.Submit(ctx, slot, &f); err != nil {
		return err
	}
	c.emit(&msgs.CanFrameSent{CanFrameSent: pbFrameSent(&f)})
	return nil
}

func (c *Controller) canTransmit(ctx context.Context, cmd *msgs.CanTransmit) error {
	if cmd.Slot < can.MinSlot || cmd.Slot > can.MaxSlot {
		return can.ErrInvalidSlot
	}
	if !cmd.Extended && cmd.Id > 0x7FF {
		return fmt.Errorf("standard id 0x%x out of range", cmd.Id)
	}
	return c.Transmit(ctx, uint8(cmd.Slot), cmd.Id, cmd.Extended, cmd.Data, cmd.Authenticate)
}

func (c *Controller) hibSleep(ctx context.Context, cmd *msgs.HibSleep) error {
	seconds := cmd.Seconds
	if seconds == 0 {
		seconds = c.Profile.Hib.SleepSeconds
	}
	wake, err := c.Profile.WakeEvents()
	if err != nil {
		return err
	}
	if cmd.Wake != "" {
		if wake, err = hib.ParseWakeEvent(cmd.Wake); err != nil {
			return err
		}
	}
	if err := c.P.Hib.Hibernate(ctx, seconds, wake); err != nil {
		return err
	}
	c.sleeping = true
	return nil
}

func (c *Controller) hibStatus() fx.Message {
	h := c.P.Hib
	return &msgs.HibStatus{HibStatus: pbHibStatus(h.Initialized(), h.WakeReasons(), h.Counter())}
}

func (c *Controller) setLED(cmd *msgs.ExpanderLED) error {
	if c.P.Indicator == nil {
		return ErrNoExpander
	}
	return c.P.Indicator.SetPattern(byte(cmd.Pattern))
}

func (c *Controller) regRead(cmd *msgs.RegRead) (fx.Message, error) {
	if cmd.Addr%4 != 0 {
		return nil, ErrUnaligned
	}
	addr := reg.Addr(cmd.Addr)
	return &msgs.RegValue{RegValue: pbRegValue(addr, c.P.Bus.Read(addr))}, nil
}

func (c *Controller) regWrite(cmd *msgs.RegWrite) error {
	if cmd.Addr%4 != 0 {
		return ErrUnaligned
	}
	c.P.Bus.Write(reg.Addr(cmd.Addr), cmd.Value)
	return nil
}

func (c *Controller) regDump() (fx.Message, error) {
	dumper, ok := c.P.Bus.(Dumper)
	if !ok {
		return nil, ErrNoDump
	}
	var buf bytes.Buffer
	if err := dumper.DumpHex(&buf); err != nil {
		return nil, err
	}
	return &msgs.RegSnapshot{RegSnapshot: pb.RegSnapshot{Hex: buf.String()}}, nil
}

func (c *Controller) demo(cc fx.ControlContext) error {
	d := c.Profile.CAN.Demo
	if d.Period <= 0 || !c.canReady || c.sleeping {
		return nil
	}
	now := cc.Time()
	if !c.lastDemo.IsZero() && now.Sub(c.lastDemo) < d.Period {
		return nil
	}
	c.lastDemo = now
	return c.Transmit(cc.Context(), d.Slot, d.ID, d.Extended, d.Data, false)
}

func (c *Controller) emit(msg fx.Message) {
	c.outbox = append(c.outbox, msg)
}

func (c *Controller) publish(cc fx.ControlContext) error {
	outbox := c.outbox
	c.outbox = nil
	if c.Registrar == nil {
		return nil
	}
	var errs fx.AggregatedError
	for _, msg := range outbox {
		errs.Add(c.Registrar.SendEvent(cc.Context(), msg))
	}
	return errs.Aggregate()
}
