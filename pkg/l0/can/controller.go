package can

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

// ControllerState is the operating mode observed from CTL.INIT.
type ControllerState int

// Controller states.
const (
	Configuring ControllerState = iota
	Running
)

// String implements fmt.Stringer.
func (s ControllerState) String() string {
	if s == Running {
		return "running"
	}
	return "configuring"
}

// Interrupts selects the controller interrupt sources.
type Interrupts uint32

// Interrupt sources, same bits as CTL.
const (
	InterruptModule = Interrupts(CTLIE)
	InterruptStatus = Interrupts(CTLSIE)
	InterruptError  = Interrupts(CTLEIE)
	InterruptAll    = InterruptModule | InterruptStatus | InterruptError
)

// DefaultBusyTimeout bounds the wait for IF1CRQ.BUSY.
const DefaultBusyTimeout = 10 * time.Millisecond

// Config is the controller configuration.
type Config struct {
	Timing BitTiming
	// Tolerance is the accepted bit rate deviation, DefaultTolerance if 0.
	Tolerance      float64
	AutoRetransmit bool
	Interrupts     Interrupts
	BusyTimeout    time.Duration
}

// DefaultConfig is 500 kbit/s with automatic retransmission and all
// interrupt sources enabled.
var DefaultConfig = Config{
	Timing:         DefaultBitTiming,
	Tolerance:      DefaultTolerance,
	AutoRetransmit: true,
	Interrupts:     InterruptAll,
	BusyTimeout:    DefaultBusyTimeout,
}

// Controller drives one CAN controller.
type Controller struct {
	Module Module
	Regs   Regs

	bus         reg.Bus
	timing      TimingFields
	busyTimeout time.Duration
	events      chan Event
	dropped     uint64
}

// New creates a Controller for module m on bus.
func New(bus reg.Bus, m Module) *Controller {
	return &Controller{
		Module:      m,
		Regs:        RegsAt(m.Base),
		bus:         bus,
		busyTimeout: DefaultBusyTimeout,
		events:      make(chan Event, DefaultEventBacklog),
	}
}

// Bus returns the register bus.
func (c *Controller) Bus() reg.Bus {
	return c.bus
}

// Init configures and starts the controller.
// Bit timing is computed first, an invalid timing returns before any
// register is touched.
func (c *Controller) Init(clk sysctl.PeripheralClock, pins gpio.PinMux, conf Config) error {
	tolerance := conf.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	fields, err := conf.Timing.Compute(tolerance)
	if err != nil {
		return err
	}
	if conf.BusyTimeout > 0 {
		c.busyTimeout = conf.BusyTimeout
	}

	clk.Enable(c.Module.Gate)
	pins.SelectAlternate(c.Module.Rx, c.Module.Func)
	pins.SelectAlternate(c.Module.Tx, c.Module.Func)

	r := c.Regs
	reg.Set(c.bus, r.CTL, CTLInit)
	reg.Set(c.bus, r.CTL, CTLCCE)

	set := uint32(conf.Interrupts) & uint32(InterruptAll)
	if !conf.AutoRetransmit {
		set |= CTLDAR
	}
	reg.Modify(c.bus, r.CTL, uint32(InterruptAll)|CTLDAR, set)

	c.bus.Write(r.BIT, fields.BitReg())
	c.bus.Write(r.BRPE, fields.BRPEReg())
	c.timing = fields

	reg.Clear(c.bus, r.CTL, CTLInit|CTLCCE)
	glog.V(2).Infof("can%d: running at %.0f bit/s (%s)", c.Module.Index, fields.BitRate(conf.Timing.ClockHz), fields)
	return nil
}

// State reads the controller mode from CTL.INIT.
func (c *Controller) State() ControllerState {
	if reg.IsSet(c.bus, c.Regs.CTL, CTLInit) {
		return Configuring
	}
	return Running
}

// Timing returns the fields programmed by Init.
func (c *Controller) Timing() TimingFields {
	return c.timing
}

// BusyTimeout returns the IF1 busy poll bound.
func (c *Controller) BusyTimeout() time.Duration {
	return c.busyTimeout
}
