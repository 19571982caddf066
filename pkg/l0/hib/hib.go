// Package hib drives the hibernation module and its real-time clock.
package hib

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

// Registers.
const (
	Base  reg.Addr = 0x400FC000
	RTCC           = Base
	RTCM0          = Base + 0x04
	RTCLD          = Base + 0x0C
	CTL            = Base + 0x10
	IM             = Base + 0x14
	RIS            = Base + 0x18
	MIS            = Base + 0x1C
	IC             = Base + 0x20
	RTCSS          = Base + 0x28
)

// CTL bits.
const (
	CTLRTCEN   uint32 = 0x00000001
	CTLHIBREQ  uint32 = 0x00000002
	CTLRTCWEN  uint32 = 0x00000008
	CTLPINWEN  uint32 = 0x00000010
	CTLCLK32EN uint32 = 0x00000040
	CTLVDD3ON  uint32 = 0x00000100
	CTLBATWKEN uint32 = 0x00000200
	CTLWRC     uint32 = 0x80000000
)

// IM, RIS, MIS and IC bits.
const (
	IntRTCALT0 uint32 = 0x01
	IntLOWBAT  uint32 = 0x04
	IntEXTW    uint32 = 0x08
	IntWC      uint32 = 0x10
)

// DefaultWriteTimeout bounds the wait for CTL.WRC.
const DefaultWriteTimeout = 10 * time.Millisecond

// ErrWriteTimeout indicates the module never acknowledged a register write.
var ErrWriteTimeout = errors.New("hibernation write timeout")

// WriteTimeoutError details an ErrWriteTimeout.
type WriteTimeoutError struct {
	Register string
}

// Error implements error.
func (e *WriteTimeoutError) Error() string {
	return fmt.Sprintf("%v before writing %s", ErrWriteTimeout, e.Register)
}

// Unwrap makes errors.Is match ErrWriteTimeout.
func (e *WriteTimeoutError) Unwrap() error {
	return ErrWriteTimeout
}

// WakeEvent is a set of wake sources.
type WakeEvent uint8

// Wake sources.
const (
	WakeRTC WakeEvent = 1 << iota
	WakePin
	WakeLowBattery

	WakeNone WakeEvent = 0
)

type wakeMapping struct {
	event  WakeEvent
	name   string
	enable uint32
	status uint32
}

// wakeMap translates between wake sources and their CTL enable and RIS
// status bits, the two registers don't share a layout.
var wakeMap = []wakeMapping{
	{WakeRTC, "rtc", CTLRTCWEN, IntRTCALT0},
	{WakePin, "pin", CTLPINWEN, IntEXTW},
	{WakeLowBattery, "lowbat", CTLBATWKEN, IntLOWBAT},
}

// Has reports whether all of events are in the set.
func (w WakeEvent) Has(events WakeEvent) bool {
	return w&events == events
}

// String implements fmt.Stringer.
func (w WakeEvent) String() string {
	var names []string
	for _, m := range wakeMap {
		if w.Has(m.event) {
			names = append(names, m.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseWakeEvent parses the String form.
func ParseWakeEvent(s string) (WakeEvent, error) {
	var w WakeEvent
	for _, name := range strings.Split(s, "|") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, m := range wakeMap {
			if m.name == name {
				w |= m.event
				found = true
				break
			}
		}
		if !found {
			return WakeNone, fmt.Errorf("unknown wake event %q", name)
		}
	}
	return w, nil
}

func (w WakeEvent) enableBits() (bits uint32) {
	for _, m := range wakeMap {
		if w.Has(m.event) {
			bits |= m.enable
		}
	}
	return
}

func wakeFromStatus(ris uint32) (w WakeEvent) {
	for _, m := range wakeMap {
		if ris&m.status != 0 {
			w |= m.event
		}
	}
	return
}

func allStatusBits() (bits uint32) {
	for _, m := range wakeMap {
		bits |= m.status
	}
	return
}

// Module drives the hibernation module.
// Every write is preceded by a bounded wait for CTL.WRC.
type Module struct {
	WriteTimeout time.Duration

	bus reg.Bus
	clk sysctl.PeripheralClock
}

// New creates a Module.
func New(bus reg.Bus, clk sysctl.PeripheralClock) *Module {
	return &Module{WriteTimeout: DefaultWriteTimeout, bus: bus, clk: clk}
}

func (m *Module) waitWrite(ctx context.Context, register string) error {
	err := reg.WaitFor(ctx, m.bus, CTL, CTLWRC, CTLWRC, m.WriteTimeout)
	if errors.Is(err, reg.ErrTimeout) {
		return &WriteTimeoutError{Register: register}
	}
	return err
}

type write struct {
	name string
	fn   func()
}

func (m *Module) sequence(ctx context.Context, writes ...write) error {
	for _, w := range writes {
		if err := m.waitWrite(ctx, w.name); err != nil {
			return err
		}
		w.fn()
	}
	return nil
}

// Initialized reports whether the 32 kHz clock is running, which survives
// hibernation.
func (m *Module) Initialized() bool {
	return reg.IsSet(m.bus, CTL, CTLCLK32EN)
}

// Init enables the module clock, the write-complete interrupt, the 32 kHz
// oscillator and the RTC.
func (m *Module) Init(ctx context.Context) error {
	m.clk.Enable(sysctl.GateHIB)
	// WRC is only meaningful after the oscillator runs, IM is written blind
	reg.Set(m.bus, IM, IntWC)
	err := m.sequence(ctx,
		write{"CTL.CLK32EN", func() { reg.Set(m.bus, CTL, CTLCLK32EN) }},
		write{"CTL.RTCEN", func() { reg.Set(m.bus, CTL, CTLRTCEN|CTLVDD3ON) }},
	)
	if err == nil {
		glog.V(2).Info("hib: rtc enabled")
	}
	return err
}

// Hibernate arms the wake sources and requests hibernation. With WakeRTC the
// device wakes after seconds.
func (m *Module) Hibernate(ctx context.Context, seconds uint32, wake WakeEvent) error {
	if wake == WakeNone {
		return errors.New("hibernate without wake source")
	}
	err := m.sequence(ctx,
		write{"CTL", func() { reg.Modify(m.bus, CTL, WakeEvent(0xFF).enableBits(), wake.enableBits()) }},
		write{"IC", func() { m.bus.Write(IC, IntWC|allStatusBits()) }},
		write{"RTCM0", func() { m.bus.Write(RTCM0, seconds) }},
		write{"RTCSS", func() { m.bus.Write(RTCSS, 0) }},
		write{"RTCLD", func() { m.bus.Write(RTCLD, 0) }},
		write{"CTL.HIBREQ", func() { reg.Set(m.bus, CTL, CTLHIBREQ) }},
	)
	if err == nil {
		glog.V(2).Infof("hib: hibernating, wake on %s after %ds", wake, seconds)
	}
	return err
}

// WakeReasons decodes the raw interrupt status into wake sources.
func (m *Module) WakeReasons() WakeEvent {
	return wakeFromStatus(m.bus.Read(RIS))
}

// ClearWake acknowledges the wake status so that the next wake is
// reported alone.
func (m *Module) ClearWake(ctx context.Context) error {
	return m.sequence(ctx,
		write{"IC", func() { m.bus.Write(IC, allStatusBits()) }},
	)
}

// Counter reads the RTC seconds counter.
func (m *Module) Counter() uint32 {
	return m.bus.Read(RTCC)
}
