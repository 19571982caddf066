// Package sim provides the building blocks of the simulated board:
// peripherals emulated on a register file and observers of the
// simulated CAN bus.
package sim

import (
	"fmt"
	"time"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// Peripheral is an emulated device mapped onto a register file.
type Peripheral interface {
	fx.Named
	// Attach installs the register hooks.
	Attach(mem *reg.Memory)
}

// Ticker is a peripheral with time-driven behavior.
type Ticker interface {
	// Advance moves the peripheral clock forward.
	Advance(d time.Duration)
}

// InterruptLine raises an interrupt towards the NVIC.
type InterruptLine interface {
	Raise()
}

// InterruptLineFunc is the func form of InterruptLine.
type InterruptLineFunc func()

// Raise implements InterruptLine.
func (f InterruptLineFunc) Raise() {
	f()
}

// BusFrame is a frame observed on the simulated CAN bus.
type BusFrame struct {
	Module   int
	Slot     uint8
	ID       uint32
	Extended bool
	Data     []byte
	Time     time.Time
}

// String implements fmt.Stringer.
func (f BusFrame) String() string {
	if f.Extended {
		return fmt.Sprintf("can%d %08x [%d] % x", f.Module, f.ID, len(f.Data), f.Data)
	}
	return fmt.Sprintf("can%d %03x [%d] % x", f.Module, f.ID, len(f.Data), f.Data)
}

// FrameListener observes frames put on the bus.
type FrameListener interface {
	FrameTransmitted(BusFrame)
}

// FrameListenerFunc is the func form of FrameListener.
type FrameListenerFunc func(BusFrame)

// FrameTransmitted implements FrameListener.
func (f FrameListenerFunc) FrameTransmitted(frame BusFrame) {
	f(frame)
}

// FrameSubscriber subscribes bus frame notifications.
type FrameSubscriber interface {
	SubscribeFrames(FrameListener)
}
