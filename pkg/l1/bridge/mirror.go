// Package bridge mirrors the simulated CAN bus onto a SocketCAN
// interface, so candump and friends can watch the simulated board.
package bridge

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/brutella/can"
	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/sim"
)

// effFlag marks an extended frame id in SocketCAN.
const effFlag = 0x80000000

// DefaultBacklog is the number of frames buffered for publishing.
const DefaultBacklog = 64

// ErrUnsupported is returned where SocketCAN is unavailable.
var ErrUnsupported = errors.New("socketcan not supported on this platform")

// Bus is the part of a brutella/can Bus the mirror uses.
type Bus interface {
	ConnectAndPublish() error
	Publish(can.Frame) error
	Disconnect() error
}

// Mirror is a sim.FrameListener publishing frames to a Bus.
type Mirror struct {
	Interface string
	// Open connects to the interface, SocketCAN by default.
	Open func(iface string) (Bus, error)

	frames    chan sim.BusFrame
	published uint64
	dropped   uint64
}

// NewMirror creates a Mirror for a SocketCAN interface, e.g. vcan0.
func NewMirror(iface string) *Mirror {
	return &Mirror{
		Interface: iface,
		Open:      OpenSocketCAN,
		frames:    make(chan sim.BusFrame, DefaultBacklog),
	}
}

// Name implements Named.
func (m *Mirror) Name() string {
	return "can-mirror:" + m.Interface
}

// FrameTransmitted implements sim.FrameListener. It never blocks the
// simulated controller, frames are dropped on a full backlog.
func (m *Mirror) FrameTransmitted(f sim.BusFrame) {
	select {
	case m.frames <- f:
	default:
		atomic.AddUint64(&m.dropped, 1)
	}
}

// Published is the number of frames written to the interface.
func (m *Mirror) Published() uint64 {
	return atomic.LoadUint64(&m.published)
}

// Dropped is the number of frames lost on a full backlog.
func (m *Mirror) Dropped() uint64 {
	return atomic.LoadUint64(&m.dropped)
}

// Run implements Runnable.
func (m *Mirror) Run(ctx context.Context) error {
	bus, err := m.Open(m.Interface)
	if err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() { errCh <- bus.ConnectAndPublish() }()
	defer bus.Disconnect()
	glog.Infof("mirroring simulated bus to %s", m.Interface)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return err
		case f := <-m.frames:
			if err := bus.Publish(ToSocketCAN(f)); err != nil {
				glog.Warningf("%s: publish %s: %v", m.Interface, f, err)
				continue
			}
			atomic.AddUint64(&m.published, 1)
		}
	}
}

// ToSocketCAN converts a simulated frame.
func ToSocketCAN(f sim.BusFrame) can.Frame {
	out := can.Frame{ID: f.ID, Length: uint8(len(f.Data))}
	if f.Extended {
		out.ID |= effFlag
	}
	copy(out.Data[:], f.Data)
	return out
}
