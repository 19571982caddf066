package can

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// DefaultEventBacklog is the capacity of the interrupt event channel.
const DefaultEventBacklog = 32

// EventKind classifies an interrupt event.
type EventKind int

// Event kinds.
const (
	EventTxDone EventKind = iota
	EventStatus
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventTxDone:
		return "tx-done"
	case EventStatus:
		return "status"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is produced by HandleInterrupt.
type Event struct {
	Kind EventKind
	// Slot is the message object which completed, for EventTxDone.
	Slot uint8
	// Status is the CANSTS value read while handling the interrupt.
	Status uint32
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s slot=%d sts=0x%02x", e.Kind, e.Slot, e.Status)
}

// Events returns the channel HandleInterrupt posts to.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Dropped is the number of events lost on a full channel.
func (c *Controller) Dropped() uint64 {
	return atomic.LoadUint64(&c.dropped)
}

// HandleInterrupt services the controller interrupt. It only uses IF2 and
// never touches caller frames: completions are reported through Events.
// Every pending source is acknowledged, at most one pass over all objects.
// Each IF2 command waits for the previous one to clear IF2CRQ.BUSY.
func (c *Controller) HandleInterrupt() {
	r, ifc := c.Regs, c.Regs.IF2
	for n := 0; n <= MaxSlot; n++ {
		id := c.bus.Read(r.INT) & INTIDMask
		if id == 0 {
			return
		}
		// reading STS acknowledges the status interrupt and TXOK
		sts := c.bus.Read(r.STS)
		if id == INTIDStatus {
			c.post(Event{Kind: EventStatus, Status: sts})
			continue
		}
		if id < MinSlot || id > MaxSlot {
			glog.Warningf("can%d: unexpected interrupt id 0x%04x", c.Module.Index, id)
			return
		}
		// a source left pending here is raised again by the next interrupt
		if err := reg.WaitFor(context.Background(), c.bus, ifc.CRQ, CRQBusy, 0, c.busyTimeout); err != nil {
			glog.Warningf("can%d: IF2 busy, slot %d left pending: %v", c.Module.Index, id, err)
			return
		}
		c.bus.Write(ifc.CMSK, CMSKClrIntPnd)
		c.bus.Write(ifc.CRQ, id)
		c.post(Event{Kind: EventTxDone, Slot: uint8(id), Status: sts})
	}
}

func (c *Controller) post(e Event) {
	select {
	case c.events <- e:
	default:
		atomic.AddUint64(&c.dropped, 1)
		glog.V(2).Infof("can%d: event dropped: %s", c.Module.Index, e)
	}
}
