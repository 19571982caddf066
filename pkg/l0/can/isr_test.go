package can

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

type pendingInterrupts struct {
	lock sync.Mutex
	ids  []uint32
}

func (p *pendingInterrupts) head() uint32 {
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.ids) == 0 {
		return 0
	}
	return p.ids[0]
}

func (p *pendingInterrupts) ack(id uint32) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if len(p.ids) > 0 && p.ids[0] == id {
		p.ids = p.ids[1:]
	}
}

func TestHandleInterrupt(t *testing.T) {
	c, mem, rec := newTestController()
	r := c.Regs
	p := &pendingInterrupts{ids: []uint32{INTIDStatus, 3, 17}}
	mem.OnRead(r.INT, func(reg.Addr, uint32) uint32 { return p.head() })
	mem.OnRead(r.STS, func(addr reg.Addr, stored uint32) uint32 {
		p.ack(INTIDStatus)
		return STSTxOK
	})
	mem.OnWrite(r.IF2.CRQ, func(addr reg.Addr, old, val uint32) uint32 {
		p.ack(val)
		return val
	})

	c.HandleInterrupt()
	require.Equal(t, Event{Kind: EventStatus, Status: STSTxOK}, <-c.Events())
	require.Equal(t, Event{Kind: EventTxDone, Slot: 3, Status: STSTxOK}, <-c.Events())
	require.Equal(t, Event{Kind: EventTxDone, Slot: 17, Status: STSTxOK}, <-c.Events())
	require.Equal(t, uint64(0), c.Dropped())

	// only IF2 is used
	require.Empty(t, rec.WritesTo(r.IF1.CMSK))
	require.Equal(t, []reg.Access{
		{Op: reg.OpWrite, Addr: r.IF2.CMSK, Value: CMSKClrIntPnd},
		{Op: reg.OpWrite, Addr: r.IF2.CMSK, Value: CMSKClrIntPnd},
	}, rec.WritesTo(r.IF2.CMSK))
}

func TestHandleInterruptWaitsForIF2(t *testing.T) {
	c, mem, rec := newTestController()
	r := c.Regs
	p := &pendingInterrupts{ids: []uint32{3, 4}}
	mem.OnRead(r.INT, func(reg.Addr, uint32) uint32 { return p.head() })
	busy, busyReads := 0, 0
	mem.OnRead(r.IF2.CRQ, func(addr reg.Addr, stored uint32) uint32 {
		if busy > 0 {
			busy--
			busyReads++
			return stored | CRQBusy
		}
		return stored
	})
	mem.OnWrite(r.IF2.CRQ, func(addr reg.Addr, old, val uint32) uint32 {
		p.ack(val)
		busy = 2
		return val
	})

	c.HandleInterrupt()
	require.Equal(t, Event{Kind: EventTxDone, Slot: 3}, <-c.Events())
	require.Equal(t, Event{Kind: EventTxDone, Slot: 4}, <-c.Events())
	require.Equal(t, 2, busyReads)
	require.Len(t, rec.WritesTo(r.IF2.CMSK), 2)
}

func TestHandleInterruptIF2BusyTimeout(t *testing.T) {
	c, mem, rec := newTestController()
	c.busyTimeout = time.Millisecond
	mem.Poke(c.Regs.INT, 5)
	mem.Poke(c.Regs.IF2.CRQ, CRQBusy)
	c.HandleInterrupt()
	require.Len(t, c.Events(), 0)
	require.Empty(t, rec.WritesTo(c.Regs.IF2.CMSK))
	require.Equal(t, uint32(CRQBusy), mem.Peek(c.Regs.IF2.CRQ))
}

func TestHandleInterruptBounded(t *testing.T) {
	c, mem, _ := newTestController()
	// a source which never acknowledges
	mem.Poke(c.Regs.INT, 1)
	c.HandleInterrupt()
	require.Len(t, c.Events(), DefaultEventBacklog)
	require.Equal(t, uint64(MaxSlot+1-DefaultEventBacklog), c.Dropped())
}

func TestHandleInterruptUnexpectedID(t *testing.T) {
	c, mem, rec := newTestController()
	mem.Poke(c.Regs.INT, 0x40)
	c.HandleInterrupt()
	require.Len(t, c.Events(), 0)
	require.Empty(t, rec.Writes())
}
