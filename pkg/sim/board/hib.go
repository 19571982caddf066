package board

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// Hib emulates the hibernation module: CTL.WRC, the RTC seconds
// counter with match 0, write-1-to-clear IC and the hibernation request.
// While hibernating the RTC match or the wake pin wakes the board and
// sets the corresponding RIS bit.
type Hib struct {
	// WriteBusy keeps CTL.WRC low, writes then time out.
	WriteBusy bool
	// OnWake is called after the board woke up.
	OnWake func(hib.WakeEvent)

	mem          *reg.Memory
	lock         sync.Mutex
	sub          time.Duration
	asleep       bool
	armed        uint32
	hibernations int
}

// NewHib creates the emulation.
func NewHib() *Hib {
	return &Hib{}
}

// Name implements Named.
func (h *Hib) Name() string {
	return "hib"
}

// Attach implements sim.Peripheral.
func (h *Hib) Attach(mem *reg.Memory) {
	h.mem = mem
	mem.OnRead(hib.CTL, h.readCTL)
	mem.OnWrite(hib.CTL, h.writeCTL)
	mem.OnWrite(hib.IC, func(addr reg.Addr, old, val uint32) uint32 {
		mem.Poke(hib.RIS, mem.Peek(hib.RIS)&^val)
		return val
	})
	mem.OnWrite(hib.RTCLD, func(addr reg.Addr, old, val uint32) uint32 {
		mem.Poke(hib.RTCC, val)
		h.lock.Lock()
		h.sub = 0
		h.lock.Unlock()
		return val
	})
	mem.OnRead(hib.MIS, func(addr reg.Addr, stored uint32) uint32 {
		return mem.Peek(hib.RIS) & mem.Peek(hib.IM)
	})
}

// Asleep reports whether the board is hibernating.
func (h *Hib) Asleep() bool {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.asleep
}

// Hibernations counts hibernation requests.
func (h *Hib) Hibernations() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.hibernations
}

func (h *Hib) readCTL(addr reg.Addr, stored uint32) uint32 {
	h.lock.Lock()
	busy := h.WriteBusy
	h.lock.Unlock()
	if busy {
		return stored &^ hib.CTLWRC
	}
	return stored | hib.CTLWRC
}

func (h *Hib) writeCTL(addr reg.Addr, old, val uint32) uint32 {
	val &^= hib.CTLWRC
	if val&hib.CTLHIBREQ != 0 && old&hib.CTLHIBREQ == 0 {
		h.lock.Lock()
		h.asleep = true
		h.armed = val & (hib.CTLRTCWEN | hib.CTLPINWEN | hib.CTLBATWKEN)
		h.hibernations++
		h.lock.Unlock()
		glog.V(2).Infof("sim hib: hibernating, match at %d", h.mem.Peek(hib.RTCM0))
	}
	return val
}

// Advance implements sim.Ticker. The RTC counts while CTL.RTCEN is set.
func (h *Hib) Advance(d time.Duration) {
	mem := h.mem
	if mem.Peek(hib.CTL)&hib.CTLRTCEN == 0 {
		return
	}
	h.lock.Lock()
	h.sub += d
	var ticks uint32
	for h.sub >= time.Second {
		h.sub -= time.Second
		ticks++
	}
	asleep, armed := h.asleep, h.armed
	h.lock.Unlock()
	if ticks == 0 {
		return
	}
	counter := mem.Peek(hib.RTCC)
	match := mem.Peek(hib.RTCM0)
	next := counter + ticks
	mem.Poke(hib.RTCC, next)
	if asleep && armed&hib.CTLRTCWEN != 0 && counter < match && next >= match {
		h.wake(hib.IntRTCALT0)
	}
}

// PressWakePin drives the WAKE pin, which wakes the board if the pin
// was armed.
func (h *Hib) PressWakePin() bool {
	h.lock.Lock()
	ok := h.asleep && h.armed&hib.CTLPINWEN != 0
	h.lock.Unlock()
	if ok {
		h.wake(hib.IntEXTW)
	}
	return ok
}

// LowBattery reports a low battery, which wakes the board if armed.
func (h *Hib) LowBattery() bool {
	h.lock.Lock()
	ok := h.asleep && h.armed&hib.CTLBATWKEN != 0
	h.lock.Unlock()
	if ok {
		h.wake(hib.IntLOWBAT)
	}
	return ok
}

func (h *Hib) wake(status uint32) {
	mem := h.mem
	h.lock.Lock()
	h.asleep = false
	h.armed = 0
	h.lock.Unlock()
	mem.Poke(hib.RIS, mem.Peek(hib.RIS)|status)
	mem.Poke(hib.CTL, mem.Peek(hib.CTL)&^hib.CTLHIBREQ)
	glog.V(2).Infof("sim hib: wake, ris=0x%02x", mem.Peek(hib.RIS))
	if h.OnWake != nil {
		h.OnWake(wakeFromRIS(mem.Peek(hib.RIS)))
	}
}

func wakeFromRIS(ris uint32) (w hib.WakeEvent) {
	if ris&hib.IntRTCALT0 != 0 {
		w |= hib.WakeRTC
	}
	if ris&hib.IntEXTW != 0 {
		w |= hib.WakePin
	}
	if ris&hib.IntLOWBAT != 0 {
		w |= hib.WakeLowBattery
	}
	return
}
