package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/sim"
)

// CAN emulates a C_CAN controller: bit timing writable only with
// CTL.INIT and CTL.CCE set, message objects loaded through IF1/IF2,
// and transmission of requested objects while not in INIT.
// Every transmission succeeds.
type CAN struct {
	Module can.Module
	Regs   can.Regs
	IRQ    sim.InterruptLine
	Clock  func() time.Time

	// BusyReads makes IFnCRQ report BUSY for that many reads after
	// each request.
	BusyReads int
	// StuckBusy keeps IFnCRQ busy forever.
	StuckBusy bool

	sim.FrameCaster

	mem        *reg.Memory
	lock       sync.Mutex
	objs       [can.MaxSlot + 1]msgObject
	busy       int
	statusPend bool
	sent       uint64
}

type msgObject struct {
	arb1, arb2 uint32
	mctl       uint32
	data       [4]uint32
}

// NewCAN creates the emulation of module m.
func NewCAN(m can.Module) *CAN {
	return &CAN{Module: m, Regs: can.RegsAt(m.Base), Clock: time.Now}
}

// Name implements Named.
func (c *CAN) Name() string {
	return fmt.Sprintf("can%d", c.Module.Index)
}

// Attach implements sim.Peripheral.
func (c *CAN) Attach(mem *reg.Memory) {
	c.mem = mem
	r := c.Regs
	mem.Poke(r.CTL, can.CTLInit)
	mem.OnWrite(r.CTL, c.writeCTL)
	mem.OnWrite(r.BIT, c.writeTiming)
	mem.OnWrite(r.BRPE, c.writeTiming)
	mem.OnRead(r.STS, c.readSTS)
	mem.OnRead(r.INT, c.readINT)
	for _, ifc := range []can.Interface{r.IF1, r.IF2} {
		ifc := ifc
		mem.OnWrite(ifc.CRQ, func(addr reg.Addr, old, val uint32) uint32 {
			return c.request(ifc, val)
		})
		mem.OnRead(ifc.CRQ, c.readCRQ)
	}
}

// Sent is the number of frames put on the bus.
func (c *CAN) Sent() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.sent
}

// Pending reports the message objects with a pending interrupt.
func (c *CAN) Pending() []uint8 {
	c.lock.Lock()
	defer c.lock.Unlock()
	var slots []uint8
	for n := can.MinSlot; n <= can.MaxSlot; n++ {
		if c.objs[n].mctl&can.MCTLIntPnd != 0 {
			slots = append(slots, uint8(n))
		}
	}
	return slots
}

func (c *CAN) writeCTL(addr reg.Addr, old, val uint32) uint32 {
	if old&can.CTLInit != 0 && val&can.CTLInit == 0 {
		glog.V(3).Infof("sim %s: leaving init", c.Name())
		c.flush(val)
	}
	return val
}

func (c *CAN) writeTiming(addr reg.Addr, old, val uint32) uint32 {
	const configure = can.CTLInit | can.CTLCCE
	if c.mem.Peek(c.Regs.CTL)&configure != configure {
		glog.V(3).Infof("sim %s: timing write to %s ignored", c.Name(), addr)
		return old
	}
	return val
}

// reading STS clears TXOK, RXOK and the status interrupt
func (c *CAN) readSTS(addr reg.Addr, stored uint32) uint32 {
	c.mem.Poke(addr, stored&^(can.STSTxOK|can.STSRxOK))
	c.lock.Lock()
	c.statusPend = false
	c.lock.Unlock()
	return stored
}

func (c *CAN) readINT(addr reg.Addr, stored uint32) uint32 {
	ctl := c.mem.Peek(c.Regs.CTL)
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.interruptID(ctl)
}

func (c *CAN) interruptID(ctl uint32) uint32 {
	if c.statusPend && ctl&can.CTLSIE != 0 {
		return can.INTIDStatus
	}
	for n := can.MinSlot; n <= can.MaxSlot; n++ {
		if c.objs[n].mctl&can.MCTLIntPnd != 0 {
			return uint32(n)
		}
	}
	return 0
}

func (c *CAN) readCRQ(addr reg.Addr, stored uint32) uint32 {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.StuckBusy {
		return stored | can.CRQBusy
	}
	if c.busy > 0 {
		c.busy--
		return stored | can.CRQBusy
	}
	return stored &^ can.CRQBusy
}

// request executes an interface command on the message object in val.
func (c *CAN) request(ifc can.Interface, val uint32) uint32 {
	num := val & can.CRQMNumMax
	if num < can.MinSlot || num > can.MaxSlot {
		glog.Warningf("sim %s: request for message object %d", c.Name(), num)
		return num
	}
	mem := c.mem
	cmsk := mem.Peek(ifc.CMSK)
	c.lock.Lock()
	c.busy = c.BusyReads
	obj := &c.objs[num]
	if cmsk&can.CMSKWrNRd != 0 {
		if cmsk&can.CMSKArb != 0 {
			obj.arb1, obj.arb2 = mem.Peek(ifc.ARB1), mem.Peek(ifc.ARB2)
		}
		if cmsk&can.CMSKControl != 0 {
			obj.mctl = mem.Peek(ifc.MCTL) &^ can.MCTLIntPnd
		}
		if cmsk&can.CMSKDataA != 0 {
			obj.data[0], obj.data[1] = mem.Peek(ifc.Data[0]), mem.Peek(ifc.Data[1])
		}
		if cmsk&can.CMSKDataB != 0 {
			obj.data[2], obj.data[3] = mem.Peek(ifc.Data[2]), mem.Peek(ifc.Data[3])
		}
		if cmsk&can.CMSKTxRqst != 0 {
			obj.mctl |= can.MCTLTxRqst
		}
	} else {
		if cmsk&can.CMSKClrIntPnd != 0 {
			obj.mctl &^= can.MCTLIntPnd
		}
		mem.Poke(ifc.ARB1, obj.arb1)
		mem.Poke(ifc.ARB2, obj.arb2)
		mem.Poke(ifc.MCTL, obj.mctl)
		for n, w := range obj.data {
			mem.Poke(ifc.Data[n], w)
		}
	}
	c.lock.Unlock()
	if cmsk&can.CMSKWrNRd != 0 {
		if ctl := mem.Peek(c.Regs.CTL); ctl&can.CTLInit == 0 {
			c.transmit(ctl, uint8(num))
		}
	}
	return num
}

func (c *CAN) flush(ctl uint32) {
	for n := can.MinSlot; n <= can.MaxSlot; n++ {
		c.transmit(ctl, uint8(n))
	}
}

func (c *CAN) transmit(ctl uint32, num uint8) {
	const ready = uint32(can.ARB2MsgVal | can.ARB2Dir)
	c.lock.Lock()
	obj := &c.objs[num]
	if obj.arb2&ready != ready || obj.mctl&can.MCTLTxRqst == 0 {
		c.lock.Unlock()
		return
	}
	obj.mctl &^= can.MCTLTxRqst
	if obj.mctl&can.MCTLTxIE != 0 {
		obj.mctl |= can.MCTLIntPnd
	}
	c.statusPend = true
	c.sent++
	frame := obj.busFrame(c.Module.Index, num)
	raise := ctl&can.CTLIE != 0 && c.interruptID(ctl) != 0
	c.lock.Unlock()

	c.mem.Poke(c.Regs.STS, c.mem.Peek(c.Regs.STS)|can.STSTxOK)
	frame.Time = c.Clock()
	glog.V(2).Infof("sim %s: bus %s", c.Name(), frame)
	c.FrameTransmitted(frame)
	if raise && c.IRQ != nil {
		c.IRQ.Raise()
	}
}

func (o *msgObject) busFrame(module int, num uint8) sim.BusFrame {
	f := sim.BusFrame{Module: module, Slot: num}
	if uint16(o.arb2)&can.ARB2Xtd != 0 {
		f.Extended = true
		f.ID = (o.arb2&uint32(can.ARB2IDMask))<<16 | o.arb1&0xFFFF
	} else {
		f.ID = (o.arb2 & uint32(can.ARB2IDMask)) >> 2
	}
	dlc := int(o.mctl & can.MCTLDLCMask)
	if dlc > can.MaxDataLen {
		dlc = can.MaxDataLen
	}
	f.Data = make([]byte, dlc)
	for i := range f.Data {
		f.Data[i] = byte(o.data[i/2] >> (uint(i%2) * 8))
	}
	return f
}
