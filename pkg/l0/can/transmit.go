package can

import (
	"context"
	"errors"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

const transmitCommand = CMSKWrNRd | CMSKControl | CMSKArb | CMSKDataA | CMSKDataB | CMSKTxRqst

// Transmit stages f in IF1 and requests transmission from message object slot.
// It returns once the command is issued, f.Status is then StatusTxPending.
// IF1 must not be used concurrently, see TxQueue.
func (c *Controller) Transmit(ctx context.Context, slot uint8, f *Frame) error {
	if f == nil {
		return ErrNilFrame
	}
	if f.Len > MaxDataLen {
		return ErrPayloadTooLarge
	}
	if slot < MinSlot || slot > MaxSlot {
		return ErrInvalidSlot
	}
	f.Status = StatusStaged

	r, ifc := c.Regs, c.Regs.IF1
	ctl := c.bus.Read(r.CTL)
	c.bus.Write(r.CTL, ctl|CTLInit)

	if err := reg.WaitFor(ctx, c.bus, ifc.CRQ, CRQBusy, 0, c.busyTimeout); err != nil {
		reg.Modify(c.bus, r.CTL, CTLInit, ctl&CTLInit)
		if errors.Is(err, reg.ErrTimeout) {
			return ErrInterfaceBusyTimeout
		}
		return err
	}

	c.bus.Write(ifc.CMSK, transmitCommand)
	mctl := MCTLTxIE | MCTLEOB
	for n := 0; n*2 < int(f.Len); n++ {
		word := uint32(f.Data[n*2])
		if n*2+1 < int(f.Len) {
			word |= uint32(f.Data[n*2+1]) << 8
		}
		c.bus.Write(ifc.Data[n], word)
	}
	c.bus.Write(ifc.MCTL, mctl|uint32(f.Len)&MCTLDLCMask)
	c.bus.Write(ifc.ARB1, uint32(f.ID[0]))
	c.bus.Write(ifc.ARB2, uint32(f.ID[1]))
	reg.Clear(c.bus, r.CTL, CTLInit)
	c.bus.Write(ifc.CRQ, uint32(slot))

	f.Slot = slot
	f.Status = StatusTxPending
	if glog.V(2) {
		glog.Infof("can%d: tx %s", c.Module.Index, f)
	}
	return nil
}

// Send transmits f from its own Slot.
func (c *Controller) Send(ctx context.Context, f *Frame) error {
	if f == nil {
		return ErrNilFrame
	}
	return c.Transmit(ctx, f.Slot, f)
}
