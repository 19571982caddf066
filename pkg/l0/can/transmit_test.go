package can

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

func TestTransmitSequence(t *testing.T) {
	c, _, rec := newTestController()
	ifc := c.Regs.IF1
	f := &Frame{ID: [2]uint16{1, 0}, Len: 1}
	f.Data[0] = 0xFF
	require.NoError(t, c.Transmit(context.Background(), 1, f))
	require.Equal(t, StatusTxPending, f.Status)
	require.Equal(t, uint8(1), f.Slot)

	w := func(addr reg.Addr, val uint32) reg.Access {
		return reg.Access{Op: reg.OpWrite, Addr: addr, Value: val}
	}
	require.Equal(t, []reg.Access{
		w(c.Regs.CTL, CTLInit),
		w(ifc.CMSK, 0xB7),
		w(ifc.Data[0], 0xFF),
		w(ifc.MCTL, MCTLTxIE|MCTLEOB|1),
		w(ifc.ARB1, 1),
		w(ifc.ARB2, 0),
		w(c.Regs.CTL, 0),
		w(ifc.CRQ, 1),
	}, rec.Writes())
}

func TestTransmitDataLayout(t *testing.T) {
	c, mem, rec := newTestController()
	ifc := c.Regs.IF1
	f, err := NewFrame(StandardID(0x123), []byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.NoError(t, c.Transmit(context.Background(), 32, &f))

	require.Equal(t, uint32(0x0201), mem.Peek(ifc.Data[0]))
	require.Equal(t, uint32(0x0403), mem.Peek(ifc.Data[1]))
	require.Equal(t, uint32(0x0005), mem.Peek(ifc.Data[2]))
	require.Empty(t, rec.WritesTo(ifc.Data[3]))
	require.Equal(t, MCTLTxIE|MCTLEOB|5, mem.Peek(ifc.MCTL))
	require.Equal(t, uint32(ARB2MsgVal|ARB2Dir|0x123<<2), mem.Peek(ifc.ARB2))
	require.Equal(t, uint32(32), mem.Peek(ifc.CRQ))
}

func TestTransmitPreservesCTL(t *testing.T) {
	c, mem, _ := newTestController()
	mem.Poke(c.Regs.CTL, CTLIE|CTLSIE|CTLDAR)
	f, _ := NewFrame(StandardID(1), nil)
	require.NoError(t, c.Transmit(context.Background(), 2, &f))
	require.Equal(t, CTLIE|CTLSIE|CTLDAR, mem.Peek(c.Regs.CTL))
	require.Equal(t, MCTLTxIE|MCTLEOB, mem.Peek(c.Regs.IF1.MCTL))
}

func TestTransmitRejectsBeforeAccess(t *testing.T) {
	testCases := []struct {
		name string
		slot uint8
		len  uint8
		err  error
	}{
		{"payload 9", 1, 9, ErrPayloadTooLarge},
		{"slot 0", 0, 1, ErrInvalidSlot},
		{"slot 33", 33, 8, ErrInvalidSlot},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, rec := newTestController()
			f := &Frame{ID: StandardID(1), Len: tc.len, Status: StatusTxComplete}
			require.Equal(t, tc.err, c.Transmit(context.Background(), tc.slot, f))
			require.Empty(t, rec.Accesses())
			require.Equal(t, StatusTxComplete, f.Status)
		})
	}
}

func TestTransmitNilFrame(t *testing.T) {
	c, _, rec := newTestController()
	require.Equal(t, ErrNilFrame, c.Transmit(context.Background(), 1, nil))
	require.Equal(t, ErrNilFrame, c.Send(context.Background(), nil))
	require.Equal(t, ErrNilFrame, NewTxQueue(c).Submit(context.Background(), 1, nil))
	require.Empty(t, rec.Accesses())
}

func TestTransmitBusyTimeout(t *testing.T) {
	for _, ctl := range []uint32{0, CTLInit | CTLIE} {
		c, mem, rec := newTestController()
		c.busyTimeout = time.Millisecond
		mem.Poke(c.Regs.CTL, ctl)
		mem.Poke(c.Regs.IF1.CRQ, CRQBusy)
		f, _ := NewFrame(StandardID(1), []byte{1})
		require.Equal(t, ErrInterfaceBusyTimeout, c.Transmit(context.Background(), 1, &f))
		require.Equal(t, ctl, mem.Peek(c.Regs.CTL))
		require.Empty(t, rec.WritesTo(c.Regs.IF1.CMSK))
		require.Equal(t, uint32(CRQBusy), mem.Peek(c.Regs.IF1.CRQ))
		require.Equal(t, StatusStaged, f.Status)
	}
}

func TestTransmitCanceled(t *testing.T) {
	c, mem, _ := newTestController()
	mem.Poke(c.Regs.IF1.CRQ, CRQBusy)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, _ := NewFrame(StandardID(1), nil)
	require.Equal(t, context.Canceled, c.Transmit(ctx, 1, &f))
	require.Equal(t, uint32(0), mem.Peek(c.Regs.CTL))
}

func TestTransmitWaitsForBusy(t *testing.T) {
	c, mem, _ := newTestController()
	polls := 0
	mem.OnRead(c.Regs.IF1.CRQ, func(addr reg.Addr, stored uint32) uint32 {
		polls++
		if polls < 3 {
			return CRQBusy
		}
		return stored
	})
	f, _ := NewFrame(StandardID(1), nil)
	require.NoError(t, c.Transmit(context.Background(), 3, &f))
	require.Equal(t, 3, polls)
}

func TestSendUsesFrameSlot(t *testing.T) {
	c, mem, _ := newTestController()
	f, _ := NewFrame(ExtendedID(0x1ABCDE0F), []byte{0xAA})
	f.Slot = 7
	require.NoError(t, c.Send(context.Background(), &f))
	require.Equal(t, uint32(7), mem.Peek(c.Regs.IF1.CRQ))
	require.Equal(t, uint32(0xDE0F), mem.Peek(c.Regs.IF1.ARB1))
	require.Equal(t, uint32(ARB2MsgVal|ARB2Xtd|ARB2Dir|0x1ABC), mem.Peek(c.Regs.IF1.ARB2))

	f.Slot = 0
	require.Equal(t, ErrInvalidSlot, c.Send(context.Background(), &f))
}
