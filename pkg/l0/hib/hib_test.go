package hib

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

func newReadyModule() (*Module, *reg.Memory, *reg.Recorder) {
	mem := reg.NewMemory()
	mem.OnRead(CTL, func(addr reg.Addr, stored uint32) uint32 {
		return stored | CTLWRC
	})
	mem.OnWrite(CTL, func(addr reg.Addr, old, val uint32) uint32 {
		return val &^ CTLWRC
	})
	rec := reg.NewRecorder(mem)
	return New(rec, sysctl.NewClock(rec, nil)), mem, rec
}

func TestInit(t *testing.T) {
	m, mem, _ := newReadyModule()
	require.False(t, m.Initialized())
	require.NoError(t, m.Init(context.Background()))
	require.True(t, m.Initialized())
	require.Equal(t, CTLCLK32EN|CTLRTCEN|CTLVDD3ON, mem.Peek(CTL))
	require.Equal(t, IntWC, mem.Peek(IM))
	require.Equal(t, uint32(1), mem.Peek(sysctl.RCGCHIB))
}

func TestHibernate(t *testing.T) {
	m, mem, rec := newReadyModule()
	mem.Poke(CTL, CTLCLK32EN|CTLRTCEN|CTLVDD3ON)
	require.NoError(t, m.Hibernate(context.Background(), 5, WakeRTC|WakePin))

	require.Equal(t, CTLCLK32EN|CTLRTCEN|CTLVDD3ON|CTLRTCWEN|CTLPINWEN|CTLHIBREQ, mem.Peek(CTL))
	require.Equal(t, IntWC|IntRTCALT0|IntEXTW|IntLOWBAT, mem.Peek(IC))
	require.Equal(t, uint32(5), mem.Peek(RTCM0))
	require.Equal(t, uint32(0), mem.Peek(RTCSS))

	var order []reg.Addr
	for _, a := range rec.Writes() {
		order = append(order, a.Addr)
	}
	require.Equal(t, []reg.Addr{CTL, IC, RTCM0, RTCSS, RTCLD, CTL}, order)
	// HIBREQ is the last write
	last := rec.Writes()[len(order)-1]
	require.Equal(t, CTLHIBREQ, last.Value&CTLHIBREQ)

	require.Error(t, m.Hibernate(context.Background(), 5, WakeNone))
}

func TestWriteTimeout(t *testing.T) {
	mem := reg.NewMemory()
	m := New(mem, sysctl.NewClock(mem, nil))
	m.WriteTimeout = time.Millisecond
	err := m.Init(context.Background())
	require.True(t, errors.Is(err, ErrWriteTimeout))
	var we *WriteTimeoutError
	require.True(t, errors.As(err, &we))
	require.Equal(t, "CTL.CLK32EN", we.Register)
	require.False(t, m.Initialized())

	err = m.Hibernate(context.Background(), 1, WakeRTC)
	require.True(t, errors.Is(err, ErrWriteTimeout))
	require.Equal(t, uint32(0), mem.Peek(RTCM0))
}

func TestWakeReasons(t *testing.T) {
	testCases := []struct {
		ris  uint32
		wake WakeEvent
		str  string
	}{
		{0, WakeNone, "none"},
		{IntEXTW, WakePin, "pin"},
		{IntRTCALT0 | IntWC, WakeRTC, "rtc"},
		{IntRTCALT0 | IntEXTW | IntLOWBAT, WakeRTC | WakePin | WakeLowBattery, "rtc|pin|lowbat"},
	}
	for _, tc := range testCases {
		m, mem, _ := newReadyModule()
		mem.Poke(RIS, tc.ris)
		w := m.WakeReasons()
		require.Equal(t, tc.wake, w)
		require.Equal(t, tc.str, w.String())
		parsed, err := ParseWakeEvent(tc.str)
		require.NoError(t, err)
		require.Equal(t, tc.wake, parsed)
	}
	_, err := ParseWakeEvent("rtc|usb")
	require.Error(t, err)
}

func TestClearWake(t *testing.T) {
	m, mem, rec := newReadyModule()
	require.NoError(t, m.ClearWake(context.Background()))
	writes := rec.WritesTo(IC)
	require.Len(t, writes, 1)
	require.Equal(t, IntRTCALT0|IntEXTW|IntLOWBAT, writes[0].Value)
	require.Equal(t, IntRTCALT0|IntEXTW|IntLOWBAT, mem.Peek(IC))
}
