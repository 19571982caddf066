package board

import (
	"context"
	"encoding/hex"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/secoc"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
	"github.com/robotalks/tiva.go/pkg/l1/comm/stream"
	"github.com/robotalks/tiva.go/pkg/l1/env"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
	"github.com/robotalks/tiva.go/pkg/sim"
	simboard "github.com/robotalks/tiva.go/pkg/sim/board"
)

const testKey = "000102030405060708090a0b0c0d0e0f"

type harness struct {
	sim    *simboard.Board
	ctl    *Controller
	conn   *comm.BoardConn
	events chan fx.Message
	frames chan sim.BusFrame
	cancel context.CancelFunc
	errs   chan error
}

func newHarness(t *testing.T, tweak func(*env.Profile)) *harness {
	profile := env.DefaultProfile()
	profile.CAN.Demo.Period = 0
	if tweak != nil {
		tweak(&profile)
	}
	sb := simboard.New()
	p, err := NewPeripherals(sb.Mem, &profile, ExpanderBuses{I2C: sb.Expander, SPI: sb.Expander})
	require.NoError(t, err)
	p.Indicator.Sleep = func(time.Duration) {}

	a, b := net.Pipe()
	registrar := comm.NewRegistrar(stream.New(a))
	h := &harness{
		sim:    sb,
		ctl:    NewController(&profile, p, registrar),
		conn:   comm.NewBoardConn(stream.New(b)),
		events: make(chan fx.Message, 16),
		frames: make(chan sim.BusFrame, 64),
		errs:   make(chan error, 2),
	}
	sb.CAN.SubscribeFrames(sim.FrameListenerFunc(func(f sim.BusFrame) {
		select {
		case h.frames <- f:
		default:
		}
	}))

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	require.NoError(t, h.ctl.Start(ctx, sb))

	boardLoop := fx.NewLoop()
	boardLoop.Interval = 10 * time.Millisecond
	boardLoop.Add(sb, registrar, h.ctl, &comm.UnsupportedCommands{})

	client := fx.NewLoop()
	client.Interval = 10 * time.Millisecond
	client.Add(h.conn)
	client.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			mc.MessageTaken()
			h.events <- mc.CurrentMessage()
		}))
		return nil
	}))

	go func() { h.errs <- boardLoop.Run(ctx) }()
	go func() { h.errs <- client.Run(ctx) }()
	return h
}

func (h *harness) stop(t *testing.T) {
	h.cancel()
	for i := 0; i < 2; i++ {
		select {
		case <-h.errs:
		case <-time.After(5 * time.Second):
			t.Fatal("loop did not stop")
		}
	}
}

func (h *harness) do(t *testing.T, cmd fx.Message) (fx.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return l1.Await(ctx, h.conn.DoCommand(cmd))
}

// waitEvent returns the first event accepted by match, skipping others.
func (h *harness) waitEvent(t *testing.T, match func(fx.Message) bool) fx.Message {
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-h.events:
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatal("event not received")
			return nil
		}
	}
}

func (h *harness) waitFrame(t *testing.T) sim.BusFrame {
	select {
	case f := <-h.frames:
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("no frame on the bus")
		return sim.BusFrame{}
	}
}

func TestTransmitCommand(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)

	reply, err := h.do(t, &msgs.CanTransmit{CanTransmit: pb.CanTransmit{Slot: 2, Id: 0x123, Data: []byte{1, 2}}})
	require.NoError(t, err)
	_, ok := reply.(*msgs.CommandOK)
	require.True(t, ok)

	frame := h.waitFrame(t)
	require.Equal(t, uint32(0x123), frame.ID)
	require.Equal(t, []byte{1, 2}, frame.Data)

	sent := h.waitEvent(t, func(m fx.Message) bool { _, ok := m.(*msgs.CanFrameSent); return ok }).(*msgs.CanFrameSent)
	require.Equal(t, uint32(2), sent.Slot)
	require.Equal(t, uint32(0x123), sent.Id)
	require.Equal(t, []byte{1, 2}, sent.Data)

	done := h.waitEvent(t, func(m fx.Message) bool { _, ok := m.(*msgs.CanTxDone); return ok }).(*msgs.CanTxDone)
	require.Equal(t, uint32(2), done.Slot)
}

func TestTransmitRejected(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)

	tests := []struct {
		name string
		cmd  pb.CanTransmit
		err  string
	}{
		{"slot 0", pb.CanTransmit{Slot: 0, Id: 1}, can.ErrInvalidSlot.Error()},
		{"slot 33", pb.CanTransmit{Slot: 33, Id: 1}, can.ErrInvalidSlot.Error()},
		{"standard id", pb.CanTransmit{Slot: 1, Id: 0x800}, "standard id 0x800 out of range"},
		{"payload", pb.CanTransmit{Slot: 1, Id: 1, Data: make([]byte, 9)}, can.ErrPayloadTooLarge.Error()},
		{"no key", pb.CanTransmit{Slot: 1, Id: 1, Authenticate: true}, ErrNoAuthenticator.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &msgs.CanTransmit{CanTransmit: tc.cmd}
			reply, err := h.do(t, cmd)
			require.EqualError(t, err, tc.err)
			_, ok := reply.(*msgs.CommandErr)
			require.True(t, ok)
		})
	}
	require.Equal(t, uint64(0), h.sim.CAN.Sent())
}

func TestAuthenticatedTransmit(t *testing.T) {
	h := newHarness(t, func(p *env.Profile) { p.SecOC.Key = testKey })
	defer h.stop(t)

	_, err := h.do(t, &msgs.CanTransmit{CanTransmit: pb.CanTransmit{Slot: 1, Id: 0x42, Data: []byte{0xAA, 0xBB}, Authenticate: true}})
	require.NoError(t, err)
	frame := h.waitFrame(t)
	require.Len(t, frame.Data, 2+secoc.FreshnessSize+secoc.DefaultMACLen)

	key, err := hex.DecodeString(testKey)
	require.NoError(t, err)
	verifier, err := secoc.New(key)
	require.NoError(t, err)
	payload, err := verifier.Verify(0x42, frame.Data)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB}, payload)
}

func TestCanInitAndTiming(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)

	reply, err := h.do(t, &msgs.CanTimingQuery{})
	require.NoError(t, err)
	timing := reply.(*msgs.CanTiming)
	require.Equal(t, uint32(500000), timing.BitRate)
	require.True(t, timing.Running)
	require.Equal(t, 0.875, timing.SamplePoint)

	reply, err = h.do(t, &msgs.CanInit{CanInit: pb.CanInit{BitRate: 250000, AutoRetransmit: true}})
	require.NoError(t, err)
	timing = reply.(*msgs.CanTiming)
	require.Equal(t, uint32(250000), timing.BitRate)
	require.Equal(t, timing.BitReg, h.sim.Mem.Peek(h.sim.CAN.Regs.BIT))
	require.Equal(t, uint32(0), h.sim.Mem.Peek(h.sim.CAN.Regs.CTL)&can.CTLDAR)

	_, err = h.do(t, &msgs.CanInit{CanInit: pb.CanInit{BitRate: 500000, AutoRetransmit: false}})
	require.NoError(t, err)
	require.Equal(t, can.CTLDAR, h.sim.Mem.Peek(h.sim.CAN.Regs.CTL)&can.CTLDAR)

	_, err = h.do(t, &msgs.CanInit{CanInit: pb.CanInit{BitRate: 3}})
	require.Error(t, err)
	reply, err = h.do(t, &msgs.CanTimingQuery{})
	require.NoError(t, err)
	require.Equal(t, uint32(500000), reply.(*msgs.CanTiming).BitRate)
}

func TestHibernateAndWake(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)

	_, err := h.do(t, &msgs.HibSleep{HibSleep: pb.HibSleep{Seconds: 60, Wake: "pin"}})
	require.NoError(t, err)
	require.True(t, h.sim.Hib.Asleep())

	_, err = h.do(t, &msgs.CanTransmit{CanTransmit: pb.CanTransmit{Slot: 1, Id: 1}})
	require.EqualError(t, err, ErrHibernating.Error())

	_, err = h.do(t, &msgs.HibSleep{HibSleep: pb.HibSleep{Wake: "sometimes"}})
	require.Error(t, err)

	require.True(t, h.sim.Hib.PressWakePin())
	wake := h.waitEvent(t, func(m fx.Message) bool { _, ok := m.(*msgs.WakeEvent); return ok }).(*msgs.WakeEvent)
	require.Equal(t, "pin", wake.Reasons)

	reply, err := h.do(t, &msgs.HibStatusQuery{})
	require.NoError(t, err)
	status := reply.(*msgs.HibStatus)
	require.True(t, status.Initialized)
	require.Equal(t, "none", status.WakeReasons)

	_, err = h.do(t, &msgs.CanTransmit{CanTransmit: pb.CanTransmit{Slot: 1, Id: 1}})
	require.NoError(t, err)
}

func TestButtonAndLED(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)
	require.Equal(t, expander.LEDIdle, h.sim.Expander.Output())

	h.sim.Expander.Click()
	pressed := h.waitEvent(t, func(m fx.Message) bool { _, ok := m.(*msgs.ButtonPressed); return ok }).(*msgs.ButtonPressed)
	require.Equal(t, uint32(expander.LEDIdle), pressed.Captured)
	require.False(t, h.sim.Expander.Asserted())

	_, err := h.do(t, &msgs.ExpanderLED{ExpanderLED: pb.ExpanderLED{Pattern: 0xFF}})
	require.NoError(t, err)
	require.Equal(t, byte(0x7F), h.sim.Expander.Output())
}

func TestExpanderOnSPI(t *testing.T) {
	h := newHarness(t, func(p *env.Profile) {
		p.Expander.Bus = env.ExpanderSPI
		p.Expander.Address = uint16(expander.DefaultSPIAddr)
	})
	defer h.stop(t)
	require.Equal(t, expander.LEDIdle, h.sim.Expander.Output())

	_, err := h.do(t, &msgs.ExpanderLED{ExpanderLED: pb.ExpanderLED{Pattern: uint32(expander.LEDFlash)}})
	require.NoError(t, err)
	require.Equal(t, expander.LEDFlash, h.sim.Expander.Output())
}

func TestRegisterCommands(t *testing.T) {
	h := newHarness(t, nil)
	defer h.stop(t)

	const scratch = 0x20000000
	_, err := h.do(t, &msgs.RegWrite{RegWrite: pb.RegWrite{Addr: scratch, Value: 0xCAFE}})
	require.NoError(t, err)
	reply, err := h.do(t, &msgs.RegRead{RegRead: pb.RegRead{Addr: scratch}})
	require.NoError(t, err)
	require.Equal(t, uint32(0xCAFE), reply.(*msgs.RegValue).Value)

	_, err = h.do(t, &msgs.RegRead{RegRead: pb.RegRead{Addr: scratch + 2}})
	require.EqualError(t, err, ErrUnaligned.Error())

	reply, err = h.do(t, &msgs.RegDump{})
	require.NoError(t, err)
	dump := reply.(*msgs.RegSnapshot).Hex
	mem := reg.NewMemory()
	require.NoError(t, mem.LoadHex(strings.NewReader(dump)))
	require.Equal(t, uint32(0xCAFE), mem.Peek(scratch))
}

func TestDemoFrame(t *testing.T) {
	h := newHarness(t, func(p *env.Profile) { p.CAN.Demo.Period = 20 * time.Millisecond })
	defer h.stop(t)

	for i := 0; i < 2; i++ {
		frame := h.waitFrame(t)
		require.Equal(t, uint32(1), frame.ID)
		require.Equal(t, []byte{0xFF}, frame.Data)
		require.Equal(t, uint8(1), frame.Slot)
	}
}

func TestStartAfterWake(t *testing.T) {
	sb := simboard.New()
	profile := env.DefaultProfile()
	profile.Expander.Bus = env.ExpanderNone
	p, err := NewPeripherals(sb.Mem, &profile, ExpanderBuses{})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, p.Hib.Init(ctx))
	require.NoError(t, p.Hib.Hibernate(ctx, 0, hib.WakePin))
	require.True(t, sb.Hib.PressWakePin())

	registrar := &recordingRegistrar{}
	c := NewController(&profile, p, registrar)
	require.NoError(t, c.Start(ctx, sb))
	l := fx.NewLoop()
	l.AddController(fx.PrLvSense, fx.ControlFunc(c.sense))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.publish))
	l.Step(ctx)
	require.Len(t, registrar.events, 1)
	require.Equal(t, "pin", registrar.events[0].(*msgs.WakeEvent).Reasons)
	require.Equal(t, hib.WakeNone, p.Hib.WakeReasons())
}

type recordingRegistrar struct {
	events []fx.Message
}

func (r *recordingRegistrar) SendEvent(ctx context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}
