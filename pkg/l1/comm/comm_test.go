package comm_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
	"github.com/robotalks/tiva.go/pkg/l1/comm/stream"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

type pair struct {
	registrar *comm.Registrar
	conn      *comm.BoardConn
	events    chan fx.Message
	cancel    context.CancelFunc
	errs      chan error
}

func newPair(t *testing.T) *pair {
	a, b := net.Pipe()
	p := &pair{
		registrar: comm.NewRegistrar(stream.New(a)),
		conn:      comm.NewBoardConn(stream.New(b)),
		events:    make(chan fx.Message, 4),
		errs:      make(chan error, 2),
	}

	board := fx.NewLoop()
	board.Interval = 10 * time.Millisecond
	board.Add(p.registrar)
	board.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			cmd, ok := mc.CurrentMessage().(*l1.CommandMsg)
			if !ok {
				return
			}
			if rd, ok := cmd.Command.Msg().(*msgs.RegRead); ok {
				mc.MessageTaken()
				cmd.Command.Done(&msgs.RegValue{RegValue: pb.RegValue{Addr: rd.Addr, Value: 0x55}})
			}
		}))
		return nil
	}))
	board.Add(&comm.UnsupportedCommands{})

	client := fx.NewLoop()
	client.Interval = 10 * time.Millisecond
	client.Add(p.conn)
	client.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			mc.MessageTaken()
			p.events <- mc.CurrentMessage()
		}))
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go func() { p.errs <- board.Run(ctx) }()
	go func() { p.errs <- client.Run(ctx) }()
	return p
}

func (p *pair) stop(t *testing.T) {
	p.cancel()
	for i := 0; i < 2; i++ {
		select {
		case <-p.errs:
		case <-time.After(5 * time.Second):
			t.Fatal("loop did not stop")
		}
	}
}

func awaitCommand(t *testing.T, f l1.CommandFuture) (fx.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return l1.Await(ctx, f)
}

func TestCommandReply(t *testing.T) {
	p := newPair(t)
	defer p.stop(t)

	msg, err := awaitCommand(t, p.conn.DoCommand(&msgs.RegRead{RegRead: pb.RegRead{Addr: 0x40040000}}))
	require.NoError(t, err)
	val, ok := msg.(*msgs.RegValue)
	require.True(t, ok)
	require.Equal(t, uint32(0x40040000), val.Addr)
	require.Equal(t, uint32(0x55), val.Value)
	require.Equal(t, 0, p.conn.Pending())
}

func TestUnsupportedCommand(t *testing.T) {
	p := newPair(t)
	defer p.stop(t)

	msg, err := awaitCommand(t, p.conn.DoCommand(&msgs.HibInit{}))
	require.Error(t, err)
	require.Equal(t, msgs.ErrUnsupportedCommand.Error(), err.Error())
	_, ok := msg.(*msgs.CommandErr)
	require.True(t, ok)
}

func TestEventDelivery(t *testing.T) {
	p := newPair(t)
	defer p.stop(t)

	require.NoError(t, p.registrar.SendEvent(context.Background(),
		&msgs.CanTxDone{CanTxDone: pb.CanTxDone{Slot: 3, Status: 0x08}}))
	select {
	case ev := <-p.events:
		done, ok := ev.(*msgs.CanTxDone)
		require.True(t, ok)
		require.Equal(t, uint32(3), done.Slot)
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestSendWrongKind(t *testing.T) {
	p := comm.NewPipe(nil)
	require.Error(t, p.SendEventMsg(&msgs.CanInit{}))
	require.Error(t, p.SendCommandMsg(&msgs.CanTxDone{}, 1))
}
