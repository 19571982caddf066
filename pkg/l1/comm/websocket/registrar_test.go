package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/msgs"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

func TestRegistrarRoundTrip(t *testing.T) {
	r := NewRegistrar("127.0.0.1:0")
	require.NoError(t, r.Listen())

	board := fx.NewLoop()
	board.Interval = 10 * time.Millisecond
	board.Add(r)
	board.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			if cmd, ok := mc.CurrentMessage().(*l1.CommandMsg); ok {
				mc.MessageTaken()
				cmd.Command.Done(msgs.NewCommandOK())
			}
		}))
		return nil
	}))

	events := make(chan fx.Message, 1)
	client := fx.NewLoop()
	client.Interval = 10 * time.Millisecond
	client.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			mc.MessageTaken()
			events <- mc.CurrentMessage()
		}))
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go board.Run(ctx)

	conn, err := NewConnector("ws://" + r.ListenAddr().String() + DefaultPath).
		Connect(ctx, l1.BoardRef{Type: "tm4c123", ID: "b1"})
	require.NoError(t, err)
	client.Add(conn.(*BoardConn))
	go client.Run(ctx)

	actx, acancel := context.WithTimeout(ctx, 5*time.Second)
	defer acancel()
	msg, err := l1.Await(actx, conn.DoCommand(&msgs.HibInit{}))
	require.NoError(t, err)
	_, ok := msg.(*msgs.CommandOK)
	require.True(t, ok)
	require.Equal(t, 1, r.Clients())

	require.NoError(t, r.SendEvent(ctx, &msgs.WakeEvent{WakeEvent: pb.WakeEvent{Reasons: "rtc"}}))
	select {
	case ev := <-events:
		require.Equal(t, "rtc", ev.(*msgs.WakeEvent).Reasons)
	case <-time.After(5 * time.Second):
		t.Fatal("event not delivered")
	}
}
