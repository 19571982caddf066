package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
)

// ClientIDPrefix prefixes the default MQTT client id of a board.
const ClientIDPrefix = "tiva:"

// Registrar implements l1.Registrar using MQTT.
// The board metadata is retained on <type>/<id>/meta while connected
// and cleared by the will message or on shutdown.
type Registrar struct {
	Queue *Queue
	Info  l1.BoardInfo

	metaJSON  string
	registrar comm.Registrar
}

// NewRegistrar creates a Registrar.
func NewRegistrar(brokerURL string, info l1.BoardInfo) (*Registrar, error) {
	if !info.Ref.IsValid() {
		return nil, fmt.Errorf("invalid board ref %q", info.Ref.Name())
	}
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+BoardTopic(info.Ref, TopicMeta), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID(ClientIDPrefix + info.Ref.Name())
	}
	r := &Registrar{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		metaJSON: string(meta),
	}
	r.Queue.OnConnect = func(*Queue) { r.onConnected() }
	r.registrar.Init(NewPacketReadWriter(r.Queue).ForBoard(info.Ref))
	return r, nil
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.registrar.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.Add(&r.registrar)
	loop.AddRunnable(r)
}

// Run implements Runnable.
func (r *Registrar) Run(ctx context.Context) error {
	r.Queue.Connect()
	<-ctx.Done()
	r.Queue.PubWith(BoardTopic(r.Info.Ref, TopicMeta), nil, 1, true).WaitTimeout(time.Second)
	r.Queue.Close()
	return nil
}

func (r *Registrar) onConnected() {
	glog.Infof("board %s online", r.Info.Ref.Name())
	r.Queue.PubWith(BoardTopic(r.Info.Ref, TopicMeta), []byte(r.metaJSON), 1, true)
}
