package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
)

// Connector implements l1.Connector using MQTT.
type Connector struct {
	DiscoverTimeout time.Duration

	options     *paho.ClientOptions
	topicPrefix string
}

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// NewConnector creates a Connector.
func NewConnector(brokerURL string) (*Connector, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Connector{
		DiscoverTimeout: DefaultDiscoverTimeout,
		options:         opts,
		topicPrefix:     topicPrefix,
	}, nil
}

// Discover implements Connector.
// Boards publish retained metadata on <type>/<id>/meta, an empty
// payload means the board went offline.
func (c *Connector) Discover(ctx context.Context) (res []l1.BoardInfo, err error) {
	q := NewQueue(c.options, c.topicPrefix)
	q.Connect()
	defer q.Close()
	resCh := make(chan l1.BoardInfo, 1)
	q.Sub("+/+/meta", Handler(func(topic string, payload []byte) {
		info, ok := ParseMeta(topic, payload)
		if !ok {
			return
		}
		select {
		case resCh <- info:
		case <-time.After(time.Second):
		}
	}))

	dur := c.DiscoverTimeout
	if dur == 0 {
		dur = DefaultDiscoverTimeout
	}
	timeout := time.After(dur)
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-timeout:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// ParseMeta decodes a retained metadata publication.
func ParseMeta(topic string, payload []byte) (info l1.BoardInfo, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 || items[2] != "meta" || len(payload) == 0 {
		return
	}
	info.Ref = l1.BoardRef{Type: items[0], ID: items[1]}
	if err := json.Unmarshal(payload, &info.Meta); err != nil {
		glog.Warningf("bad metadata of %s: %v", info.Ref.Name(), err)
	}
	return info, true
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.BoardRef) (l1.BoardConn, error) {
	conn := &BoardConn{
		Queue: NewQueue(c.options, c.topicPrefix),
	}
	conn.Init(NewPacketReadWriter(conn.Queue).ForConnector(ref))
	token := conn.Queue.Connect()
	if err := waitToken(ctx, token); err != nil {
		return nil, err
	}
	return conn, nil
}

// BoardConn implements l1.BoardConn using MQTT.
type BoardConn struct {
	comm.BoardConn
	Queue *Queue
}

func waitToken(ctx context.Context, token paho.Token) error {
	done := make(chan struct{})
	go func() {
		token.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return token.Error()
	}
}
