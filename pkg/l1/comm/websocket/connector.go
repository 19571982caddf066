package websocket

import (
	"context"

	"github.com/robotalks/tiva.go/pkg/l1"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
)

// Connector implements l1.Connector for a single board served
// by a websocket Registrar.
type Connector struct {
	URL string
}

// NewConnector creates a Connector.
func NewConnector(url string) *Connector {
	return &Connector{URL: url}
}

// Discover implements l1.Connector. The endpoint doesn't announce
// its identity, nothing is discovered.
func (c *Connector) Discover(ctx context.Context) ([]l1.BoardInfo, error) {
	return nil, nil
}

// Connect implements l1.Connector. ref is not checked against the board.
func (c *Connector) Connect(ctx context.Context, ref l1.BoardRef) (l1.BoardConn, error) {
	rw, err := Dial(c.URL)
	if err != nil {
		return nil, err
	}
	conn := &BoardConn{RW: rw}
	conn.Init(rw)
	return conn, nil
}

// BoardConn implements l1.BoardConn over websocket.
type BoardConn struct {
	comm.BoardConn
	RW *ReadWriter
}
