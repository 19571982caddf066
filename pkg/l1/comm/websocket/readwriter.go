package websocket

import (
	"io"

	"golang.org/x/net/websocket"
)

// ReadWriter implements PacketReadWriter over binary websocket messages.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// DefaultOrigin is the origin sent by Dial.
const DefaultOrigin = "http://localhost/"

// Dial connects to a websocket registrar, e.g. ws://host:8080/l1.
func Dial(url string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", DefaultOrigin)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

var _ io.Closer = (*ReadWriter)(nil)
