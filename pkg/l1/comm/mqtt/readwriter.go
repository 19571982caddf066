package mqtt

import (
	"context"
	"io"

	"github.com/robotalks/tiva.go/pkg/l1"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh chan []byte
	done     chan struct{}
}

// DefaultPacketBacklog is the number of received packets buffered
// before the subscription callback blocks.
const DefaultPacketBacklog = 16

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, DefaultPacketBacklog),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// Topic suffixes under <type>/<id>.
const (
	TopicCmd  = "cmd"
	TopicMsg  = "msg"
	TopicMeta = "meta"
)

// BoardTopic composes the topic of a board.
func BoardTopic(ref l1.BoardRef, suffix string) string {
	return ref.Name() + "/" + suffix
}

// ForConnector sets topics using default convention for clients:
// SubTopic = <type>/<id>/msg
// PubTopic = <type>/<id>/cmd
func (p *ReadWriter) ForConnector(ref l1.BoardRef) *ReadWriter {
	return p.WithTopics(BoardTopic(ref, TopicMsg), BoardTopic(ref, TopicCmd))
}

// ForBoard sets topics using default convention for a board controller:
// SubTopic = <type>/<id>/cmd
// PubTopic = <type>/<id>/msg
func (p *ReadWriter) ForBoard(ref l1.BoardRef) *ReadWriter {
	return p.WithTopics(BoardTopic(ref, TopicCmd), BoardTopic(ref, TopicMsg))
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	defer sub.Close()
	defer close(p.done)
	<-ctx.Done()
	return ctx.Err()
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
