package stream

import (
	"encoding/binary"
	"errors"
	"io"
)

// MaxPacketSize bounds the length prefix accepted by ReadPacket.
const MaxPacketSize = 64 * 1024

// ErrPacketTooLarge indicates the length prefix exceeds MaxPacketSize.
var ErrPacketTooLarge = errors.New("packet too large")

// ReadWriter implements PacketReadWriter.
// Each packet is prefixed by 4-byte (little-endian) indicate the length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter with io.ReadWriter.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p.ReadWriter, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketSize {
		return nil, ErrPacketTooLarge
	}
	pkt := make([]byte, size)
	_, err := io.ReadFull(p.ReadWriter, pkt)
	return pkt, err
}

// WritePacket implements PacketWriter.
// The prefix and payload go out in one Write.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if len(pkt) > MaxPacketSize {
		return ErrPacketTooLarge
	}
	buf := make([]byte, 4+len(pkt))
	binary.LittleEndian.PutUint32(buf, uint32(len(pkt)))
	copy(buf[4:], pkt)
	_, err := p.ReadWriter.Write(buf)
	return err
}

// Close closes the underlying stream if it is closable.
func (p *ReadWriter) Close() error {
	if c, ok := p.ReadWriter.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
