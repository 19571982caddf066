// Package comm carries typed L1 messages between a board controller and
// its clients. Every packet holds exactly one encoded msgs.Typed, so a
// transport only has to preserve packet boundaries.
package comm

// PacketReader reads one packet per call. io.EOF ends the stream.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes one packet per call.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter is a packet transport, e.g. a length-prefixed
// stream, an MQTT topic pair or a websocket.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}
