package msgs

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

// TypeID masks
const (
	TypeIDMaskKind  uint32 = 0x80000000
	TypeIDMaskGroup uint32 = 0x7fff0000
	TypeIDMaskID    uint32 = 0x0000ffff
	TypeIDMaskReply uint32 = 0x00008000
)

// Message Kinds
const (
	TypeIDKindCommand uint32 = 0x00000000
	TypeIDKindEvent   uint32 = 0x80000000
)

// Typed wraps a message with type information and
// the sequence number correlating a reply with its command.
type Typed struct {
	pb.Typed
}

// TypedMsgHandler handles a command-kind message.
type TypedMsgHandler interface {
	HandleTypedMsg(context.Context, fx.Message, *Typed) error
}

// HandleTypedMsgFunc is func form of TypedMsgHandler.
type HandleTypedMsgFunc func(context.Context, fx.Message, *Typed) error

// HandleTypedMsg implements TypedMsgHandler.
func (f HandleTypedMsgFunc) HandleTypedMsg(ctx context.Context, msg fx.Message, typed *Typed) error {
	return f(ctx, msg, typed)
}

// ErrUnknownType indicates unknown type id.
type ErrUnknownType struct {
	TypeID uint32
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %08x", e.TypeID)
}

var (
	// ErrNotSerializable indicates the message is not serializable.
	ErrNotSerializable = errors.New("not serializable message")
	// ErrUnsupportedCommand indicates the command is unsupported.
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// SerializableMessage can be serialized over the wire.
type SerializableMessage interface {
	fx.Message
	TypeID() uint32
	Serializable() proto.Message
}

// MessageTypes are predefined mapping of type ID to messages.
var MessageTypes = map[uint32]SerializableMessage{
	CommandOKTypeID:      (*CommandOK)(nil),
	CommandErrTypeID:     (*CommandErr)(nil),
	CanInitTypeID:        (*CanInit)(nil),
	CanTimingQueryTypeID: (*CanTimingQuery)(nil),
	CanTimingTypeID:      (*CanTiming)(nil),
	CanTransmitTypeID:    (*CanTransmit)(nil),
	CanFrameSentTypeID:   (*CanFrameSent)(nil),
	CanTxDoneTypeID:      (*CanTxDone)(nil),
	HibInitTypeID:        (*HibInit)(nil),
	HibSleepTypeID:       (*HibSleep)(nil),
	HibStatusQueryTypeID: (*HibStatusQuery)(nil),
	HibStatusTypeID:      (*HibStatus)(nil),
	WakeEventTypeID:      (*WakeEvent)(nil),
	ExpanderLEDTypeID:    (*ExpanderLED)(nil),
	ButtonPressedTypeID:  (*ButtonPressed)(nil),
	RegReadTypeID:        (*RegRead)(nil),
	RegValueTypeID:       (*RegValue)(nil),
	RegWriteTypeID:       (*RegWrite)(nil),
	RegDumpTypeID:        (*RegDump)(nil),
	RegSnapshotTypeID:    (*RegSnapshot)(nil),
}

// TypedFrom creates a Typed from a serializable message.
func TypedFrom(msg fx.Message) (*Typed, error) {
	return TypedWithSeq(msg, 0)
}

// TypedWithSeq creates a Typed carrying the sequence number.
func TypedWithSeq(msg fx.Message, seq uint32) (*Typed, error) {
	s, ok := msg.(SerializableMessage)
	if !ok {
		return nil, ErrNotSerializable
	}
	data, err := proto.Marshal(s.Serializable())
	if err != nil {
		return nil, err
	}
	return &Typed{Typed: pb.Typed{TypeId: s.TypeID(), Sequence: seq, Message: data}}, nil
}

// Decode decodes the packet into actual message.
func (p Typed) Decode() (fx.Message, error) {
	msgType, ok := MessageTypes[p.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: p.TypeId}
	}
	msg := msgType.NewMessage()
	serializable := msg.(SerializableMessage).Serializable()
	if err := proto.Unmarshal(p.Message, serializable); err != nil {
		return nil, err
	}
	return msg, nil
}

// Encode encodes the Typed to bytes.
func (p Typed) Encode() ([]byte, error) {
	return proto.Marshal(&p.Typed)
}

// Kind gets message kind from type ID.
func (p Typed) Kind() uint32 {
	return p.TypeId & TypeIDMaskKind
}

// Group gets the message group from type ID.
func (p Typed) Group() uint32 {
	return p.TypeId & TypeIDMaskGroup
}

// IsCommand determines if the message is a command.
func (p Typed) IsCommand() bool {
	return p.Kind() == TypeIDKindCommand && (p.TypeId&TypeIDMaskReply) == 0
}

// IsReply determines if the message replies to a command.
func (p Typed) IsReply() bool {
	return p.Kind() == TypeIDKindCommand && (p.TypeId&TypeIDMaskReply) != 0
}

// IsEvent determines if the message is an event.
func (p Typed) IsEvent() bool {
	return p.Kind() == TypeIDKindEvent
}

// DecodeTyped decodes bytes into Typed.
func DecodeTyped(data []byte) (*Typed, error) {
	var typed Typed
	if err := proto.Unmarshal(data, &typed.Typed); err != nil {
		return nil, err
	}
	return &typed, nil
}

// GroupName names the message group of a type ID, used in topics and logs.
func GroupName(typeID uint32) string {
	switch typeID & TypeIDMaskGroup {
	case GroupCommand:
		return "cmd"
	case GroupCAN:
		return "can"
	case GroupHib:
		return "hib"
	case GroupExpander:
		return "exp"
	case GroupReg:
		return "reg"
	}
	return fmt.Sprintf("g%04x", (typeID&TypeIDMaskGroup)>>16)
}
