package msgs

import (
	"errors"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// CanInit command configures and starts the CAN controller.
type CanInit struct {
	pb.CanInit
}

// NewMessage implements Message.
func (m *CanInit) NewMessage() fx.Message { return &CanInit{} }

// TypeID implements SerializableMessage.
func (m *CanInit) TypeID() uint32 { return CanInitTypeID }

// Serializable implements SerializableMessage.
func (m *CanInit) Serializable() proto.Message { return &m.CanInit }

// CanTimingQuery command queries the programmed bit timing.
type CanTimingQuery struct {
	pb.CanTimingQuery
}

// NewMessage implements Message.
func (m *CanTimingQuery) NewMessage() fx.Message { return &CanTimingQuery{} }

// TypeID implements SerializableMessage.
func (m *CanTimingQuery) TypeID() uint32 { return CanTimingQueryTypeID }

// Serializable implements SerializableMessage.
func (m *CanTimingQuery) Serializable() proto.Message { return &m.CanTimingQuery }

// CanTiming reply to CanTimingQuery and CanInit.
type CanTiming struct {
	pb.CanTiming
}

// NewMessage implements Message.
func (m *CanTiming) NewMessage() fx.Message { return &CanTiming{} }

// TypeID implements SerializableMessage.
func (m *CanTiming) TypeID() uint32 { return CanTimingTypeID }

// Serializable implements SerializableMessage.
func (m *CanTiming) Serializable() proto.Message { return &m.CanTiming }

// CanTransmit command transmits one frame.
type CanTransmit struct {
	pb.CanTransmit
}

// NewMessage implements Message.
func (m *CanTransmit) NewMessage() fx.Message { return &CanTransmit{} }

// TypeID implements SerializableMessage.
func (m *CanTransmit) TypeID() uint32 { return CanTransmitTypeID }

// Serializable implements SerializableMessage.
func (m *CanTransmit) Serializable() proto.Message { return &m.CanTransmit }

// CanFrameSent event reports a frame handed to the controller.
type CanFrameSent struct {
	pb.CanFrameSent
}

// NewMessage implements Message.
func (m *CanFrameSent) NewMessage() fx.Message { return &CanFrameSent{} }

// TypeID implements SerializableMessage.
func (m *CanFrameSent) TypeID() uint32 { return CanFrameSentTypeID }

// Serializable implements SerializableMessage.
func (m *CanFrameSent) Serializable() proto.Message { return &m.CanFrameSent }

// CanTxDone event reports a completed transmission.
type CanTxDone struct {
	pb.CanTxDone
}

// NewMessage implements Message.
func (m *CanTxDone) NewMessage() fx.Message { return &CanTxDone{} }

// TypeID implements SerializableMessage.
func (m *CanTxDone) TypeID() uint32 { return CanTxDoneTypeID }

// Serializable implements SerializableMessage.
func (m *CanTxDone) Serializable() proto.Message { return &m.CanTxDone }

// HibInit command initializes the hibernation module.
type HibInit struct {
	pb.HibInit
}

// NewMessage implements Message.
func (m *HibInit) NewMessage() fx.Message { return &HibInit{} }

// TypeID implements SerializableMessage.
func (m *HibInit) TypeID() uint32 { return HibInitTypeID }

// Serializable implements SerializableMessage.
func (m *HibInit) Serializable() proto.Message { return &m.HibInit }

// HibSleep command requests hibernation.
type HibSleep struct {
	pb.HibSleep
}

// NewMessage implements Message.
func (m *HibSleep) NewMessage() fx.Message { return &HibSleep{} }

// TypeID implements SerializableMessage.
func (m *HibSleep) TypeID() uint32 { return HibSleepTypeID }

// Serializable implements SerializableMessage.
func (m *HibSleep) Serializable() proto.Message { return &m.HibSleep }

// HibStatusQuery command queries the hibernation state.
type HibStatusQuery struct {
	pb.HibStatusQuery
}

// NewMessage implements Message.
func (m *HibStatusQuery) NewMessage() fx.Message { return &HibStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *HibStatusQuery) TypeID() uint32 { return HibStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *HibStatusQuery) Serializable() proto.Message { return &m.HibStatusQuery }

// HibStatus reply to HibStatusQuery.
type HibStatus struct {
	pb.HibStatus
}

// NewMessage implements Message.
func (m *HibStatus) NewMessage() fx.Message { return &HibStatus{} }

// TypeID implements SerializableMessage.
func (m *HibStatus) TypeID() uint32 { return HibStatusTypeID }

// Serializable implements SerializableMessage.
func (m *HibStatus) Serializable() proto.Message { return &m.HibStatus }

// WakeEvent event reports the wake reasons after hibernation.
type WakeEvent struct {
	pb.WakeEvent
}

// NewMessage implements Message.
func (m *WakeEvent) NewMessage() fx.Message { return &WakeEvent{} }

// TypeID implements SerializableMessage.
func (m *WakeEvent) TypeID() uint32 { return WakeEventTypeID }

// Serializable implements SerializableMessage.
func (m *WakeEvent) Serializable() proto.Message { return &m.WakeEvent }

// ExpanderLED command sets the IO expander LED pattern.
type ExpanderLED struct {
	pb.ExpanderLED
}

// NewMessage implements Message.
func (m *ExpanderLED) NewMessage() fx.Message { return &ExpanderLED{} }

// TypeID implements SerializableMessage.
func (m *ExpanderLED) TypeID() uint32 { return ExpanderLEDTypeID }

// Serializable implements SerializableMessage.
func (m *ExpanderLED) Serializable() proto.Message { return &m.ExpanderLED }

// ButtonPressed event reports an IO expander button interrupt.
type ButtonPressed struct {
	pb.ButtonPressed
}

// NewMessage implements Message.
func (m *ButtonPressed) NewMessage() fx.Message { return &ButtonPressed{} }

// TypeID implements SerializableMessage.
func (m *ButtonPressed) TypeID() uint32 { return ButtonPressedTypeID }

// Serializable implements SerializableMessage.
func (m *ButtonPressed) Serializable() proto.Message { return &m.ButtonPressed }

// RegRead command reads a register.
type RegRead struct {
	pb.RegRead
}

// NewMessage implements Message.
func (m *RegRead) NewMessage() fx.Message { return &RegRead{} }

// TypeID implements SerializableMessage.
func (m *RegRead) TypeID() uint32 { return RegReadTypeID }

// Serializable implements SerializableMessage.
func (m *RegRead) Serializable() proto.Message { return &m.RegRead }

// RegValue reply to RegRead and RegWrite.
type RegValue struct {
	pb.RegValue
}

// NewMessage implements Message.
func (m *RegValue) NewMessage() fx.Message { return &RegValue{} }

// TypeID implements SerializableMessage.
func (m *RegValue) TypeID() uint32 { return RegValueTypeID }

// Serializable implements SerializableMessage.
func (m *RegValue) Serializable() proto.Message { return &m.RegValue }

// RegWrite command writes a register.
type RegWrite struct {
	pb.RegWrite
}

// NewMessage implements Message.
func (m *RegWrite) NewMessage() fx.Message { return &RegWrite{} }

// TypeID implements SerializableMessage.
func (m *RegWrite) TypeID() uint32 { return RegWriteTypeID }

// Serializable implements SerializableMessage.
func (m *RegWrite) Serializable() proto.Message { return &m.RegWrite }

// RegDump command snapshots the register file.
type RegDump struct {
	pb.RegDump
}

// NewMessage implements Message.
func (m *RegDump) NewMessage() fx.Message { return &RegDump{} }

// TypeID implements SerializableMessage.
func (m *RegDump) TypeID() uint32 { return RegDumpTypeID }

// Serializable implements SerializableMessage.
func (m *RegDump) Serializable() proto.Message { return &m.RegDump }

// RegSnapshot reply to RegDump, in Intel HEX.
type RegSnapshot struct {
	pb.RegSnapshot
}

// NewMessage implements Message.
func (m *RegSnapshot) NewMessage() fx.Message { return &RegSnapshot{} }

// TypeID implements SerializableMessage.
func (m *RegSnapshot) TypeID() uint32 { return RegSnapshotTypeID }

// Serializable implements SerializableMessage.
func (m *RegSnapshot) Serializable() proto.Message { return &m.RegSnapshot }

// TypeID Groups
const (
	GroupCommand  uint32 = 0x00000000
	GroupCAN      uint32 = 0x00100000
	GroupHib      uint32 = 0x00110000
	GroupExpander uint32 = 0x00120000
	GroupReg      uint32 = 0x00130000
	GroupCustom   uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID      uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	CanInitTypeID        uint32 = GroupCAN | 0x0000
	CanTimingQueryTypeID uint32 = GroupCAN | 0x0001
	CanTimingTypeID      uint32 = CanTimingQueryTypeID | TypeIDMaskReply
	CanTransmitTypeID    uint32 = GroupCAN | 0x0002
	CanFrameSentTypeID   uint32 = TypeIDKindEvent | GroupCAN | 0x0003
	CanTxDoneTypeID      uint32 = TypeIDKindEvent | GroupCAN | 0x0004
	HibInitTypeID        uint32 = GroupHib | 0x0000
	HibSleepTypeID       uint32 = GroupHib | 0x0001
	HibStatusQueryTypeID uint32 = GroupHib | 0x0002
	HibStatusTypeID      uint32 = HibStatusQueryTypeID | TypeIDMaskReply
	WakeEventTypeID      uint32 = TypeIDKindEvent | GroupHib | 0x0003
	ExpanderLEDTypeID    uint32 = GroupExpander | 0x0000
	ButtonPressedTypeID  uint32 = TypeIDKindEvent | GroupExpander | 0x0001
	RegReadTypeID        uint32 = GroupReg | 0x0000
	RegValueTypeID       uint32 = RegReadTypeID | TypeIDMaskReply
	RegWriteTypeID       uint32 = GroupReg | 0x0001
	RegDumpTypeID        uint32 = GroupReg | 0x0002
	RegSnapshotTypeID    uint32 = RegDumpTypeID | TypeIDMaskReply
)

var (
	// ErrUnknownCommand indicates the command is unknown.
	ErrUnknownCommand = errors.New("unknown command")
)
