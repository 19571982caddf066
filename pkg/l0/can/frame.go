package can

import "fmt"

// Frame and message object limits.
const (
	MaxDataLen = 8
	MinSlot    = 1
	MaxSlot    = 32
)

// Status is the lifecycle status of a Frame.
type Status uint8

// Frame statuses. The receive statuses are not produced by this driver.
const (
	StatusStaged Status = iota
	StatusTxPending
	StatusTxComplete
	StatusRxStarted
	StatusRxComplete
)

var statusNames = [...]string{
	StatusStaged:     "staged",
	StatusTxPending:  "tx-pending",
	StatusTxComplete: "tx-complete",
	StatusRxStarted:  "rx-started",
	StatusRxComplete: "rx-complete",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Frame is a CAN frame as handed to the transmit sequencer.
//
// ID holds the two arbitration words written verbatim to IFnARB1 and IFnARB2:
// the low 16 bits of an extended id, then MSGVAL, XTD, DIR and the upper id
// bits. Use StandardID or ExtendedID to build them.
type Frame struct {
	ID     [2]uint16
	Data   [MaxDataLen]byte
	Len    uint8
	Slot   uint8
	Status Status
}

// NewFrame creates a staged frame.
func NewFrame(id [2]uint16, data []byte) (Frame, error) {
	if len(data) > MaxDataLen {
		return Frame{}, ErrPayloadTooLarge
	}
	f := Frame{ID: id, Len: uint8(len(data))}
	copy(f.Data[:], data)
	return f, nil
}

// StandardID builds valid transmit arbitration words for an 11-bit id.
func StandardID(id uint16) [2]uint16 {
	return [2]uint16{0, ARB2MsgVal | ARB2Dir | (id&0x7FF)<<2}
}

// ExtendedID builds valid transmit arbitration words for a 29-bit id.
func ExtendedID(id uint32) [2]uint16 {
	id &= 0x1FFFFFFF
	return [2]uint16{uint16(id), ARB2MsgVal | ARB2Xtd | ARB2Dir | uint16(id>>16)}
}

// Identifier decodes the arbitration words.
func (f *Frame) Identifier() (id uint32, extended bool) {
	if f.ID[1]&ARB2Xtd != 0 {
		return uint32(f.ID[1]&ARB2IDMask)<<16 | uint32(f.ID[0]), true
	}
	return uint32(f.ID[1]&ARB2IDMask) >> 2, false
}

// Valid reports whether the arbitration words mark the object valid.
func (f *Frame) Valid() bool {
	return f.ID[1]&ARB2MsgVal != 0
}

// Payload returns the used part of Data.
func (f *Frame) Payload() []byte {
	n := f.Len
	if n > MaxDataLen {
		n = MaxDataLen
	}
	return f.Data[:n]
}

// MarkComplete records a transmit completion reported by the controller.
func (f *Frame) MarkComplete() {
	if f.Status == StatusTxPending {
		f.Status = StatusTxComplete
	}
}

// String implements fmt.Stringer.
func (f *Frame) String() string {
	id, ext := f.Identifier()
	format := "%03x"
	if ext {
		format = "%08x"
	}
	return fmt.Sprintf(format+" [%d] % x (slot %d, %s)", id, f.Len, f.Payload(), f.Slot, f.Status)
}
