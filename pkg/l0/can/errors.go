package can

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRangeConfig indicates the bit timing can't be represented by
	// the controller's register fields.
	ErrOutOfRangeConfig = errors.New("bit timing out of range")
	// ErrPayloadTooLarge indicates a frame length above 8 bytes.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrInterfaceBusyTimeout indicates the message object interface stayed
	// busy longer than the configured bound.
	ErrInterfaceBusyTimeout = errors.New("message object interface busy timeout")
	// ErrInvalidSlot indicates a message object number outside 1..32.
	ErrInvalidSlot = errors.New("invalid message object slot")
	// ErrNilFrame indicates a transmit request without a frame.
	ErrNilFrame = errors.New("nil frame")
)

// ConfigError details an ErrOutOfRangeConfig.
type ConfigError struct {
	Field  string
	Value  int64
	Reason string
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%d %s", ErrOutOfRangeConfig, e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is match ErrOutOfRangeConfig.
func (e *ConfigError) Unwrap() error {
	return ErrOutOfRangeConfig
}
