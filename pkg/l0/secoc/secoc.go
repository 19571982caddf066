// Package secoc authenticates classic CAN payloads with a truncated AES-CMAC
// and a freshness counter, so that payload, counter and MAC share one
// 8 byte frame.
package secoc

import (
	"crypto/aes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/chmike/cmac-go"
)

// Frame layout limits.
const (
	FrameSize     = 8
	FreshnessSize = 1
	DefaultMACLen = 3
	MinMACLen     = 2
	MaxMACLen     = FrameSize - FreshnessSize
)

var (
	// ErrAuthFailed indicates a MAC mismatch.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrPayloadTooLarge indicates payload and trailer exceed a frame.
	ErrPayloadTooLarge = errors.New("payload too large for authenticated frame")
	// ErrShortFrame indicates a frame without room for the trailer.
	ErrShortFrame = errors.New("frame too short")
	// ErrMACLength indicates a MAC length outside MinMACLen..MaxMACLen.
	ErrMACLength = errors.New("invalid MAC length")
)

// Authenticator signs and verifies payloads for one key.
// The transmit and receive freshness values are independent.
type Authenticator struct {
	MACLen int

	key  []byte
	lock sync.Mutex
	tx   uint64
	rx   uint64
}

// New creates an Authenticator. The key must be 16, 24 or 32 bytes.
func New(key []byte) (*Authenticator, error) {
	if _, err := aes.NewCipher(key); err != nil {
		return nil, fmt.Errorf("secoc key: %w", err)
	}
	return &Authenticator{MACLen: DefaultMACLen, key: append([]byte(nil), key...)}, nil
}

// ValidMACLen reports whether n truncated MAC bytes fit a frame.
func ValidMACLen(n int) bool {
	return n >= MinMACLen && n <= MaxMACLen
}

// MaxPayload is the largest payload Sign accepts.
func (a *Authenticator) MaxPayload() int {
	return FrameSize - FreshnessSize - a.MACLen
}

func (a *Authenticator) mac(id uint32, data []byte, freshness uint64) ([]byte, error) {
	h, err := cmac.New(aes.NewCipher, a.key)
	if err != nil {
		return nil, err
	}
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], id)
	h.Write(hdr[:])
	h.Write(data)
	var fv [8]byte
	binary.BigEndian.PutUint64(fv[:], freshness)
	h.Write(fv[:])
	return h.Sum(nil)[:a.MACLen], nil
}

// Sign returns data followed by the low freshness byte and the truncated MAC.
func (a *Authenticator) Sign(id uint32, data []byte) ([]byte, error) {
	if !ValidMACLen(a.MACLen) {
		return nil, ErrMACLength
	}
	if len(data) > a.MaxPayload() {
		return nil, ErrPayloadTooLarge
	}
	a.lock.Lock()
	a.tx++
	freshness := a.tx
	a.lock.Unlock()

	mac, err := a.mac(id, data, freshness)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+FreshnessSize+len(mac))
	out = append(out, data...)
	out = append(out, byte(freshness))
	return append(out, mac...), nil
}

// Verify checks a signed frame and returns its payload. The full freshness
// value is the smallest one above the last accepted value matching the
// transmitted low byte, so a replayed frame fails.
func (a *Authenticator) Verify(id uint32, frame []byte) ([]byte, error) {
	if !ValidMACLen(a.MACLen) {
		return nil, ErrMACLength
	}
	trailer := FreshnessSize + a.MACLen
	if len(frame) < trailer {
		return nil, ErrShortFrame
	}
	n := len(frame) - trailer
	data, low, mac := frame[:n], frame[n], frame[n+FreshnessSize:]

	a.lock.Lock()
	defer a.lock.Unlock()
	freshness := a.rx&^0xFF | uint64(low)
	if freshness <= a.rx {
		freshness += 0x100
	}
	expected, err := a.mac(id, data, freshness)
	if err != nil {
		return nil, err
	}
	if !cmac.Equal(expected, mac) {
		return nil, ErrAuthFailed
	}
	a.rx = freshness
	return append([]byte(nil), data...), nil
}

// Counters returns the last transmit and accepted receive freshness values.
func (a *Authenticator) Counters() (tx, rx uint64) {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.tx, a.rx
}
