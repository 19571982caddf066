package env

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/secoc"
	"github.com/robotalks/tiva.go/pkg/l1"
)

// DefaultBoardType is the board type when the profile doesn't name one.
const DefaultBoardType = "tm4c123"

// Profile describes a board: clocks, CAN timing, hibernation wake
// sources, the IO expander and the CAN authentication key.
type Profile struct {
	Type        string            `yaml:"type"`
	ID          string            `yaml:"id,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	ClockHz     uint32            `yaml:"clock_hz"`

	CAN      CANProfile      `yaml:"can"`
	Hib      HibProfile      `yaml:"hib"`
	Expander ExpanderProfile `yaml:"expander"`
	SecOC    SecOCProfile    `yaml:"secoc"`
}

// CANProfile configures the CAN controller.
// A non-zero SamplePoint solves the segments instead of using TimeSeg1/2.
type CANProfile struct {
	BitRate        uint32        `yaml:"bit_rate"`
	TimeSeg1       uint8         `yaml:"tseg1"`
	TimeSeg2       uint8         `yaml:"tseg2"`
	SJW            uint8         `yaml:"sjw"`
	SamplePoint    float64       `yaml:"sample_point,omitempty"`
	Tolerance      float64       `yaml:"tolerance,omitempty"`
	AutoRetransmit bool          `yaml:"auto_retransmit"`
	Interrupts     []string      `yaml:"interrupts,flow"`
	BusyTimeout    time.Duration `yaml:"busy_timeout,omitempty"`
	Demo           DemoFrame     `yaml:"demo"`
}

// DemoFrame is the frame tivad transmits periodically.
// A zero Period disables it.
type DemoFrame struct {
	Slot     uint8         `yaml:"slot"`
	ID       uint32        `yaml:"id"`
	Extended bool          `yaml:"extended,omitempty"`
	Data     []byte        `yaml:"data,flow"`
	Period   time.Duration `yaml:"period"`
}

// HibProfile configures the hibernation module.
type HibProfile struct {
	Wake         string        `yaml:"wake"`
	SleepSeconds uint32        `yaml:"sleep_seconds"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
}

// ExpanderProfile selects the IO expander transport.
type ExpanderProfile struct {
	Bus        string        `yaml:"bus"`
	Address    uint16        `yaml:"address"`
	FlashDelay time.Duration `yaml:"flash_delay,omitempty"`
}

// Expander buses.
const (
	ExpanderNone = "none"
	ExpanderI2C  = "i2c"
	ExpanderSPI  = "spi"
)

// SecOCProfile enables authenticated CAN payloads when Key is set.
type SecOCProfile struct {
	Key    string `yaml:"key,omitempty"`
	MACLen int    `yaml:"mac_len,omitempty"`
}

// DefaultProfile is the LaunchPad setup: 40 MHz, 500 kbit/s at 87.5 %,
// frame 0x001 [FF] in slot 1 every second, RTC wake and an MCP23008
// on I2C.
func DefaultProfile() Profile {
	return Profile{
		Type:    DefaultBoardType,
		ClockHz: can.DefaultBitTiming.ClockHz,
		CAN: CANProfile{
			BitRate:        can.DefaultBitTiming.BitRate,
			TimeSeg1:       can.DefaultBitTiming.TimeSeg1,
			TimeSeg2:       can.DefaultBitTiming.TimeSeg2,
			SJW:            can.DefaultBitTiming.SJW,
			AutoRetransmit: true,
			Interrupts:     []string{"all"},
			BusyTimeout:    can.DefaultBusyTimeout,
			Demo: DemoFrame{
				Slot:   1,
				ID:     1,
				Data:   []byte{0xFF},
				Period: time.Second,
			},
		},
		Hib: HibProfile{
			Wake:         "rtc",
			SleepSeconds: 5,
			WriteTimeout: hib.DefaultWriteTimeout,
		},
		Expander: ExpanderProfile{
			Bus:        ExpanderI2C,
			Address:    expander.DefaultI2CAddress,
			FlashDelay: expander.DefaultFlashDelay,
		},
	}
}

// LoadProfile reads a YAML profile. Keys absent from the file keep
// their DefaultProfile values.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfile(data)
}

// ParseProfile parses and validates a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal encodes the profile as YAML.
func (p *Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks every section can be turned into a driver configuration.
func (p *Profile) Validate() error {
	if _, err := p.CANConfig(); err != nil {
		return fmt.Errorf("profile can: %w", err)
	}
	if _, err := p.WakeEvents(); err != nil {
		return fmt.Errorf("profile hib: %w", err)
	}
	switch p.Expander.Bus {
	case "", ExpanderNone, ExpanderI2C, ExpanderSPI:
	default:
		return fmt.Errorf("profile expander: unknown bus %q", p.Expander.Bus)
	}
	if _, err := p.SecOCKey(); err != nil {
		return fmt.Errorf("profile secoc: %w", err)
	}
	if n := p.SecOC.MACLen; n != 0 && !secoc.ValidMACLen(n) {
		return fmt.Errorf("profile secoc: mac_len %d: %w", n, secoc.ErrMACLength)
	}
	if s := p.CAN.Demo.Slot; s < can.MinSlot || s > can.MaxSlot {
		return fmt.Errorf("profile can demo: slot %d: %w", s, can.ErrInvalidSlot)
	}
	if n := len(p.CAN.Demo.Data); n > can.MaxDataLen {
		return fmt.Errorf("profile can demo: %w", can.ErrPayloadTooLarge)
	}
	return nil
}

// Info builds the board info announced to registrars.
func (p *Profile) Info() l1.BoardInfo {
	typ := p.Type
	if typ == "" {
		typ = DefaultBoardType
	}
	return l1.BoardInfo{
		Ref:  l1.BoardRef{Type: typ, ID: p.ID},
		Meta: l1.BoardMeta{Description: p.Description, Labels: p.Labels},
	}
}

// BitTiming resolves the requested bus timing.
func (p *Profile) BitTiming() (can.BitTiming, error) {
	c := p.CAN
	if c.SamplePoint > 0 {
		t, _, err := can.SolveTiming(p.ClockHz, c.BitRate, c.SamplePoint, c.SJW)
		return t, err
	}
	return can.BitTiming{
		ClockHz:  p.ClockHz,
		BitRate:  c.BitRate,
		TimeSeg1: c.TimeSeg1,
		TimeSeg2: c.TimeSeg2,
		SJW:      c.SJW,
	}, nil
}

// CANConfig builds the controller configuration.
func (p *Profile) CANConfig() (can.Config, error) {
	t, err := p.BitTiming()
	if err != nil {
		return can.Config{}, err
	}
	ints, err := ParseInterrupts(p.CAN.Interrupts)
	if err != nil {
		return can.Config{}, err
	}
	conf := can.Config{
		Timing:         t,
		Tolerance:      p.CAN.Tolerance,
		AutoRetransmit: p.CAN.AutoRetransmit,
		Interrupts:     ints,
		BusyTimeout:    p.CAN.BusyTimeout,
	}
	tolerance := conf.Tolerance
	if tolerance <= 0 {
		tolerance = can.DefaultTolerance
	}
	if _, err := t.Compute(tolerance); err != nil {
		return can.Config{}, err
	}
	return conf, nil
}

// WakeEvents parses the configured wake sources.
func (p *Profile) WakeEvents() (hib.WakeEvent, error) {
	return hib.ParseWakeEvent(p.Hib.Wake)
}

// SecOCKey decodes the AES key, nil when authentication is disabled.
func (p *Profile) SecOCKey() ([]byte, error) {
	if p.SecOC.Key == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(p.SecOC.Key)
	if err != nil {
		return nil, err
	}
	switch len(key) {
	case 16, 24, 32:
		return key, nil
	}
	return nil, fmt.Errorf("key must be 16, 24 or 32 bytes, got %d", len(key))
}

// ParseInterrupts parses interrupt source names: module, status, error, all.
func ParseInterrupts(names []string) (can.Interrupts, error) {
	var ints can.Interrupts
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "module":
			ints |= can.InterruptModule
		case "status":
			ints |= can.InterruptStatus
		case "error":
			ints |= can.InterruptError
		case "all":
			ints |= can.InterruptAll
		case "", "none":
		default:
			return 0, fmt.Errorf("unknown interrupt source %q", name)
		}
	}
	return ints, nil
}
