package can

import (
	"fmt"
	"math"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

// Field limits of CANBIT/CANBRPE, in time quanta.
const (
	MaxPrescaler = 1023
	MaxTimeSeg1  = 16
	MaxTimeSeg2  = 8
	MaxSJW       = 4
	MinQuanta    = 4
	MaxQuanta    = 1 + MaxTimeSeg1 + MaxTimeSeg2
)

// DefaultTolerance is the largest accepted relative deviation of the
// programmed bit rate from the target.
const DefaultTolerance = 0.005

var (
	fieldBRP   = reg.Field{Shift: 0, Width: 6}
	fieldSJW   = reg.Field{Shift: 6, Width: 2}
	fieldTSeg1 = reg.Field{Shift: 8, Width: 4}
	fieldTSeg2 = reg.Field{Shift: 12, Width: 3}
	fieldBRPE  = reg.Field{Shift: 0, Width: 4}
)

// BitTiming is a bus timing request. Segment lengths and SJW are in time
// quanta; a bit lasts TimeSeg1 + TimeSeg2 + 1 quanta.
type BitTiming struct {
	ClockHz  uint32
	BitRate  uint32
	TimeSeg1 uint8
	TimeSeg2 uint8
	SJW      uint8
}

// DefaultBitTiming is 500 kbit/s from a 40 MHz clock, sampling at 87.5 %.
var DefaultBitTiming = BitTiming{
	ClockHz:  40000000,
	BitRate:  500000,
	TimeSeg1: 6,
	TimeSeg2: 1,
	SJW:      1,
}

// Quanta is the bit period in time quanta.
func (t BitTiming) Quanta() uint32 {
	return uint32(t.TimeSeg1) + uint32(t.TimeSeg2) + 1
}

// TimingFields are the values programmed into the timing registers.
// Segment lengths and SJW are in quanta, not the minus-one register encoding.
type TimingFields struct {
	Prescaler uint16
	SJW       uint8
	TimeSeg1  uint8
	TimeSeg2  uint8
}

// Compute derives the register fields. It performs no hardware access.
//
//	prescaler = round(clock / (rate * quanta)) - 1
//
// The result is rejected when any field is out of range or when the actual
// bit rate deviates from the target by more than tolerance.
func (t BitTiming) Compute(tolerance float64) (TimingFields, error) {
	switch {
	case t.ClockHz == 0:
		return TimingFields{}, &ConfigError{Field: "clock", Reason: "must be positive"}
	case t.BitRate == 0:
		return TimingFields{}, &ConfigError{Field: "bitrate", Reason: "must be positive"}
	case t.TimeSeg1 < 1 || t.TimeSeg1 > MaxTimeSeg1:
		return TimingFields{}, &ConfigError{Field: "tseg1", Value: int64(t.TimeSeg1), Reason: fmt.Sprintf("not in [1, %d]", MaxTimeSeg1)}
	case t.TimeSeg2 < 1 || t.TimeSeg2 > MaxTimeSeg2:
		return TimingFields{}, &ConfigError{Field: "tseg2", Value: int64(t.TimeSeg2), Reason: fmt.Sprintf("not in [1, %d]", MaxTimeSeg2)}
	case t.SJW < 1 || t.SJW > MaxSJW:
		return TimingFields{}, &ConfigError{Field: "sjw", Value: int64(t.SJW), Reason: fmt.Sprintf("not in [1, %d]", MaxSJW)}
	case t.SJW > t.TimeSeg2:
		return TimingFields{}, &ConfigError{Field: "sjw", Value: int64(t.SJW), Reason: "exceeds tseg2"}
	}

	den := uint64(t.BitRate) * uint64(t.Quanta())
	prescaler := int64((uint64(t.ClockHz)+den/2)/den) - 1
	if prescaler < 0 {
		return TimingFields{}, &ConfigError{Field: "prescaler", Value: prescaler, Reason: "negative, clock too slow"}
	}
	if prescaler > MaxPrescaler {
		return TimingFields{}, &ConfigError{Field: "prescaler", Value: prescaler, Reason: fmt.Sprintf("exceeds %d", MaxPrescaler)}
	}

	f := TimingFields{
		Prescaler: uint16(prescaler),
		SJW:       t.SJW,
		TimeSeg1:  t.TimeSeg1,
		TimeSeg2:  t.TimeSeg2,
	}
	actual := f.BitRate(t.ClockHz)
	if dev := math.Abs(actual-float64(t.BitRate)) / float64(t.BitRate); dev > tolerance {
		return TimingFields{}, &ConfigError{
			Field:  "bitrate",
			Value:  int64(math.Round(actual)),
			Reason: fmt.Sprintf("deviates %.2f%% from %d", dev*100, t.BitRate),
		}
	}
	return f, nil
}

// Quanta is the bit period in time quanta.
func (f TimingFields) Quanta() uint32 {
	return uint32(f.TimeSeg1) + uint32(f.TimeSeg2) + 1
}

// BitRate is the bit rate produced from clockHz.
func (f TimingFields) BitRate(clockHz uint32) float64 {
	return float64(clockHz) / (float64(f.Prescaler) + 1) / float64(f.Quanta())
}

// SamplePoint is the fraction of the bit period before the sample.
func (f TimingFields) SamplePoint() float64 {
	return float64(1+uint32(f.TimeSeg1)) / float64(f.Quanta())
}

// BitReg is the CANBIT register value.
func (f TimingFields) BitReg() uint32 {
	return fieldBRP.Put(0, uint32(f.Prescaler)) |
		fieldSJW.Put(0, uint32(f.SJW)-1) |
		fieldTSeg1.Put(0, uint32(f.TimeSeg1)-1) |
		fieldTSeg2.Put(0, uint32(f.TimeSeg2)-1)
}

// BRPEReg is the CANBRPE register value holding prescaler bits 9:6.
func (f TimingFields) BRPEReg() uint32 {
	return fieldBRPE.Put(0, uint32(f.Prescaler)>>fieldBRP.Width)
}

// String implements fmt.Stringer.
func (f TimingFields) String() string {
	return fmt.Sprintf("brp=%d sjw=%d tseg1=%d tseg2=%d", f.Prescaler, f.SJW, f.TimeSeg1, f.TimeSeg2)
}

// TimingFromRegs decodes CANBIT and CANBRPE values.
func TimingFromRegs(bit, brpe uint32) TimingFields {
	return TimingFields{
		Prescaler: reg.Unpack[uint16](fieldBRP, bit) | reg.Unpack[uint16](fieldBRPE, brpe)<<fieldBRP.Width,
		SJW:       reg.Unpack[uint8](fieldSJW, bit) + 1,
		TimeSeg1:  reg.Unpack[uint8](fieldTSeg1, bit) + 1,
		TimeSeg2:  reg.Unpack[uint8](fieldTSeg2, bit) + 1,
	}
}

// SolveTiming looks for a segment split producing exactly bitRate from
// clockHz with the sample point closest to samplePoint. Longer bit periods
// win ties.
func SolveTiming(clockHz, bitRate uint32, samplePoint float64, sjw uint8) (BitTiming, TimingFields, error) {
	var (
		best    BitTiming
		fields  TimingFields
		bestErr = math.Inf(1)
	)
	if clockHz == 0 || bitRate == 0 {
		return best, fields, &ConfigError{Field: "bitrate", Value: int64(bitRate), Reason: "clock and bit rate must be positive"}
	}
	for quanta := uint32(MaxQuanta); quanta >= MinQuanta; quanta-- {
		den := uint64(bitRate) * uint64(quanta)
		if uint64(clockHz)%den != 0 {
			continue
		}
		seg2 := uint32(math.Round(float64(quanta) * (1 - samplePoint)))
		if seg2 < 1 {
			seg2 = 1
		} else if seg2 > MaxTimeSeg2 {
			seg2 = MaxTimeSeg2
		}
		t := BitTiming{
			ClockHz:  clockHz,
			BitRate:  bitRate,
			TimeSeg1: uint8(quanta - 1 - seg2),
			TimeSeg2: uint8(seg2),
			SJW:      sjw,
		}
		f, err := t.Compute(1e-9)
		if err != nil {
			continue
		}
		if e := math.Abs(f.SamplePoint() - samplePoint); e < bestErr {
			best, fields, bestErr = t, f, e
		}
	}
	if math.IsInf(bestErr, 1) {
		return best, fields, &ConfigError{Field: "bitrate", Value: int64(bitRate), Reason: fmt.Sprintf("not reachable from %d Hz", clockHz)}
	}
	return best, fields, nil
}
