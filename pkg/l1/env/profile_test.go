package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/secoc"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Validate())
	conf, err := p.CANConfig()
	require.NoError(t, err)
	require.Equal(t, can.DefaultBitTiming, conf.Timing)
	require.Equal(t, can.InterruptAll, conf.Interrupts)
	require.True(t, conf.AutoRetransmit)
	wake, err := p.WakeEvents()
	require.NoError(t, err)
	require.Equal(t, hib.WakeRTC, wake)
	key, err := p.SecOCKey()
	require.NoError(t, err)
	require.Nil(t, key)
	require.Equal(t, DefaultBoardType, p.Info().Ref.Type)
}

const benchProfile = `
type: tm4c123
id: bench1
description: bench board
labels:
  rack: "2"
can:
  bit_rate: 250000
  sample_point: 0.8
  auto_retransmit: false
  interrupts: [module, error]
  busy_timeout: 5ms
  demo:
    slot: 2
    id: 0x123
    data: [1, 2, 3]
    period: 250ms
hib:
  wake: rtc|pin
  sleep_seconds: 30
expander:
  bus: spi
secoc:
  key: 000102030405060708090a0b0c0d0e0f
`

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(benchProfile), 0644))
	p, err := LoadProfile(path)
	require.NoError(t, err)

	info := p.Info()
	require.Equal(t, "tm4c123/bench1", info.Ref.Name())
	require.Equal(t, "2", info.Meta.Labels["rack"])
	require.Equal(t, uint32(40000000), p.ClockHz)

	conf, err := p.CANConfig()
	require.NoError(t, err)
	require.False(t, conf.AutoRetransmit)
	require.Equal(t, can.InterruptModule|can.InterruptError, conf.Interrupts)
	require.Equal(t, 5*time.Millisecond, conf.BusyTimeout)
	fields, err := conf.Timing.Compute(can.DefaultTolerance)
	require.NoError(t, err)
	require.InDelta(t, 250000, fields.BitRate(p.ClockHz), 1)
	require.InDelta(t, 0.8, fields.SamplePoint(), 0.05)

	require.Equal(t, DemoFrame{Slot: 2, ID: 0x123, Data: []byte{1, 2, 3}, Period: 250 * time.Millisecond}, p.CAN.Demo)
	wake, err := p.WakeEvents()
	require.NoError(t, err)
	require.Equal(t, hib.WakeRTC|hib.WakePin, wake)
	require.Equal(t, hib.DefaultWriteTimeout, p.Hib.WriteTimeout)
	require.Equal(t, ExpanderSPI, p.Expander.Bus)
	key, err := p.SecOCKey()
	require.NoError(t, err)
	require.Len(t, key, 16)
}

func TestProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad timing", "can: {bit_rate: 7}"},
		{"bad interrupt", "can: {interrupts: [bogus]}"},
		{"bad wake", "hib: {wake: moon}"},
		{"bad bus", "expander: {bus: uart}"},
		{"bad key", "secoc: {key: abcd}"},
		{"mac too short", "secoc: {mac_len: 1}"},
		{"mac too long", "secoc: {mac_len: 17}"},
		{"demo slot 0", "can: {demo: {slot: 0}}"},
		{"demo slot 33", "can: {demo: {slot: 33}}"},
		{"demo too long", "can: {demo: {data: [1, 2, 3, 4, 5, 6, 7, 8, 9]}}"},
		{"not yaml", "can: ["},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
	_, err := ParseProfile([]byte("can: {bit_rate: 7}"))
	require.True(t, errors.Is(err, can.ErrOutOfRangeConfig))
	_, err = ParseProfile([]byte("secoc: {mac_len: 1}"))
	require.True(t, errors.Is(err, secoc.ErrMACLength))
	_, err = ParseProfile([]byte("can: {demo: {slot: 33}}"))
	require.True(t, errors.Is(err, can.ErrInvalidSlot))
	p, err := ParseProfile([]byte("secoc: {mac_len: 7}"))
	require.NoError(t, err)
	require.Equal(t, secoc.MaxMACLen, p.SecOC.MACLen)
}

func TestParseInterrupts(t *testing.T) {
	ints, err := ParseInterrupts([]string{"Status", " module "})
	require.NoError(t, err)
	require.Equal(t, can.InterruptStatus|can.InterruptModule, ints)
	ints, err = ParseInterrupts(nil)
	require.NoError(t, err)
	require.Zero(t, ints)
}
