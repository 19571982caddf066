package sysctl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

func TestEnableWaitsSettleCycles(t *testing.T) {
	rec := reg.NewRecorder(reg.NewMemory())
	var waited []int
	clk := NewClock(rec, DelayCyclesFunc(func(n int) {
		// the gate must be written before the delay starts
		require.Len(t, rec.WritesTo(RCGC0), 1)
		waited = append(waited, n)
	}))
	clk.Enable(GateCAN0)
	require.Equal(t, []int{SettleCycles}, waited)
	require.True(t, clk.Enabled(GateCAN0))
	require.False(t, clk.Enabled(GateCAN1))

	clk.Enable(GateGPIO(1))
	require.Equal(t, uint32(0x02), rec.Read(RCGCGPIO))
	clk.Disable(GateCAN0)
	require.False(t, clk.Enabled(GateCAN0))
}

func TestInitSystemClock(t *testing.T) {
	testCases := []struct {
		hz  uint32
		rcc uint32
		err error
	}{
		{40000000, 0x02400540, nil},
		{50000000, 0x01c00540, nil},
		{20000000, 0x04c00540, nil},
		{80000000, 0, ErrUnsupportedClock},
		{30000000, 0, ErrUnsupportedClock},
		{0, 0, ErrUnsupportedClock},
	}
	for _, tc := range testCases {
		mem := reg.NewMemory()
		clk := NewClock(mem, nil)
		err := clk.InitSystemClock(tc.hz)
		require.Equal(t, tc.err, err, "hz=%d", tc.hz)
		require.Equal(t, tc.rcc, mem.Read(RCC), "hz=%d", tc.hz)
		if err == nil {
			require.Equal(t, tc.hz, clk.Hz)
		}
	}
}
