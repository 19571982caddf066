package nvic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/tiva.go/pkg/l0/reg"
)

func TestEnableDisable(t *testing.T) {
	rec := reg.NewRecorder(reg.NewMemory())
	c := New(rec)
	require.NoError(t, c.Enable(VectorGPIOE))
	require.NoError(t, c.Enable(VectorCAN0))
	require.NoError(t, c.Disable(VectorHIB))
	require.Equal(t, []reg.Access{
		{Op: reg.OpWrite, Addr: EN0, Value: 1 << 4},
		{Op: reg.OpWrite, Addr: EN0 + 4, Value: 1 << 7},
		{Op: reg.OpWrite, Addr: DIS0 + 4, Value: 1 << 11},
	}, rec.Writes())

	require.Equal(t, ErrInvalidVector, c.Enable(Vector(15)))
	require.Equal(t, ErrInvalidVector, c.Disable(Vector(3)))
}

func TestSetPriority(t *testing.T) {
	mem := reg.NewMemory()
	c := New(mem)
	// CAN0 is IRQ 39: PRI9, byte 3.
	mem.Poke(PRI0+9*4, 0x00e0e0e0)
	require.NoError(t, c.SetPriority(VectorCAN0, 5))
	require.Equal(t, uint32(0xa0e0e0e0), mem.Peek(PRI0+9*4))
	require.NoError(t, c.SetPriority(VectorCAN0, 0))
	require.Equal(t, uint32(0x00e0e0e0), mem.Peek(PRI0+9*4))

	require.Equal(t, ErrInvalidPriority, c.SetPriority(VectorCAN0, 8))
	require.Equal(t, ErrInvalidVector, c.SetPriority(Vector(2), 1))
}

func TestMasked(t *testing.T) {
	var m GlobalMask
	var order []string
	var lock sync.Mutex
	log := func(s string) {
		lock.Lock()
		order = append(order, s)
		lock.Unlock()
	}
	started := make(chan struct{})
	done := make(chan struct{})
	Masked(&m, func() {
		go func() {
			close(started)
			m.Dispatch(func() { log("isr") })
			close(done)
		}()
		<-started
		log("main")
	})
	<-done
	require.Equal(t, []string{"main", "isr"}, order)
}
