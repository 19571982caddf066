// Package board assembles a simulated TM4C123 board: a register file
// with the CAN controller, hibernation module, NVIC and GPIO interrupt
// behavior, plus an MCP23008 expander on the I2C bus.
package board

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/expander"
	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/sim"
)

// nvicWords is the number of EN/DIS registers on the TM4C123.
const nvicWords = 5

// Board is the simulated board.
type Board struct {
	Mem      *reg.Memory
	Mask     *nvic.GlobalMask
	CAN      *CAN
	Hib      *Hib
	Expander *Expander

	lock     sync.Mutex
	isrs     map[nvic.Vector]func()
	pending  []nvic.Vector
	kick     chan struct{}
	lastTick time.Time
	levels   map[gpio.Pin]func() bool
	tickers  []sim.Ticker
}

// New creates a board with all peripherals attached.
func New() *Board {
	b := &Board{
		Mem:      reg.NewMemory(),
		Mask:     &nvic.GlobalMask{},
		CAN:      NewCAN(can.CAN0),
		Hib:      NewHib(),
		Expander: NewExpander(),
		isrs:     make(map[nvic.Vector]func()),
		kick:     make(chan struct{}, 1),
		levels:   make(map[gpio.Pin]func() bool),
	}
	b.CAN.IRQ = b.Line(can.CAN0.Vector)
	b.Expander.INT = b.PinLine(expander.IntPin, b.Expander.Asserted)
	b.attachNVIC()
	b.attachGPIO(expander.IntPin.Port)
	for _, p := range []sim.Peripheral{b.CAN, b.Hib} {
		p.Attach(b.Mem)
	}
	b.tickers = append(b.tickers, b.Hib)
	return b
}

// Name implements Named.
func (b *Board) Name() string {
	return "sim-board"
}

// Bus returns the register bus the drivers use.
func (b *Board) Bus() reg.Bus {
	return b.Mem
}

// RegisterISR installs the handler for vector.
func (b *Board) RegisterISR(v nvic.Vector, isr func()) {
	b.lock.Lock()
	b.isrs[v] = isr
	b.lock.Unlock()
}

// Enabled reports whether the vector is enabled in the NVIC.
func (b *Board) Enabled(v nvic.Vector) bool {
	irq, err := v.IRQ()
	if err != nil || irq>>5 >= nvicWords {
		return false
	}
	return b.Mem.Peek(nvic.EN0.Offset((irq>>5)*4))&(1<<(irq&31)) != 0
}

// Line returns the interrupt line of vector.
func (b *Board) Line(v nvic.Vector) sim.InterruptLine {
	return sim.InterruptLineFunc(func() { b.Raise(v) })
}

// PinLine returns an active low interrupt line wired to a GPIO pin.
// asserted reports the line level, a level interrupt stays pending
// while it is asserted.
func (b *Board) PinLine(pin gpio.Pin, asserted func() bool) sim.InterruptLine {
	b.lock.Lock()
	b.levels[pin] = asserted
	b.lock.Unlock()
	return sim.InterruptLineFunc(func() { b.pinAsserted(pin) })
}

// Raise marks the vector pending if it is enabled. Pending vectors
// coalesce until dispatched.
func (b *Board) Raise(v nvic.Vector) {
	if !b.Enabled(v) {
		glog.V(3).Infof("sim: vector %d raised while disabled", v)
		return
	}
	b.lock.Lock()
	for _, p := range b.pending {
		if p == v {
			b.lock.Unlock()
			return
		}
	}
	b.pending = append(b.pending, v)
	b.lock.Unlock()
	select {
	case b.kick <- struct{}{}:
	default:
	}
}

// Pending returns the pending vectors.
func (b *Board) Pending() []nvic.Vector {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]nvic.Vector(nil), b.pending...)
}

// Dispatch runs the handlers of all pending vectors, lowest vector
// first, and returns how many ran. Handlers raising new interrupts are
// served in the same call.
func (b *Board) Dispatch() int {
	count := 0
	for {
		b.lock.Lock()
		if len(b.pending) == 0 {
			b.lock.Unlock()
			return count
		}
		sort.Slice(b.pending, func(i, j int) bool { return b.pending[i] < b.pending[j] })
		v := b.pending[0]
		b.pending = b.pending[1:]
		isr := b.isrs[v]
		b.lock.Unlock()
		if isr == nil {
			glog.Warningf("sim: no handler for vector %d", v)
			continue
		}
		b.Mask.Dispatch(isr)
		count++
	}
}

// Run implements Runnable, dispatching interrupts as they are raised.
func (b *Board) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.kick:
			b.Dispatch()
		}
	}
}

// Advance moves the board clocks forward.
func (b *Board) Advance(d time.Duration) {
	for _, t := range b.tickers {
		t.Advance(d)
	}
}

// Control implements Controller, advancing the clocks by the loop time.
func (b *Board) Control(cc fx.ControlContext) error {
	now := cc.Time()
	b.lock.Lock()
	last := b.lastTick
	b.lastTick = now
	b.lock.Unlock()
	if !last.IsZero() && now.After(last) {
		b.Advance(now.Sub(last))
	}
	return nil
}

// AddToLoop implements LoopAdder.
func (b *Board) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvSense, b)
	l.AddRunnable(b)
}

func (b *Board) attachNVIC() {
	for n := uint32(0); n < nvicWords; n++ {
		en, dis := nvic.EN0.Offset(n*4), nvic.DIS0.Offset(n*4)
		b.Mem.OnWrite(en, func(addr reg.Addr, old, val uint32) uint32 {
			return old | val
		})
		b.Mem.OnWrite(dis, func(addr reg.Addr, old, val uint32) uint32 {
			b.Mem.Poke(en, b.Mem.Peek(en)&^val)
			return 0
		})
		b.Mem.OnRead(dis, func(addr reg.Addr, stored uint32) uint32 {
			return b.Mem.Peek(en)
		})
	}
}

func (b *Board) attachGPIO(port gpio.Port) {
	base := port.Base()
	ris, im := base.Offset(gpio.OffsetRIS), base.Offset(gpio.OffsetIM)
	b.Mem.OnRead(base.Offset(gpio.OffsetMIS), func(addr reg.Addr, stored uint32) uint32 {
		return b.Mem.Peek(ris) & b.Mem.Peek(im)
	})
	b.Mem.OnWrite(base.Offset(gpio.OffsetICR), func(addr reg.Addr, old, val uint32) uint32 {
		b.Mem.Poke(ris, b.Mem.Peek(ris)&^(val&^b.assertedPins(port)))
		return 0
	})
	b.Mem.OnWrite(im, func(addr reg.Addr, old, val uint32) uint32 {
		if (val&^old)&b.Mem.Peek(ris) != 0 {
			defer b.Raise(gpioVector(port))
		}
		return val
	})
}

func (b *Board) assertedPins(port gpio.Port) (mask uint32) {
	b.lock.Lock()
	defer b.lock.Unlock()
	for pin, level := range b.levels {
		if pin.Port == port && level() {
			mask |= pin.Mask()
		}
	}
	return
}

func (b *Board) pinAsserted(pin gpio.Pin) {
	base := pin.Port.Base()
	ris := base.Offset(gpio.OffsetRIS)
	b.Mem.Poke(ris, b.Mem.Peek(ris)|pin.Mask())
	if b.Mem.Peek(base.Offset(gpio.OffsetIM))&pin.Mask() != 0 {
		b.Raise(gpioVector(pin.Port))
	}
}

func gpioVector(port gpio.Port) nvic.Vector {
	if port == gpio.PortF {
		return nvic.VectorGPIOF
	}
	return nvic.VectorGPIOE
}
