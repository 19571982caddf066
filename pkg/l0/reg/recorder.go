package reg

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
)

// Op is the kind of a register access.
type Op byte

// Access kinds.
const (
	OpRead  Op = 'R'
	OpWrite Op = 'W'
)

// Access is one recorded register access.
type Access struct {
	Op    Op
	Addr  Addr
	Value uint32
}

// String implements fmt.Stringer.
func (a Access) String() string {
	return fmt.Sprintf("%c %s 0x%08x", a.Op, a.Addr, a.Value)
}

// Recorder is a Bus which records every access before passing it on.
type Recorder struct {
	Bus Bus

	lock     sync.Mutex
	accesses []Access
}

// NewRecorder wraps a Bus.
func NewRecorder(b Bus) *Recorder {
	return &Recorder{Bus: b}
}

// Read implements Bus.
func (r *Recorder) Read(addr Addr) uint32 {
	val := r.Bus.Read(addr)
	r.record(Access{Op: OpRead, Addr: addr, Value: val})
	return val
}

// Write implements Bus.
func (r *Recorder) Write(addr Addr, val uint32) {
	r.record(Access{Op: OpWrite, Addr: addr, Value: val})
	r.Bus.Write(addr, val)
}

func (r *Recorder) record(a Access) {
	if glog.V(3) {
		glog.Info(a.String())
	}
	r.lock.Lock()
	r.accesses = append(r.accesses, a)
	r.lock.Unlock()
}

// Accesses returns a copy of all recorded accesses in order.
func (r *Recorder) Accesses() []Access {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Access(nil), r.accesses...)
}

// Writes returns the recorded writes in order.
func (r *Recorder) Writes() []Access {
	return r.filter(func(a Access) bool { return a.Op == OpWrite })
}

// WritesTo returns the recorded writes to addr in order.
func (r *Recorder) WritesTo(addr Addr) []Access {
	return r.filter(func(a Access) bool { return a.Op == OpWrite && a.Addr == addr })
}

// Reset drops all recorded accesses.
func (r *Recorder) Reset() {
	r.lock.Lock()
	r.accesses = nil
	r.lock.Unlock()
}

func (r *Recorder) filter(pred func(Access) bool) []Access {
	r.lock.Lock()
	defer r.lock.Unlock()
	var out []Access
	for _, a := range r.accesses {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}
